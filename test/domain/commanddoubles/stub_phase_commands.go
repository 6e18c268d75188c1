//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/depman/internal/domain/commands"
	"github.com/rios0rios0/depman/internal/domain/entities"
)

// StubUpdateCommand is a stub implementation of commands.Update.
type StubUpdateCommand struct {
	ExecuteCallCount int
	ExecuteReport    *entities.Report
	ExecuteErr       error
	LastSettings     *entities.Settings
	LastOpts         commands.PhaseOptions
}

var _ commands.Update = (*StubUpdateCommand)(nil)

func (s *StubUpdateCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts commands.PhaseOptions,
) (*entities.Report, error) {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	return s.ExecuteReport, s.ExecuteErr
}

// StubBuildCommand is a stub implementation of commands.Build.
type StubBuildCommand struct {
	ExecuteCallCount int
	ExecuteReport    *entities.Report
	ExecuteErr       error
	LastSettings     *entities.Settings
	LastOpts         commands.PhaseOptions
}

var _ commands.Build = (*StubBuildCommand)(nil)

func (s *StubBuildCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts commands.PhaseOptions,
) (*entities.Report, error) {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	return s.ExecuteReport, s.ExecuteErr
}

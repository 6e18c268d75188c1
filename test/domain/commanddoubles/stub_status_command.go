//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"io"

	"github.com/rios0rios0/depman/internal/domain/commands"
	"github.com/rios0rios0/depman/internal/domain/entities"
)

// StubStatusCommand is a stub implementation of commands.Status.
type StubStatusCommand struct {
	ExecuteCallCount int
	ExecuteStatuses  []entities.WorkingCopyStatus
	ExecuteErr       error
	LastSettings     *entities.Settings
}

var _ commands.Status = (*StubStatusCommand)(nil)

func (s *StubStatusCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	_ io.Writer,
) ([]entities.WorkingCopyStatus, error) {
	s.ExecuteCallCount++
	s.LastSettings = settings
	return s.ExecuteStatuses, s.ExecuteErr
}

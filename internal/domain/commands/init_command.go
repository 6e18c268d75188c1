package commands

import (
	"context"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/depman/internal/domain/entities"
)

// Init is the interface for the init command.
type Init interface {
	Execute(ctx context.Context, settings *entities.Settings, opts InitOptions) error
}

// InitOptions holds runtime options for the init command.
type InitOptions struct {
	DryRun bool
}

// InitCommand creates the dependencies directory and marks it as managed by depman.
type InitCommand struct{}

// NewInitCommand creates a new InitCommand.
func NewInitCommand() *InitCommand {
	return &InitCommand{}
}

// Execute is idempotent: an existing directory only gets its sentinel rewritten.
func (it *InitCommand) Execute(_ context.Context, settings *entities.Settings, opts InitOptions) error {
	if err := ensureWorkspace(settings.DependenciesDir, opts.DryRun); err != nil {
		return err
	}
	if !opts.DryRun {
		logger.Infof("Initialized dependencies directory %s", settings.DependenciesDir)
	}
	return nil
}

package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/depman/internal/domain/commands"
	"github.com/rios0rios0/depman/internal/domain/entities"
	"github.com/rios0rios0/depman/internal/domain/repositories"
)

// StatusController handles the "status" subcommand.
type StatusController struct {
	command  commands.Status
	settings repositories.SettingsRepository
}

// NewStatusController creates a new StatusController.
func NewStatusController(command commands.Status, settings repositories.SettingsRepository) *StatusController {
	return &StatusController{command: command, settings: settings}
}

// GetBind returns the Cobra command metadata for the status controller.
func (it *StatusController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Kind:  entities.CommandStatus,
		Use:   entities.CommandStatus.String(),
		Args:  cobra.NoArgs,
		Short: "Shows the checked out revision of every dependency",
		Long: `Inspect each working copy without touching the network and report its current
commit, branch, and whether it matches the version declared in the depfile.`,
	}
}

// Execute runs the status command.
func (it *StatusController) Execute(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings(cmd, it.settings)
	if err != nil {
		return err
	}
	_, err = it.command.Execute(context.Background(), settings, cmd.OutOrStdout())
	return err
}

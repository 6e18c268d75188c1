package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/depman/internal/domain/commands"
	"github.com/rios0rios0/depman/internal/domain/entities"
	"github.com/rios0rios0/depman/internal/domain/repositories"
)

// UpdateController handles the "update" subcommand.
type UpdateController struct {
	command  commands.Update
	settings repositories.SettingsRepository
}

// NewUpdateController creates a new UpdateController.
func NewUpdateController(command commands.Update, settings repositories.SettingsRepository) *UpdateController {
	return &UpdateController{command: command, settings: settings}
}

// GetBind returns the Cobra command metadata for the update controller.
func (it *UpdateController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Kind:  entities.CommandUpdate,
		Use:   entities.CommandUpdate.String() + " [dependency...]",
		Args:  cobra.ArbitraryArgs,
		Short: "Fetches all dependencies at their specified version",
		Long: `Clone missing dependencies and fetch + check out existing ones at the version
declared in the depfile. A failing dependency is reported and the remaining ones
are still processed; the command exits non-zero if any dependency failed.

Pass dependency names to restrict the update to those dependencies.`,
	}
}

// Execute runs the update command.
func (it *UpdateController) Execute(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd, it.settings)
	if err != nil {
		return err
	}

	_, err = it.command.Execute(context.Background(), settings, phaseOptions(cmd, args))
	return err
}

// AddFlags adds the update-specific flags to the given Cobra command.
func (it *UpdateController) AddFlags(cmd *cobra.Command) {
	addMetricsFlag(cmd)
}

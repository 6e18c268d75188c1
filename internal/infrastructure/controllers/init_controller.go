package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/depman/internal/domain/commands"
	"github.com/rios0rios0/depman/internal/domain/entities"
	"github.com/rios0rios0/depman/internal/domain/repositories"
)

// InitController handles the "init" subcommand.
type InitController struct {
	command  commands.Init
	settings repositories.SettingsRepository
}

// NewInitController creates a new InitController.
func NewInitController(command commands.Init, settings repositories.SettingsRepository) *InitController {
	return &InitController{command: command, settings: settings}
}

// GetBind returns the Cobra command metadata for the init controller.
func (it *InitController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Kind:  entities.CommandInit,
		Use:   entities.CommandInit.String(),
		Args:  cobra.NoArgs,
		Short: "Initializes the dependency dir",
		Long: `Create the dependencies directory declared by the depfile (default: deps/ next
to the depfile) and mark it as managed by depman.`,
	}
}

// Execute runs the init command.
func (it *InitController) Execute(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings(cmd, it.settings)
	if err != nil {
		return err
	}

	dryRun, _ := cmd.Flags().GetBool(flagDryRun)
	return it.command.Execute(context.Background(), settings, commands.InitOptions{DryRun: dryRun})
}

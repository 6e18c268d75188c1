package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/depman/internal/domain/commands"
	"github.com/rios0rios0/depman/internal/domain/entities"
	"github.com/rios0rios0/depman/internal/domain/repositories"
)

// BuildController handles the "build" subcommand.
type BuildController struct {
	command  commands.Build
	settings repositories.SettingsRepository
}

// NewBuildController creates a new BuildController.
func NewBuildController(command commands.Build, settings repositories.SettingsRepository) *BuildController {
	return &BuildController{command: command, settings: settings}
}

// GetBind returns the Cobra command metadata for the build controller.
func (it *BuildController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Kind:  entities.CommandBuild,
		Use:   entities.CommandBuild.String() + " [dependency...]",
		Args:  cobra.ArbitraryArgs,
		Short: "Builds dependencies",
		Long: `Run the build commands declared for each dependency inside its working copy.
Commands run through the system shell with depman's own privileges. The first
failing command stops the build of that dependency only.

Pass dependency names to restrict the build to those dependencies.`,
	}
}

// Execute runs the build command.
func (it *BuildController) Execute(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd, it.settings)
	if err != nil {
		return err
	}

	_, err = it.command.Execute(context.Background(), settings, phaseOptions(cmd, args))
	return err
}

// AddFlags adds the build-specific flags to the given Cobra command.
func (it *BuildController) AddFlags(cmd *cobra.Command) {
	addMetricsFlag(cmd)
}

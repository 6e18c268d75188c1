package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/depman/internal/domain/commands"
	"github.com/rios0rios0/depman/internal/domain/entities"
	"github.com/rios0rios0/depman/internal/domain/repositories"
)

// ListController handles the "list" subcommand.
type ListController struct {
	command  commands.List
	settings repositories.SettingsRepository
}

// NewListController creates a new ListController.
func NewListController(command commands.List, settings repositories.SettingsRepository) *ListController {
	return &ListController{command: command, settings: settings}
}

// GetBind returns the Cobra command metadata for the list controller.
func (it *ListController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Kind:  entities.CommandList,
		Use:   entities.CommandList.String(),
		Args:  cobra.NoArgs,
		Short: "Lists all dependencies",
		Long:  `Print every dependency declared in the depfile with its version and location.`,
	}
}

// Execute runs the list command.
func (it *ListController) Execute(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings(cmd, it.settings)
	if err != nil {
		return err
	}
	return it.command.Execute(context.Background(), settings, cmd.OutOrStdout())
}

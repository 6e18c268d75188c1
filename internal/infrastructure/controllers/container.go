package controllers

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/depman/internal/domain/entities"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	constructors := []interface{}{
		NewInitController,
		NewListController,
		NewUpdateController,
		NewBuildController,
		NewStatusController,
		NewControllers,
	}
	for _, constructor := range constructors {
		if err := container.Provide(constructor); err != nil {
			return err
		}
	}

	return nil
}

// NewControllers aggregates all controllers into a slice for the AppInternal, in the
// order of entities.CommandKinds.
func NewControllers(
	initController *InitController,
	listController *ListController,
	updateController *UpdateController,
	buildController *BuildController,
	statusController *StatusController,
) *[]entities.Controller {
	return &[]entities.Controller{
		initController,
		listController,
		updateController,
		buildController,
		statusController,
	}
}

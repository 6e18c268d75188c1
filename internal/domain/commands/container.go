package commands

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all command providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	constructors := []interface{}{
		NewInitCommand,
		NewListCommand,
		NewUpdateCommand,
		NewBuildCommand,
		NewStatusCommand,
	}
	for _, constructor := range constructors {
		if err := container.Provide(constructor); err != nil {
			return err
		}
	}

	// Bind interfaces to implementations
	bindings := []interface{}{
		func(impl *InitCommand) Init { return impl },
		func(impl *ListCommand) List { return impl },
		func(impl *UpdateCommand) Update { return impl },
		func(impl *BuildCommand) Build { return impl },
		func(impl *StatusCommand) Status { return impl },
	}
	for _, binding := range bindings {
		if err := container.Provide(binding); err != nil {
			return err
		}
	}

	return nil
}

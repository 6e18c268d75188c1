package repositories

import (
	"go.uber.org/dig"

	domainRepos "github.com/rios0rios0/depman/internal/domain/repositories"
	"github.com/rios0rios0/depman/internal/infrastructure/repositories/depfile"
	"github.com/rios0rios0/depman/internal/infrastructure/repositories/git"
	"github.com/rios0rios0/depman/internal/infrastructure/repositories/gogit"
	"github.com/rios0rios0/depman/internal/infrastructure/repositories/process"
	"github.com/rios0rios0/depman/internal/infrastructure/repositories/prometheus"
	"github.com/rios0rios0/depman/internal/infrastructure/repositories/shell"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register depfile reader registry with all supported formats
	if err := container.Provide(func() *depfile.Registry {
		reg := depfile.NewRegistry()
		reg.Register(depfile.NewJSONReader())
		reg.Register(depfile.NewYAMLReader())
		reg.Register(depfile.NewTOMLReader())
		reg.Register(depfile.NewHCLReader())
		return reg
	}); err != nil {
		return err
	}

	constructors := []interface{}{
		process.NewCommandRunner,
		git.NewVCSRepository,
		shell.NewShellRepository,
		gogit.NewWorkingCopyRepository,
		prometheus.NewMetricsRepository,
		depfile.NewSettingsRepository,
	}
	for _, constructor := range constructors {
		if err := container.Provide(constructor); err != nil {
			return err
		}
	}

	// Bind domain interfaces to implementations
	bindings := []interface{}{
		func(impl *process.CommandRunner) process.Runner { return impl },
		func(impl *git.VCSRepository) domainRepos.VCSRepository { return impl },
		func(impl *shell.ShellRepository) domainRepos.ShellRepository { return impl },
		func(impl *gogit.WorkingCopyRepository) domainRepos.WorkingCopyRepository { return impl },
		func(impl *prometheus.MetricsRepository) domainRepos.MetricsRepository { return impl },
		func(impl *depfile.SettingsRepository) domainRepos.SettingsRepository { return impl },
	}
	for _, binding := range bindings {
		if err := container.Provide(binding); err != nil {
			return err
		}
	}

	return nil
}

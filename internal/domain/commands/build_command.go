package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/depman/internal/domain/entities"
	"github.com/rios0rios0/depman/internal/domain/repositories"
)

// Build is the interface for the build command.
type Build interface {
	Execute(ctx context.Context, settings *entities.Settings, opts PhaseOptions) (*entities.Report, error)
}

// BuildCommand runs the declared build commands of each dependency inside its working copy.
type BuildCommand struct {
	shell   repositories.ShellRepository
	metrics repositories.MetricsRepository
}

// NewBuildCommand creates a new BuildCommand.
func NewBuildCommand(
	shell repositories.ShellRepository,
	metrics repositories.MetricsRepository,
) *BuildCommand {
	return &BuildCommand{
		shell:   shell,
		metrics: metrics,
	}
}

// Execute builds the selected dependencies in declaration order. A failing build command
// stops the remaining commands of that dependency only.
func (it *BuildCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts PhaseOptions,
) (*entities.Report, error) {
	if opts.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	deps, err := settings.Select(opts.Only)
	if err != nil {
		return nil, err
	}

	if wsErr := ensureWorkspace(settings.DependenciesDir, opts.DryRun); wsErr != nil {
		return nil, wsErr
	}

	report := &entities.Report{Phase: phaseBuild, RunID: uuid.NewString()}
	log := logger.WithField("run_id", report.RunID)

	log.Info("Building dependencies")
	if len(deps) == 0 {
		log.Info("No dependencies found.")
	}

	for _, dep := range deps {
		result := it.build(ctx, settings, dep, opts.DryRun)
		report.Add(result)
		it.metrics.ObserveResult(phaseBuild, result)
	}

	finishPhase(log, report, it.metrics, opts)
	return report, report.Err()
}

func (it *BuildCommand) build(
	ctx context.Context,
	settings *entities.Settings,
	dep entities.Dependency,
	dryRun bool,
) (result entities.Result) {
	started := time.Now()
	log := logger.WithField("dependency", dep.Name)
	result = entities.Result{Dependency: dep.Name, Action: entities.ActionBuild}

	defer func() { result.Duration = time.Since(started) }()

	if !dep.HasBuild() {
		log.Infof("Skipping build for dependency %s", dep.Name)
		result.Outcome = entities.OutcomeBuildSkipped
		return result
	}

	path := settings.WorkingCopyPath(dep)
	state, err := inspectPath(path)
	switch {
	case err != nil:
		result.Err = err
	case state == entities.StateAbsent:
		result.Err = fmt.Errorf("working copy %s does not exist, run update first", path)
	case state == entities.StateNotDirectory:
		result.Err = &entities.DependencyPathConflictError{Dependency: dep.Name, Path: path}
	}
	if result.Err != nil {
		log.Errorf("Failed to build dependency %s: %v", dep.Name, result.Err)
		result.Outcome = entities.OutcomeFailed
		return result
	}

	log.Infof("Building dependency %s", dep.Name)
	for _, command := range dep.BuildCommands {
		if dryRun {
			log.Infof(
				"[DRY RUN] Would run %s in %s",
				entities.FormatCommandLine(it.shell.Args(command)), path,
			)
			continue
		}

		log.Debugf("Running %q in %s", command, path)
		if runErr := it.shell.Run(ctx, path, command); runErr != nil {
			logSubprocessFailure(log, runErr, "when running build command of dependency "+dep.Name)
			log.Errorf("Failed to build dependency %s", dep.Name)
			result.Outcome = entities.OutcomeFailed
			result.Err = runErr
			return result
		}
	}

	result.Outcome = entities.OutcomeBuilt
	if dryRun {
		result.Outcome = entities.OutcomePlanned
	}
	return result
}

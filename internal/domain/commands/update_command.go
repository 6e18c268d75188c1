package commands

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/depman/internal/domain/entities"
	"github.com/rios0rios0/depman/internal/domain/repositories"
)

// Update is the interface for the update command (synchronization engine).
type Update interface {
	Execute(ctx context.Context, settings *entities.Settings, opts PhaseOptions) (*entities.Report, error)
}

// UpdateCommand converges every declared dependency's working copy to its declared version:
// absent copies are cloned, existing ones are fetched and checked out, and paths occupied by
// something other than a directory are skipped. A failing dependency never stops the batch.
type UpdateCommand struct {
	vcs     repositories.VCSRepository
	metrics repositories.MetricsRepository
}

// NewUpdateCommand creates a new UpdateCommand.
func NewUpdateCommand(
	vcs repositories.VCSRepository,
	metrics repositories.MetricsRepository,
) *UpdateCommand {
	return &UpdateCommand{
		vcs:     vcs,
		metrics: metrics,
	}
}

// Execute reconciles the selected dependencies in declaration order. Fatal conditions
// (unknown selection, unusable dependencies directory) are returned before any subprocess
// runs; otherwise the report is always returned, along with a *entities.BatchError when at
// least one dependency failed.
func (it *UpdateCommand) Execute(
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

	report := &entities.Report{Phase: phaseUpdate, RunID: uuid.NewString()}
	log := logger.WithField("run_id", report.RunID)

	log.Info("Updating dependencies")
	if len(deps) == 0 {
		log.Info("No dependencies found.")
	}

	for _, dep := range deps {
		result := it.reconcile(ctx, settings, dep, opts.DryRun)
		report.Add(result)
		it.metrics.ObserveResult(phaseUpdate, result)
	}

	finishPhase(log, report, it.metrics, opts)
	return report, report.Err()
}

// reconcile brings one working copy in line with its descriptor.
func (it *UpdateCommand) reconcile(
	ctx context.Context,
	settings *entities.Settings,
	dep entities.Dependency,
	dryRun bool,
) entities.Result {
	started := time.Now()
	path := settings.WorkingCopyPath(dep)
	log := logger.WithField("dependency", dep.Name)

	result := entities.Result{Dependency: dep.Name}

	state, err := inspectPath(path)
	if err != nil {
		log.Error(err)
		result.Outcome = entities.OutcomeFailed
		result.Err = err
		result.Duration = time.Since(started)
		return result
	}

	result.Action = entities.PlanSync(state)
	switch result.Action {
	case entities.ActionClone:
		result.Outcome, result.Err = it.clone(ctx, settings.DependenciesDir, dep, log, dryRun)
	case entities.ActionUpdate:
		result.Outcome, result.Err = it.update(ctx, path, dep, log, dryRun)
	default:
		log.Errorf("Path %s exists, but isn't a directory!", path)
		result.Outcome = entities.OutcomeSkippedConflict
		result.Err = &entities.DependencyPathConflictError{Dependency: dep.Name, Path: path}
	}

	result.Duration = time.Since(started)
	return result
}

func (it *UpdateCommand) clone(
	ctx context.Context,
	workspaceDir string,
	dep entities.Dependency,
	log *logger.Entry,
	dryRun bool,
) (entities.Outcome, error) {
	log.Infof("Checking out %s version %s from %s", dep.Name, dep.Version, dep.Location)

	if dryRun {
		log.Infof(
			"[DRY RUN] Would run %s in %s",
			entities.FormatCommandLine(it.vcs.CloneArgs(dep)), workspaceDir,
		)
		return entities.OutcomePlanned, nil
	}

	if err := it.vcs.Clone(ctx, workspaceDir, dep); err != nil {
		logSubprocessFailure(log, err, "when checking out dependency "+dep.Name)
		return entities.OutcomeFailed, err
	}
	return entities.OutcomeCloned, nil
}

// update fetches and checks out an existing working copy. Both steps are always attempted:
// a failed fetch may still leave enough cached refs for the checkout to succeed.
func (it *UpdateCommand) update(
	ctx context.Context,
	path string,
	dep entities.Dependency,
	log *logger.Entry,
	dryRun bool,
) (entities.Outcome, error) {
	log.Infof("Updating %s version %s from %s", dep.Name, dep.Version, dep.Location)

	if dryRun {
		log.Infof("[DRY RUN] Would fetch %s and check out %s in %s", originRemote, dep.Version, path)
		return entities.OutcomePlanned, nil
	}

	fetchErr := it.vcs.Fetch(ctx, path, originRemote)
	if fetchErr != nil {
		logSubprocessFailure(log, fetchErr, "when fetching dependency "+dep.Name)
	}

	if checkoutErr := it.vcs.Checkout(ctx, path, dep.Version); checkoutErr != nil {
		logSubprocessFailure(
			log, checkoutErr,
			"when switching to version/branch "+dep.Version+" dependency "+dep.Name,
		)
		return entities.OutcomeFailed, errors.Join(fetchErr, checkoutErr)
	}

	return entities.OutcomeUpdated, fetchErr
}

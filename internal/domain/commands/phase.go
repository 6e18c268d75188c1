package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/depman/internal/domain/entities"
	"github.com/rios0rios0/depman/internal/domain/repositories"
)

const (
	phaseUpdate = "update"
	phaseBuild  = "build"

	originRemote = "origin"

	dirPermissions      = 0o755
	sentinelPermissions = 0o644
)

// PhaseOptions holds runtime options shared by the update and build phases.
type PhaseOptions struct {
	DryRun      bool
	Verbose     bool
	Only        []string // If set, only process these dependencies (declaration order is kept)
	MetricsFile string   // If set, write a Prometheus textfile after the run
}

// ensureWorkspace makes sure the dependencies directory exists and carries the sentinel
// marker. It is safe to call on every run.
func ensureWorkspace(dir string, dryRun bool) error {
	info, err := os.Stat(dir)
	switch {
	case err == nil && !info.IsDir():
		logger.Errorf("Path %s exists, but isn't a directory!", dir)
		return &entities.PathConflictError{Path: dir}
	case err == nil:
		// already there, only the sentinel is refreshed
	case errors.Is(err, fs.ErrNotExist):
		if dryRun {
			logger.Infof("[DRY RUN] Would create dependencies directory %s", dir)
			return nil
		}
		if mkErr := os.MkdirAll(dir, dirPermissions); mkErr != nil {
			return fmt.Errorf("failed to create dependencies directory %s: %w", dir, mkErr)
		}
		logger.Debugf("Created dependencies directory %s", dir)
	default:
		return fmt.Errorf("failed to inspect dependencies directory %s: %w", dir, err)
	}

	if dryRun {
		return nil
	}

	sentinel := filepath.Join(dir, entities.SentinelName)
	if writeErr := os.WriteFile(sentinel, []byte{0}, sentinelPermissions); writeErr != nil {
		return fmt.Errorf("failed to write sentinel %s: %w", sentinel, writeErr)
	}
	return nil
}

// inspectPath reports what the filesystem holds at the given path.
func inspectPath(path string) (entities.WorkingCopyState, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return entities.StateAbsent, nil
		}
		return entities.StateAbsent, fmt.Errorf("failed to inspect %s: %w", path, err)
	}
	if !info.IsDir() {
		return entities.StateNotDirectory, nil
	}
	return entities.StateDirectory, nil
}

// logSubprocessFailure logs the captured output, exit code and exact command line of a
// failed invocation.
func logSubprocessFailure(log *logger.Entry, err error, what string) {
	var subErr *entities.SubprocessError
	if !errors.As(err, &subErr) {
		log.Errorf("Error %s: %v", what, err)
		return
	}

	if subErr.Stdout != "" {
		log.Info(subErr.Stdout)
	}
	if subErr.Stderr != "" {
		log.Info(subErr.Stderr)
	}
	log.Errorf(
		"Error (exit code %d) %s with command-line:\n%s",
		subErr.ExitCode, what, subErr.CommandLine(),
	)
}

// finishPhase logs the run summary and exports metrics when requested.
func finishPhase(
	log *logger.Entry,
	report *entities.Report,
	metrics repositories.MetricsRepository,
	opts PhaseOptions,
) {
	metrics.MarkRunFinished(report.Phase)

	failed := report.Failed()
	summary := log.WithField("failed", failed)
	if failed > 0 {
		summary.Warnf("%s complete: %d dependencies processed, %d failed", report.Phase, len(report.Results), failed)
	} else {
		summary.Infof("%s complete: %d dependencies processed", report.Phase, len(report.Results))
	}

	if opts.MetricsFile == "" || opts.DryRun {
		return
	}
	if err := metrics.WriteTextfile(opts.MetricsFile); err != nil {
		log.Errorf("Failed to write metrics to %s: %v", opts.MetricsFile, err)
		return
	}
	log.Debugf("Wrote metrics to %s", opts.MetricsFile)
}

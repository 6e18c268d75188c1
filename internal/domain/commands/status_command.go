package commands

import (
	"context"
	"fmt"
	"io"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/depman/internal/domain/entities"
	"github.com/rios0rios0/depman/internal/domain/repositories"
)

// Status is the interface for the status command.
type Status interface {
	Execute(ctx context.Context, settings *entities.Settings, out io.Writer) ([]entities.WorkingCopyStatus, error)
}

// StatusCommand reports what each working copy currently resolves to. It never modifies
// the dependencies directory.
type StatusCommand struct {
	workingCopies repositories.WorkingCopyRepository
}

// NewStatusCommand creates a new StatusCommand.
func NewStatusCommand(workingCopies repositories.WorkingCopyRepository) *StatusCommand {
	return &StatusCommand{workingCopies: workingCopies}
}

// Execute inspects every declared dependency and writes one line per dependency.
func (it *StatusCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	out io.Writer,
) ([]entities.WorkingCopyStatus, error) {
	statuses := make([]entities.WorkingCopyStatus, 0, len(settings.Dependencies))

	for _, dep := range settings.Dependencies {
		status, err := it.workingCopies.Inspect(settings.WorkingCopyPath(dep), dep)
		if err != nil {
			logger.WithField("dependency", dep.Name).Errorf("Failed to inspect working copy: %v", err)
			status = entities.WorkingCopyStatus{Name: dep.Name, Path: settings.WorkingCopyPath(dep)}
		}
		statuses = append(statuses, status)

		if _, writeErr := fmt.Fprintf(
			out, " - %s (%s): %s\n", nameColor(dep.Name), dep.Version, describeStatus(status, err),
		); writeErr != nil {
			return statuses, writeErr
		}
	}

	return statuses, nil
}

func describeStatus(status entities.WorkingCopyStatus, err error) string {
	switch {
	case err != nil:
		return errorColor("error: " + err.Error())
	case status.State == entities.StateAbsent:
		return warnColor("missing")
	case status.State == entities.StateNotDirectory:
		return errorColor("conflict, not a directory")
	case !status.IsRepository:
		return errorColor("not a repository")
	}

	where := "detached"
	if status.Branch != "" {
		where = status.Branch
	}
	line := fmt.Sprintf("%s at %s", where, status.ShortHead())

	if status.Matches == nil {
		return okColor(line)
	}
	if *status.Matches {
		return okColor(line + ", matches declared version")
	}
	return warnColor(line + ", differs from declared version")
}

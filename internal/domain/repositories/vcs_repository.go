package repositories

import (
	"context"

	"github.com/rios0rios0/depman/internal/domain/entities"
)

// VCSRepository abstracts the version-control tool used to materialize working copies.
// Every method is a single blocking invocation; failures are *entities.SubprocessError.
type VCSRepository interface {
	// Clone clones dep.Location into workspaceDir/dep.Name, recursing into submodules and
	// selecting dep.Version at clone time unless it is HEAD.
	Clone(ctx context.Context, workspaceDir string, dep entities.Dependency) error

	// Fetch fetches all refs from the given remote inside an existing working copy.
	Fetch(ctx context.Context, workingCopy, remote string) error

	// Checkout switches an existing working copy to the given ref.
	Checkout(ctx context.Context, workingCopy, ref string) error

	// CloneArgs returns the argument vector Clone would run, for logging and dry runs.
	CloneArgs(dep entities.Dependency) []string
}

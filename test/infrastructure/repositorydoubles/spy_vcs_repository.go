//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rios0rios0/depman/internal/domain/entities"
	"github.com/rios0rios0/depman/internal/domain/repositories"
)

// VCSCall records a single invocation of the version-control tool.
type VCSCall struct {
	Op   string // clone, fetch or checkout
	Dir  string // workspace dir for clone, working copy for fetch and checkout
	Name string // dependency name (base name of the working copy)
	Arg  string // location for clone, remote for fetch, ref for checkout
}

// SpyVCSRepository implements repositories.VCSRepository as a configurable spy.
// Errors are keyed by dependency name.
type SpyVCSRepository struct {
	// --- Clone ---
	CloneErrs map[string]error

	// MaterializeOnClone creates the working copy directory on a successful clone,
	// so that a second run sees it as existing.
	MaterializeOnClone bool

	// --- Fetch ---
	FetchErrs map[string]error

	// --- Checkout ---
	CheckoutErrs map[string]error

	// spy: calls in invocation order
	Calls []VCSCall
}

var _ repositories.VCSRepository = (*SpyVCSRepository)(nil)

func (s *SpyVCSRepository) Clone(_ context.Context, workspaceDir string, dep entities.Dependency) error {
	s.Calls = append(s.Calls, VCSCall{Op: "clone", Dir: workspaceDir, Name: dep.Name, Arg: dep.Location})
	if err := s.CloneErrs[dep.Name]; err != nil {
		return err
	}
	if s.MaterializeOnClone {
		return os.MkdirAll(filepath.Join(workspaceDir, dep.Name), 0o755)
	}
	return nil
}

func (s *SpyVCSRepository) Fetch(_ context.Context, workingCopy, remote string) error {
	name := filepath.Base(workingCopy)
	s.Calls = append(s.Calls, VCSCall{Op: "fetch", Dir: workingCopy, Name: name, Arg: remote})
	return s.FetchErrs[name]
}

func (s *SpyVCSRepository) Checkout(_ context.Context, workingCopy, ref string) error {
	name := filepath.Base(workingCopy)
	s.Calls = append(s.Calls, VCSCall{Op: "checkout", Dir: workingCopy, Name: name, Arg: ref})
	return s.CheckoutErrs[name]
}

func (s *SpyVCSRepository) CloneArgs(dep entities.Dependency) []string {
	return []string{"git", "clone", dep.Location, dep.Name}
}

// CallsFor returns the operations recorded for the given dependency, in order.
func (s *SpyVCSRepository) CallsFor(name string) []string {
	var ops []string
	for _, call := range s.Calls {
		if call.Name == name {
			ops = append(ops, call.Op)
		}
	}
	return ops
}

package git

import (
	"context"

	"github.com/rios0rios0/depman/internal/domain/entities"
	"github.com/rios0rios0/depman/internal/infrastructure/repositories/process"
)

const defaultBinary = "git"

// VCSRepository drives the git command-line client. Each operation is exactly one
// subprocess invocation.
type VCSRepository struct {
	runner process.Runner
	binary string
}

// NewVCSRepository creates a VCSRepository using the git binary found on PATH.
func NewVCSRepository(runner process.Runner) *VCSRepository {
	return &VCSRepository{runner: runner, binary: defaultBinary}
}

// CloneArgs returns `git clone <location> <name> --recursive [-b <version>]`.
func (it *VCSRepository) CloneArgs(dep entities.Dependency) []string {
	args := []string{it.binary, "clone", dep.Location, dep.Name, "--recursive"}
	if !dep.IsHead() {
		args = append(args, "-b", dep.Version)
	}
	return args
}

func (it *VCSRepository) Clone(ctx context.Context, workspaceDir string, dep entities.Dependency) error {
	return it.runner.Capture(ctx, workspaceDir, it.CloneArgs(dep)...)
}

func (it *VCSRepository) Fetch(ctx context.Context, workingCopy, remote string) error {
	return it.runner.Capture(ctx, workingCopy, it.binary, "fetch", remote)
}

func (it *VCSRepository) Checkout(ctx context.Context, workingCopy, ref string) error {
	return it.runner.Capture(ctx, workingCopy, it.binary, "checkout", ref)
}

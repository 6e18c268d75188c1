package gogit

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/rios0rios0/depman/internal/domain/entities"
)

// WorkingCopyRepository reads working copies directly with go-git, without spawning git.
type WorkingCopyRepository struct{}

// NewWorkingCopyRepository creates a new WorkingCopyRepository.
func NewWorkingCopyRepository() *WorkingCopyRepository {
	return &WorkingCopyRepository{}
}

// Inspect resolves the HEAD of the working copy at path and, for pinned versions, whether
// it points at the declared revision.
func (it *WorkingCopyRepository) Inspect(
	path string,
	dep entities.Dependency,
) (entities.WorkingCopyStatus, error) {
	status := entities.WorkingCopyStatus{Name: dep.Name, Path: path}

	info, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		status.State = entities.StateAbsent
		return status, nil
	case err != nil:
		return status, fmt.Errorf("failed to inspect %s: %w", path, err)
	case !info.IsDir():
		status.State = entities.StateNotDirectory
		return status, nil
	}
	status.State = entities.StateDirectory

	repository, err := git.PlainOpen(path)
	if errors.Is(err, git.ErrRepositoryNotExists) {
		return status, nil
	}
	if err != nil {
		return status, fmt.Errorf("failed to open repository %s: %w", path, err)
	}
	status.IsRepository = true

	head, err := repository.Head()
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		// freshly initialized or interrupted clone: no commit checked out yet
		return status, nil
	}
	if err != nil {
		return status, fmt.Errorf("failed to resolve HEAD of %s: %w", path, err)
	}

	status.Head = head.Hash().String()
	if head.Name().IsBranch() {
		status.Branch = head.Name().Short()
	}

	if !dep.IsHead() {
		if declared, ok := resolveDeclared(repository, dep.Version); ok {
			matches := declared == head.Hash()
			status.Matches = &matches
		}
	}

	return status, nil
}

// resolveDeclared resolves a declared version the way `git checkout` would find it: a local
// ref, a tag, a commit hash, or a branch only known on origin.
func resolveDeclared(repository *git.Repository, version string) (plumbing.Hash, bool) {
	candidates := []string{version, "origin/" + version}
	for _, candidate := range candidates {
		hash, err := repository.ResolveRevision(plumbing.Revision(candidate))
		if err == nil && hash != nil {
			return *hash, true
		}
	}
	return plumbing.ZeroHash, false
}

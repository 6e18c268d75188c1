package shell

import "github.com/rios0rios0/depman/internal/infrastructure/repositories/process"

// NewShellRepositoryFor creates a ShellRepository for the given platform, for testing.
func NewShellRepositoryFor(runner process.Runner, goos string) *ShellRepository {
	return &ShellRepository{runner: runner, goos: goos}
}

package shell

import (
	"context"
	"runtime"

	"github.com/rios0rios0/depman/internal/infrastructure/repositories/process"
)

// ShellRepository runs build commands through the platform shell, so the full shell
// syntax (pipes, redirections, &&) is available to depfile authors.
type ShellRepository struct {
	runner process.Runner
	goos   string
}

// NewShellRepository creates a ShellRepository for the running platform.
func NewShellRepository(runner process.Runner) *ShellRepository {
	return &ShellRepository{runner: runner, goos: runtime.GOOS}
}

// Args returns the argument vector used to interpret the command.
func (it *ShellRepository) Args(command string) []string {
	if it.goos == "windows" {
		return []string{"cmd", "/C", command}
	}
	return []string{"sh", "-c", command}
}

func (it *ShellRepository) Run(ctx context.Context, dir, command string) error {
	return it.runner.Stream(ctx, dir, it.Args(command)...)
}

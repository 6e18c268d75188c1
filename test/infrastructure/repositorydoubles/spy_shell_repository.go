//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/depman/internal/domain/repositories"
)

// ShellCall records a single build command invocation.
type ShellCall struct {
	Dir     string
	Command string
}

// SpyShellRepository implements repositories.ShellRepository as a configurable spy.
type SpyShellRepository struct {
	// CommandErrs fails the matching command with the given error.
	CommandErrs map[string]error

	// spy: calls in invocation order
	Calls []ShellCall
}

var _ repositories.ShellRepository = (*SpyShellRepository)(nil)

func (s *SpyShellRepository) Run(_ context.Context, dir, command string) error {
	s.Calls = append(s.Calls, ShellCall{Dir: dir, Command: command})
	return s.CommandErrs[command]
}

func (s *SpyShellRepository) Args(command string) []string {
	return []string{"sh", "-c", command}
}

// Commands returns the commands run so far, in order.
func (s *SpyShellRepository) Commands() []string {
	commands := make([]string, 0, len(s.Calls))
	for _, call := range s.Calls {
		commands = append(commands, call.Command)
	}
	return commands
}

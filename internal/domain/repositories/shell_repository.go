package repositories

import (
	"context"
)

// ShellRepository runs user-declared build commands through the system shell.
// Commands execute with the privileges of depman itself: the depfile is trusted input.
type ShellRepository interface {
	Run(ctx context.Context, dir, command string) error
	Args(command string) []string
}

package process

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/depman/internal/domain/entities"
)

// Runner executes external commands synchronously. A non-zero exit status, or a command
// that cannot be started, is reported as *entities.SubprocessError.
type Runner interface {
	// Capture runs the command with its output buffered; the output is attached to the
	// returned error on failure.
	Capture(ctx context.Context, dir string, args ...string) error

	// Stream runs the command with its output connected to the terminal.
	Stream(ctx context.Context, dir string, args ...string) error
}

// CommandRunner is the os/exec backed Runner.
type CommandRunner struct {
	stdout io.Writer
	stderr io.Writer
}

// NewCommandRunner creates a CommandRunner streaming to the process standard streams.
func NewCommandRunner() *CommandRunner {
	return &CommandRunner{stdout: os.Stdout, stderr: os.Stderr}
}

// NewCommandRunnerWithOutput creates a CommandRunner streaming to the given writers.
func NewCommandRunnerWithOutput(stdout, stderr io.Writer) *CommandRunner {
	return &CommandRunner{stdout: stdout, stderr: stderr}
}

func (it *CommandRunner) Capture(ctx context.Context, dir string, args ...string) error {
	var stdout, stderr bytes.Buffer
	return it.run(ctx, dir, args, &stdout, &stderr, func(subErr *entities.SubprocessError) {
		subErr.Stdout = stdout.String()
		subErr.Stderr = stderr.String()
	})
}

func (it *CommandRunner) Stream(ctx context.Context, dir string, args ...string) error {
	return it.run(ctx, dir, args, it.stdout, it.stderr, nil)
}

func (it *CommandRunner) run(
	ctx context.Context,
	dir string,
	args []string,
	stdout, stderr io.Writer,
	decorate func(*entities.SubprocessError),
) error {
	if len(args) == 0 {
		return errors.New("no command given")
	}

	logger.Debugf("Running %s in %s", entities.FormatCommandLine(args), dir)

	cmd := exec.CommandContext(ctx, args[0], args[1:]...) //nolint:gosec // commands come from the trusted depfile
	cmd.Dir = dir
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	err := cmd.Run()
	if err == nil {
		return nil
	}

	subErr := &entities.SubprocessError{
		Dir:      dir,
		Args:     args,
		ExitCode: -1,
		Err:      err,
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		subErr.ExitCode = exitErr.ExitCode()
	}
	if decorate != nil {
		decorate(subErr)
	}
	return subErr
}

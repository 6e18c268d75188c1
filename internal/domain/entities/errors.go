package entities

import (
	"fmt"
	"strings"
)

// ValidationError reports an invalid declaration. It is fatal for the whole run and is
// raised before any subprocess is started.
type ValidationError struct {
	Dependency string
	Reason     string
}

func (e *ValidationError) Error() string {
	if e.Dependency == "" {
		return "invalid depfile: " + e.Reason
	}
	return fmt.Sprintf("dependency %s %s", e.Dependency, e.Reason)
}

// PathConflictError reports that the dependencies directory exists but is not a directory.
type PathConflictError struct {
	Path string
}

func (e *PathConflictError) Error() string {
	return fmt.Sprintf("path %s exists, but isn't a directory", e.Path)
}

// DependencyPathConflictError reports that a dependency's working copy path exists but is
// not a directory. Only that dependency is skipped.
type DependencyPathConflictError struct {
	Dependency string
	Path       string
}

func (e *DependencyPathConflictError) Error() string {
	return fmt.Sprintf("dependency %s: path %s exists, but isn't a directory", e.Dependency, e.Path)
}

// SubprocessError reports a command that exited with a non-zero status, or could not be
// started at all (ExitCode -1).
type SubprocessError struct {
	Dir      string
	Args     []string
	ExitCode int
	Stdout   string
	Stderr   string
	Err      error
}

// CommandLine renders the argument vector as it would be typed in a shell.
func (e *SubprocessError) CommandLine() string {
	return FormatCommandLine(e.Args)
}

func (e *SubprocessError) Error() string {
	return fmt.Sprintf("command %q exited with code %d", e.CommandLine(), e.ExitCode)
}

func (e *SubprocessError) Unwrap() error { return e.Err }

// BatchError is returned by a phase when at least one dependency failed.
type BatchError struct {
	Phase  string
	Failed int
	Total  int
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("%s: %d of %d dependencies failed", e.Phase, e.Failed, e.Total)
}

// FormatCommandLine joins arguments, quoting the ones containing whitespace.
func FormatCommandLine(args []string) string {
	quoted := make([]string, len(args))
	for i, arg := range args {
		if arg == "" || strings.ContainsAny(arg, " \t\n\"'") {
			quoted[i] = fmt.Sprintf("%q", arg)
			continue
		}
		quoted[i] = arg
	}
	return strings.Join(quoted, " ")
}

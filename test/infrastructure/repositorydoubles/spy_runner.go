//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/depman/internal/infrastructure/repositories/process"
)

// RunnerCall records a single subprocess invocation.
type RunnerCall struct {
	Mode string // capture or stream
	Dir  string
	Args []string
}

// SpyRunner implements process.Runner without starting any process.
type SpyRunner struct {
	Err   error
	Calls []RunnerCall
}

var _ process.Runner = (*SpyRunner)(nil)

func (s *SpyRunner) Capture(_ context.Context, dir string, args ...string) error {
	s.Calls = append(s.Calls, RunnerCall{Mode: "capture", Dir: dir, Args: args})
	return s.Err
}

func (s *SpyRunner) Stream(_ context.Context, dir string, args ...string) error {
	s.Calls = append(s.Calls, RunnerCall{Mode: "stream", Dir: dir, Args: args})
	return s.Err
}

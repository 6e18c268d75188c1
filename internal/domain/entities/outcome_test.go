//go:build unit

package entities_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/depman/internal/domain/entities"
)

func TestPlanSync(t *testing.T) {
	t.Parallel()

	assert.Equal(t, entities.ActionClone, entities.PlanSync(entities.StateAbsent))
	assert.Equal(t, entities.ActionUpdate, entities.PlanSync(entities.StateDirectory))
	assert.Equal(t, entities.ActionConflict, entities.PlanSync(entities.StateNotDirectory))
}

func TestReportErr(t *testing.T) {
	t.Parallel()

	t.Run("should return nil when every dependency succeeded", func(t *testing.T) {
		// given
		report := &entities.Report{Phase: "update"}
		report.Add(entities.Result{Dependency: "a", Outcome: entities.OutcomeCloned})
		report.Add(entities.Result{Dependency: "b", Outcome: entities.OutcomeUpdated})

		// when
		err := report.Err()

		// then
		require.NoError(t, err)
		assert.Zero(t, report.Failed())
	})

	t.Run("should count failures in a batch error", func(t *testing.T) {
		// given
		report := &entities.Report{Phase: "build"}
		report.Add(entities.Result{Dependency: "a", Outcome: entities.OutcomeBuilt})
		report.Add(entities.Result{Dependency: "b", Outcome: entities.OutcomeFailed, Err: errors.New("boom")})
		report.Add(entities.Result{
			Dependency: "c",
			Outcome:    entities.OutcomeSkippedConflict,
			Err:        &entities.DependencyPathConflictError{Dependency: "c", Path: "/deps/c"},
		})

		// when
		err := report.Err()

		// then
		var batchErr *entities.BatchError
		require.ErrorAs(t, err, &batchErr)
		assert.Equal(t, 2, batchErr.Failed)
		assert.Equal(t, 3, batchErr.Total)
		assert.Equal(t, "build: 2 of 3 dependencies failed", err.Error())
	})

	t.Run("should count an updated dependency with a failed fetch", func(t *testing.T) {
		// given
		report := &entities.Report{Phase: "update"}
		report.Add(entities.Result{Dependency: "a", Outcome: entities.OutcomeUpdated, Err: errors.New("fetch")})

		// then
		assert.Equal(t, 1, report.Failed())
	})
}

func TestFormatCommandLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{name: "plain", args: []string{"git", "fetch", "origin"}, expected: "git fetch origin"},
		{name: "whitespace", args: []string{"sh", "-c", "make && make install"}, expected: `sh -c "make && make install"`},
		{name: "empty argument", args: []string{"git", "checkout", ""}, expected: `git checkout ""`},
		{name: "quotes", args: []string{"echo", `say "hi"`}, expected: `echo "say \"hi\""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, entities.FormatCommandLine(tt.args))
		})
	}
}

func TestSubprocessError(t *testing.T) {
	t.Parallel()

	// given
	cause := errors.New("exit status 128")
	err := error(&entities.SubprocessError{
		Dir:      "/deps",
		Args:     []string{"git", "clone", "https://example.com/x", "x", "--recursive"},
		ExitCode: 128,
		Err:      cause,
	})

	// then
	assert.Equal(t, `command "git clone https://example.com/x x --recursive" exited with code 128`, err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestWorkingCopyStatusShortHead(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0123abcd", entities.WorkingCopyStatus{Head: "0123abcdef4567"}.ShortHead())
	assert.Equal(t, "abc", entities.WorkingCopyStatus{Head: "abc"}.ShortHead())
	assert.Empty(t, entities.WorkingCopyStatus{}.ShortHead())
}

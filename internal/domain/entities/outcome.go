package entities

import (
	"time"
)

// WorkingCopyState is what the filesystem holds at a dependency's working copy path.
type WorkingCopyState int

const (
	StateAbsent WorkingCopyState = iota
	StateDirectory
	StateNotDirectory
)

func (s WorkingCopyState) String() string {
	switch s {
	case StateAbsent:
		return "absent"
	case StateDirectory:
		return "directory"
	case StateNotDirectory:
		return "not a directory"
	default:
		return "unknown"
	}
}

// SyncAction is the version-control operation planned for a dependency.
type SyncAction string

const (
	ActionClone    SyncAction = "clone"
	ActionUpdate   SyncAction = "update"
	ActionConflict SyncAction = "conflict"
	ActionBuild    SyncAction = "build"
)

// PlanSync maps a working copy state to the action that converges it to the declaration.
func PlanSync(state WorkingCopyState) SyncAction {
	switch state {
	case StateAbsent:
		return ActionClone
	case StateDirectory:
		return ActionUpdate
	default:
		return ActionConflict
	}
}

// Outcome is the result of processing one dependency in one phase.
type Outcome string

const (
	OutcomeCloned          Outcome = "cloned"
	OutcomeUpdated         Outcome = "updated"
	OutcomeSkippedConflict Outcome = "skipped_conflict"
	OutcomeBuilt           Outcome = "built"
	OutcomeBuildSkipped    Outcome = "build_skipped"
	OutcomePlanned         Outcome = "planned"
	OutcomeFailed          Outcome = "failed"
)

// Result records what happened to a single dependency.
type Result struct {
	Dependency string
	Action     SyncAction
	Outcome    Outcome
	Duration   time.Duration
	Err        error
}

// Failed reports whether the dependency needs attention after this run.
func (r Result) Failed() bool {
	return r.Err != nil
}

// Report aggregates the results of one phase over all processed dependencies.
type Report struct {
	Phase   string
	RunID   string
	Results []Result
}

// Add appends a result to the report.
func (r *Report) Add(result Result) {
	r.Results = append(r.Results, result)
}

// Failed returns how many dependencies ended with an error.
func (r *Report) Failed() int {
	failed := 0
	for _, result := range r.Results {
		if result.Failed() {
			failed++
		}
	}
	return failed
}

// Err returns a BatchError when any dependency failed, nil otherwise.
func (r *Report) Err() error {
	if failed := r.Failed(); failed > 0 {
		return &BatchError{Phase: r.Phase, Failed: failed, Total: len(r.Results)}
	}
	return nil
}

package entities

// WorkingCopyStatus describes the resolved state of a dependency's working copy.
type WorkingCopyStatus struct {
	Name         string
	Path         string
	State        WorkingCopyState
	IsRepository bool
	Head         string // full commit hash, empty when unresolved
	Branch       string // empty when HEAD is detached
	// Matches is nil when the declared version is HEAD or could not be resolved.
	Matches *bool
}

// ShortHead returns the abbreviated commit hash.
func (s WorkingCopyStatus) ShortHead() string {
	const shortLen = 8
	if len(s.Head) > shortLen {
		return s.Head[:shortLen]
	}
	return s.Head
}

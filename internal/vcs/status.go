// pattern: Functional Core

package vcs

// Status classifies a project directory's version-control state.
type Status int

const (
	// StatusUnknown is the degraded fallback when inspection fails.
	// It is a status value, never an error.
	StatusUnknown Status = iota
	// StatusNotARepo means the directory has no repository marker.
	StatusNotARepo
	// StatusClean means a repository with no pending changes.
	StatusClean
	// StatusDirty means a repository with staged, unstaged, or
	// untracked changes.
	StatusDirty
)

// String returns the status name for logs and CLI output.
func (s Status) String() string {
	switch s {
	case StatusNotARepo:
		return "no-repo"
	case StatusClean:
		return "clean"
	case StatusDirty:
		return "dirty"
	default:
		return "unknown"
	}
}

// Marker returns the single-character indicator shown next to a project
// name in list output.
func (s Status) Marker() string {
	switch s {
	case StatusDirty:
		return "*"
	case StatusUnknown:
		return "?"
	default:
		return ""
	}
}

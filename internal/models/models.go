// Package models defines the data objects shared across repostatus packages.
package models

// RepoState is the terminal state a scanned directory ends up in.
type RepoState int

// Per-directory states. Every directory starts Unchecked and moves to exactly
// one of the others.
const (
	StateUnchecked RepoState = iota
	StateNotARepo
	StateProbeFailed
	StateToolMissing
	StateClean
	StateDirty
)

func (s RepoState) String() string {
	switch s {
	case StateNotARepo:
		return "not_a_repo"
	case StateProbeFailed:
		return "probe_failed"
	case StateToolMissing:
		return "tool_missing"
	case StateClean:
		return "clean"
	case StateDirty:
		return "dirty"
	default:
		return "unchecked"
	}
}

// RepoReport summarizes the status of one immediate subdirectory of the root.
type RepoReport struct {
	Name    string // Root-relative display name
	Path    string
	State   RepoState
	Branch  string // Branch header text when branch display is enabled
	Err     string // Captured stderr for StateProbeFailed
	Entries []StatusEntry
}

// Dirty reports whether the repository has any status entries.
func (r *RepoReport) Dirty() bool {
	return r.State == StateDirty
}

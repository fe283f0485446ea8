package models

import "strings"

// StatusCode is the two-character XY code from `git status -s`.
// The first character is the index status, the second the worktree status.
type StatusCode string

// UntrackedCode is the joint sentinel git uses for untracked paths.
const UntrackedCode StatusCode = "??"

// Index returns the index half of the code, or a space when missing.
func (c StatusCode) Index() byte {
	if len(c) < 1 {
		return ' '
	}
	return c[0]
}

// Worktree returns the worktree half of the code, or a space when missing.
func (c StatusCode) Worktree() byte {
	if len(c) < 2 {
		return ' '
	}
	return c[1]
}

// Untracked reports whether the code is the untracked sentinel.
func (c StatusCode) Untracked() bool {
	return c == UntrackedCode
}

// Has reports whether either half of the code is flag.
func (c StatusCode) Has(flag byte) bool {
	return strings.IndexByte(string(c), flag) >= 0
}

// Category is the semantic kind of change a status code denotes.
type Category int

// Categories in classification precedence order.
const (
	CategoryUntracked Category = iota
	CategoryAdded
	CategoryModified
	CategoryDeleted
	CategoryRenamed
	CategoryCopied
	CategoryUnknown
)

func (c Category) String() string {
	switch c {
	case CategoryUntracked:
		return "untracked"
	case CategoryAdded:
		return "added"
	case CategoryModified:
		return "modified"
	case CategoryDeleted:
		return "deleted"
	case CategoryRenamed:
		return "renamed"
	case CategoryCopied:
		return "copied"
	default:
		return "unknown"
	}
}

// StatusEntry is one file line of short status output.
type StatusEntry struct {
	Code StatusCode
	Path string
	Raw  string // Set instead of Code/Path when the line was too short to parse
}

// Malformed reports whether the entry could not be split into code and path.
func (e StatusEntry) Malformed() bool {
	return e.Raw != ""
}

package status

import (
	"strings"
	"unicode/utf8"

	"github.com/chmouel/repostatus/internal/models"
	"github.com/samber/lo"
)

const (
	codeWidth    = 2
	branchPrefix = "## "
)

// ParseLine splits one short-status line into its code and path.
// The first two characters (runes, not bytes) are the code verbatim, spaces
// included. It returns false for lines too short to carry a code.
func ParseLine(line string) (models.StatusEntry, bool) {
	if utf8.RuneCountInString(line) < codeWidth {
		return models.StatusEntry{}, false
	}
	cut := 0
	for i := 0; i < codeWidth; i++ {
		_, size := utf8.DecodeRuneInString(line[cut:])
		cut += size
	}
	return models.StatusEntry{
		Code: models.StatusCode(line[:cut]),
		Path: strings.TrimSpace(line[cut:]),
	}, true
}

// ParseOutput parses every non-blank line of short-status output.
// Lines shorter than a status code are kept verbatim in StatusEntry.Raw.
func ParseOutput(out string) []models.StatusEntry {
	lines := lo.Filter(strings.Split(out, "\n"), func(line string, _ int) bool {
		return strings.TrimSpace(line) != ""
	})
	return lo.Map(lines, func(line string, _ int) models.StatusEntry {
		line = strings.TrimRight(line, "\r")
		entry, ok := ParseLine(line)
		if !ok {
			return models.StatusEntry{Raw: line}
		}
		return entry
	})
}

// SplitBranchHeader separates the `## branch...` header emitted by
// `git status -s -b` from the remaining file lines.
func SplitBranchHeader(out string) (branch, rest string) {
	first, remainder, _ := strings.Cut(out, "\n")
	header, ok := strings.CutPrefix(first, branchPrefix)
	if !ok {
		return "", out
	}
	return strings.TrimSpace(header), remainder
}

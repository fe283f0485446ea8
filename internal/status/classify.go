// Package status parses and classifies `git status -s` output.
package status

import (
	"strings"

	"github.com/chmouel/repostatus/internal/models"
)

// Symbol is the display glyph and category chosen for a status code.
type Symbol struct {
	Glyph    string
	Category models.Category
}

// precedence lists the containment rules in the order they are checked.
// A worktree can report combined states (e.g. "AM"), so the first match wins.
var precedence = []struct {
	flag     byte
	glyph    string
	category models.Category
}{
	{'A', "A", models.CategoryAdded},
	{'M', "M", models.CategoryModified},
	{'D', "D", models.CategoryDeleted},
	{'R', "R", models.CategoryRenamed},
	{'C', "C", models.CategoryCopied},
}

// Classify maps a status code to its symbol. It is total: codes that match no
// rule are rendered as themselves under CategoryUnknown.
func Classify(code models.StatusCode) Symbol {
	if code.Untracked() {
		return Symbol{Glyph: "+", Category: models.CategoryUntracked}
	}
	for _, rule := range precedence {
		if code.Has(rule.flag) {
			return Symbol{Glyph: rule.glyph, Category: rule.category}
		}
	}

	glyph := strings.TrimSpace(string(code))
	if glyph == "" {
		glyph = string(code)
	}
	return Symbol{Glyph: glyph, Category: models.CategoryUnknown}
}

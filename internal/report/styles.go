package report

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/chmouel/repostatus/internal/models"
	"github.com/chmouel/repostatus/internal/theme"
)

// Styles holds the rendered styles for one palette and renderer.
type Styles struct {
	Name     lipgloss.Style
	Branch   lipgloss.Style
	Success  lipgloss.Style
	Warn     lipgloss.Style
	Error    lipgloss.Style
	category map[models.Category]lipgloss.Style
}

// NewStyles binds a palette to a renderer.
func NewStyles(r *lipgloss.Renderer, p *theme.Palette) Styles {
	fg := func(c lipgloss.Color) lipgloss.Style {
		return r.NewStyle().Foreground(c)
	}
	return Styles{
		Name:    fg(p.Header),
		Branch:  fg(p.Success),
		Success: fg(p.Success),
		Warn:    fg(p.Warn),
		Error:   fg(p.Error),
		category: map[models.Category]lipgloss.Style{
			models.CategoryUntracked: fg(p.Untracked),
			models.CategoryAdded:     fg(p.Added),
			models.CategoryModified:  fg(p.Modified),
			models.CategoryDeleted:   fg(p.Deleted),
			models.CategoryRenamed:   fg(p.Renamed),
			models.CategoryCopied:    fg(p.Copied),
			models.CategoryUnknown:   fg(p.Warn),
		},
	}
}

// Category returns the style for a change category.
func (s Styles) Category(c models.Category) lipgloss.Style {
	if style, ok := s.category[c]; ok {
		return style
	}
	return s.Warn
}

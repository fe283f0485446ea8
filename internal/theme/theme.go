// Package theme provides the colour palettes used to render scan output.
package theme

import "github.com/charmbracelet/lipgloss"

// Palette defines every colour the report uses.
type Palette struct {
	Header    lipgloss.Color // Repository names
	Success   lipgloss.Color // Clean marker
	Warn      lipgloss.Color // Not-a-repository notices and unknown codes
	Error     lipgloss.Color // Dirty marker and failures
	Added     lipgloss.Color
	Modified  lipgloss.Color
	Deleted   lipgloss.Color
	Renamed   lipgloss.Color
	Copied    lipgloss.Color
	Untracked lipgloss.Color
}

// Palette names.
const (
	ANSIName            = "ansi"
	DraculaName         = "dracula"
	NarnaName           = "narna"
	NordName            = "nord"
	MonokaiName         = "monokai"
	CatppuccinMochaName = "catppuccin-mocha"
	CleanLightName      = "clean-light"
)

// ANSI uses the terminal's own bright colours so output follows the user's
// terminal scheme.
func ANSI() *Palette {
	return &Palette{
		Header:    lipgloss.Color("12"), // Bright blue
		Success:   lipgloss.Color("10"), // Bright green
		Warn:      lipgloss.Color("11"), // Bright yellow
		Error:     lipgloss.Color("9"),  // Bright red
		Added:     lipgloss.Color("10"),
		Modified:  lipgloss.Color("13"), // Bright magenta
		Deleted:   lipgloss.Color("9"),
		Renamed:   lipgloss.Color("14"), // Bright cyan
		Copied:    lipgloss.Color("14"),
		Untracked: lipgloss.Color("11"),
	}
}

// Dracula returns the Dracula palette (dark background, vibrant colors).
func Dracula() *Palette {
	return &Palette{
		Header:    lipgloss.Color("#BD93F9"), // Purple
		Success:   lipgloss.Color("#50FA7B"), // Green
		Warn:      lipgloss.Color("#FFB86C"), // Orange
		Error:     lipgloss.Color("#FF5555"), // Red
		Added:     lipgloss.Color("#50FA7B"),
		Modified:  lipgloss.Color("#FF79C6"), // Pink
		Deleted:   lipgloss.Color("#FF5555"),
		Renamed:   lipgloss.Color("#8BE9FD"), // Cyan
		Copied:    lipgloss.Color("#8BE9FD"),
		Untracked: lipgloss.Color("#F1FA8C"), // Yellow
	}
}

// Narna returns a balanced dark palette with blue accents.
func Narna() *Palette {
	return &Palette{
		Header:    lipgloss.Color("#41ADFF"),
		Success:   lipgloss.Color("#3FB950"),
		Warn:      lipgloss.Color("#E3B341"),
		Error:     lipgloss.Color("#F47067"),
		Added:     lipgloss.Color("#3FB950"),
		Modified:  lipgloss.Color("#D2A8FF"),
		Deleted:   lipgloss.Color("#F47067"),
		Renamed:   lipgloss.Color("#7CE0F3"),
		Copied:    lipgloss.Color("#7CE0F3"),
		Untracked: lipgloss.Color("#F2CC60"),
	}
}

// Nord returns the Nord palette.
func Nord() *Palette {
	return &Palette{
		Header:    lipgloss.Color("#88C0D0"),
		Success:   lipgloss.Color("#A3BE8C"),
		Warn:      lipgloss.Color("#D08770"),
		Error:     lipgloss.Color("#BF616A"),
		Added:     lipgloss.Color("#A3BE8C"),
		Modified:  lipgloss.Color("#B48EAD"),
		Deleted:   lipgloss.Color("#BF616A"),
		Renamed:   lipgloss.Color("#8FBCBB"),
		Copied:    lipgloss.Color("#8FBCBB"),
		Untracked: lipgloss.Color("#EBCB8B"),
	}
}

// Monokai returns the Monokai palette.
func Monokai() *Palette {
	return &Palette{
		Header:    lipgloss.Color("#A6E22E"),
		Success:   lipgloss.Color("#A6E22E"),
		Warn:      lipgloss.Color("#FD971F"),
		Error:     lipgloss.Color("#F92672"),
		Added:     lipgloss.Color("#A6E22E"),
		Modified:  lipgloss.Color("#AE81FF"),
		Deleted:   lipgloss.Color("#F92672"),
		Renamed:   lipgloss.Color("#66D9EF"),
		Copied:    lipgloss.Color("#66D9EF"),
		Untracked: lipgloss.Color("#E6DB74"),
	}
}

// CatppuccinMocha returns the Catppuccin Mocha palette.
func CatppuccinMocha() *Palette {
	return &Palette{
		Header:    lipgloss.Color("#B4BEFE"),
		Success:   lipgloss.Color("#A6E3A1"),
		Warn:      lipgloss.Color("#FAB387"),
		Error:     lipgloss.Color("#F38BA8"),
		Added:     lipgloss.Color("#A6E3A1"),
		Modified:  lipgloss.Color("#F5C2E7"),
		Deleted:   lipgloss.Color("#F38BA8"),
		Renamed:   lipgloss.Color("#89DCEB"),
		Copied:    lipgloss.Color("#89DCEB"),
		Untracked: lipgloss.Color("#F9E2AF"),
	}
}

// CleanLight returns a palette for light terminal backgrounds.
func CleanLight() *Palette {
	return &Palette{
		Header:    lipgloss.Color("#0598BC"),
		Success:   lipgloss.Color("#1A7F37"),
		Warn:      lipgloss.Color("#9A6700"),
		Error:     lipgloss.Color("#CF222E"),
		Added:     lipgloss.Color("#1A7F37"),
		Modified:  lipgloss.Color("#BF3989"),
		Deleted:   lipgloss.Color("#CF222E"),
		Renamed:   lipgloss.Color("#0598BC"),
		Copied:    lipgloss.Color("#0598BC"),
		Untracked: lipgloss.Color("#D4A72C"),
	}
}

// GetPalette returns a palette by name, or ANSI if not found.
func GetPalette(name string) *Palette {
	switch name {
	case DraculaName:
		return Dracula()
	case NarnaName:
		return Narna()
	case NordName:
		return Nord()
	case MonokaiName:
		return Monokai()
	case CatppuccinMochaName:
		return CatppuccinMocha()
	case CleanLightName:
		return CleanLight()
	default:
		return ANSI()
	}
}

// DefaultName returns the default palette name.
func DefaultName() string {
	return ANSIName
}

// AvailableThemes returns the list of palette names.
func AvailableThemes() []string {
	return []string{
		ANSIName,
		DraculaName,
		NarnaName,
		NordName,
		MonokaiName,
		CatppuccinMochaName,
		CleanLightName,
	}
}

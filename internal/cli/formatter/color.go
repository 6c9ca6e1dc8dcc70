package formatter

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/danielcooke/planscan/internal/pseudocode"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// Dim renders text in the dim style.
func Dim(s string) string {
	return StyleDim.Render(s)
}

// Bold renders text in the bold foreground style.
func Bold(s string) string {
	return StyleBold.Render(s)
}

// IssueLevelStyle returns the style for a pseudocode issue severity.
func IssueLevelStyle(level pseudocode.IssueLevel) lipgloss.Style {
	switch level {
	case pseudocode.LevelCritical, pseudocode.LevelError:
		return StyleRed
	case pseudocode.LevelWarning:
		return StyleYellow
	case pseudocode.LevelInfo:
		return StyleBlue
	default:
		return StyleDim
	}
}

package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Bambou-Dev/UnrealLogsReader/internal/model"
)

var (
	ColorPrimary   = lipgloss.Color("#3B82F6")
	ColorError     = lipgloss.Color("#FF6666")
	ColorWarning   = lipgloss.Color("#FFE566")
	ColorDisplay   = lipgloss.Color("#E5E5E5")
	ColorCook      = lipgloss.Color("#99CCFF")
	ColorMuted     = lipgloss.Color("#6B7280")
	ColorBorder    = lipgloss.Color("#374151")
	ColorHighlight = lipgloss.Color("#1F2937")
	ColorActive    = lipgloss.Color("#10B981")

	StylePane = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder)

	StylePaneFocused = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorPrimary)

	StyleHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F9FAFB")).
			Background(ColorPrimary).
			Padding(0, 1)

	StyleError   = lipgloss.NewStyle().Foreground(ColorError)
	StyleWarning = lipgloss.NewStyle().Foreground(ColorWarning)
	StyleDisplay = lipgloss.NewStyle().Foreground(ColorDisplay)
	StyleCook    = lipgloss.NewStyle().Foreground(ColorCook)
	StyleMuted   = lipgloss.NewStyle().Foreground(ColorMuted)

	StyleSelected = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F9FAFB")).
			Background(lipgloss.Color("#1E3A5F"))

	StyleCursor = lipgloss.NewStyle().Background(ColorHighlight)
)

// EntryStyle picks the display style for a log line: errors red, warnings
// yellow, cook output light blue, everything else the default grey.
func EntryStyle(level model.Level, category string) lipgloss.Style {
	switch {
	case level == model.LevelError:
		return StyleError
	case level == model.LevelWarning:
		return StyleWarning
	case category == "LogCook":
		return StyleCook
	default:
		return StyleDisplay
	}
}

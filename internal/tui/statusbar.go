package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Bambou-Dev/UnrealLogsReader/internal/ui"
)

// RenderStatusBar draws the bottom bar: the visible/selected entry summary
// on the left, the latest status message beside it, key hints on the right.
func RenderStatusBar(summary, status, hints string, width int) string {
	sep := ui.StyleMuted.Render("  |  ")

	left := "  "
	if summary != "" {
		left += lipgloss.NewStyle().Bold(true).Foreground(ui.ColorPrimary).Render(summary)
		if status != "" {
			left += sep
		}
	}
	left += ui.StyleMuted.Render(status)

	help := ui.StyleMuted.Render(hints + " ")

	gap := width - lipgloss.Width(left) - lipgloss.Width(help)
	if gap < 0 {
		gap = 0
	}
	padding := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.NewStyle().
		Background(ui.ColorHighlight).
		Width(width).
		Render(left + padding + help)
}

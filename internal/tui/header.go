package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/Bambou-Dev/UnrealLogsReader/internal/ui"
)

func RenderHeader(path string, warnings, errors, width int) string {
	name := path
	if name == "" {
		name = "(no file)"
	}
	left := lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.Color("#F9FAFB")).
		Render(fmt.Sprintf(" unreal-log-reader | %s", name))

	counts := lipgloss.NewStyle().Foreground(ui.ColorWarning).
		Render(fmt.Sprintf("Warnings: %d ", warnings)) +
		lipgloss.NewStyle().Foreground(ui.ColorError).
			Render(fmt.Sprintf("Errors: %d ", errors))

	gap := width - lipgloss.Width(left) - lipgloss.Width(counts)
	if gap < 0 {
		gap = 0
	}
	padding := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.NewStyle().
		Background(lipgloss.Color("#1F2937")).
		Width(width).
		Render(left + padding + counts)
}

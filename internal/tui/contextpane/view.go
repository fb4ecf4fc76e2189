// Package contextpane shows the unfiltered log lines surrounding the last
// activated entry.
package contextpane

import (
	"fmt"
	"strings"

	"github.com/Bambou-Dev/UnrealLogsReader/internal/logfile"
	"github.com/Bambou-Dev/UnrealLogsReader/internal/ui"
)

// Model renders a window of entries around one sequence index. Context is
// looked up in the full store, so lines hidden by the active filters still
// appear here.
type Model struct {
	store  *logfile.Store
	seq    int // activated sequence index, -1 = none
	radius int
	width  int
	height int
}

func New(radius int) Model {
	return Model{seq: -1, radius: radius}
}

// SetStore points the pane at a (re)loaded store and clears the focus.
func (m *Model) SetStore(store *logfile.Store) {
	m.store = store
	m.seq = -1
}

// Focus centres the pane on the given sequence index.
func (m *Model) Focus(seq int) {
	m.seq = seq
}

// SetSize stores the pane dimensions.
func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
}

func (m Model) View() string {
	if m.store == nil || m.seq < 0 {
		return "\n  " + ui.StyleMuted.Render("Select a log line to view context.")
	}

	entries := m.store.Context(m.seq, m.radius)
	if len(entries) == 0 {
		return "\n  " + ui.StyleMuted.Render("Select a log line to view context.")
	}

	title := fmt.Sprintf(" Context around log #%d", m.seq)
	lines := []string{ui.StyleMuted.Render(title), ""}
	for _, e := range entries {
		text := fmt.Sprintf(" [%d] %s", e.Seq, e.Text)
		if m.width > 1 && len(text) > m.width-1 {
			text = text[:m.width-1]
		}
		if e.Seq == m.seq {
			lines = append(lines, ui.StyleDisplay.Bold(true).Foreground(ui.ColorActive).Render(text))
		} else {
			lines = append(lines, ui.StyleMuted.Render(text))
		}
	}
	return strings.Join(lines, "\n")
}

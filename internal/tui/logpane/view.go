// Package logpane renders the filtered log list and handles selection
// gestures over filtered positions.
package logpane

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Bambou-Dev/UnrealLogsReader/internal/logfile"
	"github.com/Bambou-Dev/UnrealLogsReader/internal/model"
	"github.com/Bambou-Dev/UnrealLogsReader/internal/selection"
	"github.com/Bambou-Dev/UnrealLogsReader/internal/ui"
)

// ActivatedMsg is emitted when the user plain-selects a line; the sequence
// index drives the context pane.
type ActivatedMsg struct {
	Seq int
}

// Model owns the cursor, scroll window, and selection state for the filtered
// log view. The visible slice is indices into the store; selection positions
// index the indices slice, never the store.
type Model struct {
	store   *logfile.Store
	indices []int
	sel     selection.Model
	cursor  int
	offset  int
	width   int
	height  int
}

func New() Model {
	return Model{sel: selection.New()}
}

// SetData replaces the visible slice and, in the same operation, drops the
// selection and resets the cursor. Filtered positions from a previous view
// are meaningless against the new one, so these can never be updated
// independently.
func (m *Model) SetData(store *logfile.Store, indices []int) {
	m.store = store
	m.indices = indices
	m.sel.Clear()
	m.cursor = 0
	m.offset = 0
}

// SetSize stores the pane dimensions.
func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.clampScroll()
}

// Len returns the number of visible entries.
func (m Model) Len() int { return len(m.indices) }

// SelectionCount returns how many positions are selected.
func (m Model) SelectionCount() int { return m.sel.Count() }

// SelectedLines returns the raw text of every selected entry in ascending
// filtered order.
func (m Model) SelectedLines() []string {
	var lines []string
	for _, pos := range m.sel.Selected() {
		if pos >= 0 && pos < len(m.indices) {
			lines = append(lines, m.store.Entries[m.indices[pos]].Text)
		}
	}
	return lines
}

// CursorEntry returns the entry under the cursor, or nil when the view is
// empty.
func (m Model) CursorEntry() *model.Entry {
	if m.store == nil || m.cursor < 0 || m.cursor >= len(m.indices) {
		return nil
	}
	return &m.store.Entries[m.indices[m.cursor]]
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, ui.Keys.Up):
		m.moveCursor(-1)
	case key.Matches(keyMsg, ui.Keys.Down):
		m.moveCursor(1)
	case key.Matches(keyMsg, ui.Keys.PageUp):
		m.moveCursor(-m.pageSize())
	case key.Matches(keyMsg, ui.Keys.PageDown):
		m.moveCursor(m.pageSize())
	case key.Matches(keyMsg, ui.Keys.Top):
		m.cursor = 0
		m.clampScroll()
	case key.Matches(keyMsg, ui.Keys.Bottom):
		m.cursor = len(m.indices) - 1
		if m.cursor < 0 {
			m.cursor = 0
		}
		m.clampScroll()

	case key.Matches(keyMsg, ui.Keys.ToggleSel):
		if len(m.indices) > 0 {
			m.sel.Toggle(m.cursor)
		}
	case key.Matches(keyMsg, ui.Keys.RangeSel):
		if len(m.indices) > 0 {
			m.sel.Range(m.cursor)
		}
	case key.Matches(keyMsg, ui.Keys.Enter):
		if e := m.CursorEntry(); e != nil {
			m.sel.Click(m.cursor)
			seq := e.Seq
			return m, func() tea.Msg { return ActivatedMsg{Seq: seq} }
		}
	}

	return m, nil
}

func (m *Model) moveCursor(delta int) {
	if len(m.indices) == 0 {
		m.cursor = 0
		return
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.indices) {
		m.cursor = len(m.indices) - 1
	}
	m.clampScroll()
}

func (m *Model) pageSize() int {
	if m.height < 1 {
		return 1
	}
	return m.height
}

// clampScroll keeps the cursor row inside the visible window.
func (m *Model) clampScroll() {
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.height > 0 && m.cursor >= m.offset+m.height {
		m.offset = m.cursor - m.height + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

func (m Model) View() string {
	if m.store == nil {
		return "\n  Loading log..."
	}
	if len(m.indices) == 0 {
		if m.store.Len() == 0 {
			return "\n  No log loaded"
		}
		return "\n  No entries match the current filters"
	}

	end := m.offset + m.height
	if end > len(m.indices) {
		end = len(m.indices)
	}

	var out string
	for pos := m.offset; pos < end; pos++ {
		entry := m.store.Entries[m.indices[pos]]
		line := truncate(entry.Text, m.width-1)

		style := ui.EntryStyle(entry.Level, entry.Category)
		switch {
		case m.sel.Contains(pos):
			style = ui.StyleSelected
		case pos == m.cursor:
			style = style.Background(ui.ColorHighlight)
		}

		out += style.Render(" "+line) + "\n"
	}
	return out
}

// StatusLine summarizes the pane for the status bar.
func (m Model) StatusLine() string {
	if m.store == nil || len(m.indices) == 0 {
		return ""
	}
	s := fmt.Sprintf("%d/%d entries", len(m.indices), m.store.Len())
	if n := m.sel.Count(); n > 0 {
		s += fmt.Sprintf(", %d selected", n)
	}
	return s
}

func truncate(s string, n int) string {
	if n < 1 || len(s) <= n {
		return s
	}
	return s[:n]
}

// Package filteroverlay is the modal for adjusting the filter criteria.
package filteroverlay

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Bambou-Dev/UnrealLogsReader/internal/filter"
	"github.com/Bambou-Dev/UnrealLogsReader/internal/model"
	"github.com/Bambou-Dev/UnrealLogsReader/internal/ui"
)

// ResultMsg is emitted when the user applies or cancels the overlay.
type ResultMsg struct {
	Applied bool
	Filter  filter.Config
}

type field int

const (
	fieldErrors field = iota
	fieldWarnings
	fieldDisplay
	fieldDuplicates
	fieldCategory
	fieldSearch
	fieldCount
)

// Model is the Bubble Tea model for the filter overlay. It edits a copy of
// the filter config; nothing reaches the app until the user applies.
type Model struct {
	active     bool
	focused    field
	cfg        filter.Config
	categories []string // "All" first, from the store
	catIdx     int
	search     textinput.Model
	width      int
	height     int
}

// New creates an overlay pre-populated with the current filter values and
// the category set reported by the parser.
func New(categories []string, current filter.Config) Model {
	search := textinput.New()
	search.Placeholder = "substring, case-insensitive"
	search.CharLimit = 128
	search.Width = 30
	search.SetValue(current.Search)

	m := Model{
		active:     true,
		cfg:        current,
		categories: categories,
		search:     search,
	}

	for i, c := range categories {
		if c == current.Category {
			m.catIdx = i
			break
		}
	}
	return m
}

// IsActive reports whether the overlay is currently visible.
func (m Model) IsActive() bool { return m.active }

// SetSize stores terminal dimensions so the overlay can centre itself.
func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.active {
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.search.Focused() {
		switch keyMsg.String() {
		case "esc":
			m.active = false
			return m, emitResult(false, m.cfg)
		case "enter", "tab":
			m.search.Blur()
			m.moveFocus(1)
			return m, nil
		case "up":
			m.search.Blur()
			m.moveFocus(-1)
			return m, nil
		default:
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			return m, cmd
		}
	}

	switch keyMsg.String() {
	case "j", "down", "tab":
		m.moveFocus(1)
	case "k", "up", "shift+tab":
		m.moveFocus(-1)

	case "enter", " ", "l", "right":
		switch m.focused {
		case fieldErrors:
			m.cfg.ShowErrors = !m.cfg.ShowErrors
		case fieldWarnings:
			m.cfg.ShowWarnings = !m.cfg.ShowWarnings
		case fieldDisplay:
			m.cfg.ShowDisplay = !m.cfg.ShowDisplay
		case fieldDuplicates:
			m.cfg.ShowDuplicates = !m.cfg.ShowDuplicates
		case fieldCategory:
			m.catIdx = cycle(m.catIdx, 1, len(m.categories))
		case fieldSearch:
			m.search.Focus()
			return m, textinput.Blink
		}

	case "h", "left":
		if m.focused == fieldCategory {
			m.catIdx = cycle(m.catIdx, -1, len(m.categories))
		}

	case "a":
		m.active = false
		return m, emitResult(true, m.buildConfig())

	case "c":
		m.cfg = filter.Default()
		m.catIdx = 0
		m.search.SetValue("")

	case "esc":
		m.active = false
		return m, emitResult(false, m.cfg)
	}

	return m, nil
}

func (m Model) View() string {
	if !m.active {
		return ""
	}

	labelStyle := lipgloss.NewStyle().Width(14).Foreground(ui.ColorMuted)
	focusedLabelStyle := lipgloss.NewStyle().Width(14).Bold(true).Foreground(ui.ColorPrimary)
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#F9FAFB"))

	rows := make([]string, 0, int(fieldCount))
	for f := field(0); f < fieldCount; f++ {
		ls := labelStyle
		if f == m.focused {
			ls = focusedLabelStyle
		}

		var label, value string
		switch f {
		case fieldErrors:
			label, value = "Errors:", checkbox(m.cfg.ShowErrors)
		case fieldWarnings:
			label, value = "Warnings:", checkbox(m.cfg.ShowWarnings)
		case fieldDisplay:
			label, value = "Display:", checkbox(m.cfg.ShowDisplay)
		case fieldDuplicates:
			label, value = "Duplicates:", checkbox(m.cfg.ShowDuplicates)
		case fieldCategory:
			label = "Category:"
			value = valueStyle.Render(m.currentCategory())
		case fieldSearch:
			label = "Search:"
			value = m.search.View()
		}

		cursor := "  "
		if f == m.focused {
			cursor = lipgloss.NewStyle().Foreground(ui.ColorPrimary).Render("> ")
		}
		rows = append(rows, fmt.Sprintf("%s%s %s", cursor, ls.Render(label), value))
	}

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(ui.ColorPrimary).
		MarginBottom(1).
		Render("Filters")

	help := lipgloss.NewStyle().
		Foreground(ui.ColorMuted).
		MarginTop(1).
		Render("a: apply  c: clear  esc: cancel")

	body := lipgloss.JoinVertical(lipgloss.Left,
		title,
		strings.Join(rows, "\n"),
		help,
	)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ui.ColorPrimary).
		Padding(1, 2).
		Width(56).
		Render(body)

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height,
			lipgloss.Center, lipgloss.Center,
			box)
	}
	return box
}

func (m *Model) moveFocus(delta int) {
	next := int(m.focused) + delta
	if next < 0 {
		next = int(fieldCount) - 1
	}
	if next >= int(fieldCount) {
		next = 0
	}
	m.focused = field(next)
}

func (m Model) currentCategory() string {
	if m.catIdx >= 0 && m.catIdx < len(m.categories) {
		return m.categories[m.catIdx]
	}
	return model.CategoryAll
}

func (m Model) buildConfig() filter.Config {
	cfg := m.cfg
	cfg.Category = m.currentCategory()
	cfg.Search = strings.TrimSpace(m.search.Value())
	return cfg
}

func checkbox(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}

// cycle steps through the category list, wrapping at both ends. Index 0 is
// the "All" sentinel.
func cycle(idx, delta, count int) int {
	if count == 0 {
		return 0
	}
	idx += delta
	if idx < 0 {
		idx = count - 1
	}
	if idx >= count {
		idx = 0
	}
	return idx
}

func emitResult(applied bool, cfg filter.Config) tea.Cmd {
	return func() tea.Msg {
		return ResultMsg{Applied: applied, Filter: cfg}
	}
}

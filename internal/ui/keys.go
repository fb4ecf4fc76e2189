package ui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Quit      key.Binding
	Help      key.Binding
	Enter     key.Binding
	Reload    key.Binding
	Filter    key.Binding
	ToggleSel key.Binding
	RangeSel  key.Binding
	Copy      key.Binding
	Category  key.Binding
	Up        key.Binding
	Down      key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
	Top       key.Binding
	Bottom    key.Binding
}

var Keys = KeyMap{
	Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select line")),
	Reload:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload file")),
	Filter:    key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filters")),
	ToggleSel: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle select")),
	RangeSel:  key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "range select")),
	Copy:      key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy selection")),
	Category:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "filter to category")),
	Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("k/up", "up")),
	Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("j/down", "down")),
	PageUp:    key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "page up")),
	PageDown:  key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("pgdn", "page down")),
	Top:       key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
	Bottom:    key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),
}

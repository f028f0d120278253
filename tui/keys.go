package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings
type KeyMap struct {
	Left   key.Binding
	Right  key.Binding
	Toggle key.Binding
	Mode   key.Binding
	Quit   key.Binding
}

// DefaultKeyMap is the default set of bindings.
var DefaultKeyMap = KeyMap{
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "prev"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "next"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" ", "enter"),
		key.WithHelp("space", "toggle"),
	),
	Mode: key.NewBinding(
		key.WithKeys("b"),
		key.WithHelp("b", "bin packing"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Toggle, k.Mode, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

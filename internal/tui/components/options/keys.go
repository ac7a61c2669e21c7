package options

import "github.com/charmbracelet/bubbles/v2/key"

// KeyMap defines key bindings for the option list
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
}

// DefaultKeyMap returns the default key bindings for the option list
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("space", " ", "x"),
			key.WithHelp("space", "toggle"),
		),
	}
}

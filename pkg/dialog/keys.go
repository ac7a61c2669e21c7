package dialog

import "github.com/charmbracelet/bubbles/v2/key"

// KeyMap defines the keys a Stack listens to.
type KeyMap struct {
	Close key.Binding
}

// DefaultKeyMap closes the topmost dialog with esc.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close dialog"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Close}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

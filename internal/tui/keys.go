package tui

import "github.com/charmbracelet/bubbles/v2/key"

// KeyMap holds the demo's key bindings. Dialog bindings only apply while the
// matching dialog is topmost.
type KeyMap struct {
	Open  key.Binding
	About key.Binding
	Theme key.Binding
	Quit  key.Binding

	// Basic dialog
	Dismiss key.Binding
	Nested  key.Binding

	// Confirm dialog
	Confirm  key.Binding
	Back     key.Binding
	CloseAll key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Open: key.NewBinding(
			key.WithKeys("enter", "o"),
			key.WithHelp("enter", "open dialog"),
		),
		About: key.NewBinding(
			key.WithKeys("?", "a"),
			key.WithHelp("?", "about"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "next theme"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("enter", "c"),
			key.WithHelp("enter", "close"),
		),
		Nested: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "nested dialog"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "close all"),
		),
		Back: key.NewBinding(
			key.WithKeys("b", "backspace"),
			key.WithHelp("b", "back"),
		),
		CloseAll: key.NewBinding(
			key.WithKeys("0"),
			key.WithHelp("0", "close from index 0"),
		),
	}
}

// mainKeys is the help shown while no dialog is open.
type mainKeys struct {
	KeyMap
	toggle key.Binding
}

func (k mainKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.toggle, k.Open, k.About, k.Theme, k.Quit}
}

func (k mainKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// dialogKeys is the help shown for the topmost dialog.
type dialogKeys []key.Binding

func (k dialogKeys) ShortHelp() []key.Binding {
	return k
}

func (k dialogKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k}
}

package dialog

import tea "github.com/charmbracelet/bubbletea/v2"

// Messages for dialog management. Components deep in the model tree return
// these as commands and the Stack applies them in its Update.

// OpenMsg requests opening a dialog
type OpenMsg[K comparable] struct {
	ID K
}

// CloseMsg requests closing a dialog
type CloseMsg[K comparable] struct {
	ID K
}

// CloseAllMsg requests closing all open dialogs
type CloseAllMsg struct{}

// CloseCurrentMsg requests closing the topmost dialog
type CloseCurrentMsg struct{}

// CloseAtIndexMsg requests closing every dialog from Index upwards
type CloseAtIndexMsg struct {
	Index int
}

// Open returns a command that opens id.
func Open[K comparable](id K) tea.Cmd {
	return func() tea.Msg {
		return OpenMsg[K]{ID: id}
	}
}

// Close returns a command that closes id.
func Close[K comparable](id K) tea.Cmd {
	return func() tea.Msg {
		return CloseMsg[K]{ID: id}
	}
}

// CloseAll returns a command that closes every dialog.
func CloseAll() tea.Cmd {
	return func() tea.Msg {
		return CloseAllMsg{}
	}
}

// CloseCurrent returns a command that closes the topmost dialog.
func CloseCurrent() tea.Cmd {
	return func() tea.Msg {
		return CloseCurrentMsg{}
	}
}

// CloseAtIndex returns a command that closes dialogs from index upwards.
func CloseAtIndex(index int) tea.Cmd {
	return func() tea.Msg {
		return CloseAtIndexMsg{Index: index}
	}
}

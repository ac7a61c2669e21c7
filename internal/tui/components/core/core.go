// Package core holds the interfaces shared by the demo's components.
package core

import tea "github.com/charmbracelet/bubbletea/v2"

// Component is the base interface for all TUI components
type Component interface {
	Init() tea.Cmd
	Update(tea.Msg) (tea.Model, tea.Cmd)
	View() string
}

// Sizeable components can be resized
type Sizeable interface {
	SetSize(width, height int) tea.Cmd
}

// Focusable components can receive keyboard focus
type Focusable interface {
	Focus() tea.Cmd
	Blur() tea.Cmd
	IsFocused() bool
}

// SizeableBase provides basic size management
type SizeableBase struct {
	Width  int
	Height int
}

// SetSize sets the component size
func (s *SizeableBase) SetSize(width, height int) tea.Cmd {
	s.Width = width
	s.Height = height
	return nil
}

// GetSize returns the component size
func (s *SizeableBase) GetSize() (width, height int) {
	return s.Width, s.Height
}

// FocusableBase provides basic focus management
type FocusableBase struct {
	focused bool
}

// IsFocused returns whether the component is focused
func (f *FocusableBase) IsFocused() bool {
	return f.focused
}

// Focus focuses the component
func (f *FocusableBase) Focus() tea.Cmd {
	f.focused = true
	return nil
}

// Blur removes focus from the component
func (f *FocusableBase) Blur() tea.Cmd {
	f.focused = false
	return nil
}

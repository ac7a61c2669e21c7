// Package options renders the demo's list of boolean dialog settings.
package options

import (
	"strings"

	"github.com/billie-coop/dialogstack/internal/tui/components/core"
	"github.com/billie-coop/dialogstack/internal/tui/styles"
	"github.com/charmbracelet/bubbles/v2/key"
	tea "github.com/charmbracelet/bubbletea/v2"
)

// Option is one toggle in the list.
type Option struct {
	Key   string
	Label string
	On    bool
}

// ChangedMsg reports that an option was toggled.
type ChangedMsg struct {
	Option Option
}

// Model is a vertical list of toggles with a cursor.
type Model struct {
	core.SizeableBase
	core.FocusableBase

	options []Option
	cursor  int
	keys    KeyMap
}

// New creates a focused option list.
func New(opts ...Option) *Model {
	m := &Model{
		options: opts,
		keys:    DefaultKeyMap(),
	}
	m.Focus()
	return m
}

var (
	_ core.Component = (*Model)(nil)
	_ core.Sizeable  = (*Model)(nil)
	_ core.Focusable = (*Model)(nil)
)

// Init implements core.Component.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update moves the cursor and toggles options while focused.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if !m.IsFocused() || len(m.options) == 0 {
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		m.cursor = (m.cursor - 1 + len(m.options)) % len(m.options)
	case key.Matches(keyMsg, m.keys.Down):
		m.cursor = (m.cursor + 1) % len(m.options)
	case key.Matches(keyMsg, m.keys.Toggle):
		m.options[m.cursor].On = !m.options[m.cursor].On
		changed := m.options[m.cursor]
		return m, func() tea.Msg { return ChangedMsg{Option: changed} }
	}
	return m, nil
}

// View implements core.Component.
func (m *Model) View() string {
	s := styles.CurrentTheme().S()

	var b strings.Builder
	for i, opt := range m.options {
		box := "[ ]"
		if opt.On {
			box = "[x]"
		}
		line := box + " " + opt.Label
		switch {
		case i == m.cursor && m.IsFocused():
			line = s.Title.Render("> " + line)
		case opt.On:
			line = s.Text.Render("  " + line)
		default:
			line = s.Muted.Render("  " + line)
		}
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
	}
	return b.String()
}

// Value reports whether the option with key k is on.
func (m *Model) Value(k string) bool {
	for _, opt := range m.options {
		if opt.Key == k {
			return opt.On
		}
	}
	return false
}

// Set changes the option with key k and reports whether it existed.
func (m *Model) Set(k string, on bool) bool {
	for i := range m.options {
		if m.options[i].Key == k {
			m.options[i].On = on
			return true
		}
	}
	return false
}

// Options returns a copy of the options.
func (m *Model) Options() []Option {
	return append([]Option(nil), m.options...)
}

// KeyMap returns the list's key bindings.
func (m *Model) KeyMap() KeyMap {
	return m.keys
}

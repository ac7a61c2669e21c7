// Package eventlog shows the most recent dialog lifecycle events.
package eventlog

import (
	"fmt"
	"strings"
	"time"

	"github.com/billie-coop/dialogstack/internal/csync"
	"github.com/billie-coop/dialogstack/internal/tui/components/core"
	"github.com/billie-coop/dialogstack/internal/tui/styles"
	"github.com/billie-coop/dialogstack/pkg/events"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
)

const defaultLimit = 50

// Entry is one rendered log line.
type Entry struct {
	Time  time.Time
	Event events.Event
}

// Model keeps a bounded list of events, newest last.
type Model struct {
	core.SizeableBase

	entries *csync.Slice[Entry]
	limit   int
	now     func() time.Time
}

// New creates an empty log.
func New() *Model {
	return &Model{
		entries: csync.NewSlice[Entry](),
		limit:   defaultLimit,
		now:     time.Now,
	}
}

var (
	_ core.Component = (*Model)(nil)
	_ core.Sizeable  = (*Model)(nil)
)

// Init implements core.Component.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update records events.Event messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ev, ok := msg.(events.Event); ok {
		m.Add(ev)
	}
	return m, nil
}

// Add appends ev, dropping the oldest entries past the limit.
func (m *Model) Add(ev events.Event) {
	m.entries.Append(Entry{Time: m.now(), Event: ev})
	m.entries.TrimFront(m.entries.Len() - m.limit)
}

// Len returns the number of entries kept.
func (m *Model) Len() int {
	return m.entries.Len()
}

// View renders as many of the newest entries as fit the height.
func (m *Model) View() string {
	s := styles.CurrentTheme().S()
	entries := m.entries.ToSlice()
	if len(entries) == 0 {
		return s.Subtle.Render("no events yet")
	}

	if m.Height > 0 && len(entries) > m.Height {
		entries = entries[len(entries)-m.Height:]
	}

	lines := make([]string, len(entries))
	for i, e := range entries {
		line := Format(e)
		if m.Width > 0 {
			line = ansi.Truncate(line, m.Width, "…")
		}
		lines[i] = s.Muted.Render(e.Time.Format("15:04:05")) + " " + line
	}
	return strings.Join(lines, "\n")
}

// Format renders an entry without its timestamp.
func Format(e Entry) string {
	p, ok := e.Event.Payload.(events.DialogPayload)
	if !ok {
		return string(e.Event.Type)
	}

	switch e.Event.Type {
	case events.DialogClosedAllEvent:
		return string(e.Event.Type)
	case events.DialogClosedEvent, events.DialogUnregisteredEvent:
		if p.Index >= 0 {
			return fmt.Sprintf("%s %s @%d stack=%v", e.Event.Type, p.DialogID, p.Index, p.Stack)
		}
	}
	return fmt.Sprintf("%s %s stack=%v", e.Event.Type, p.DialogID, p.Stack)
}

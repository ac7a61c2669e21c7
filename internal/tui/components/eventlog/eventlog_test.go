package eventlog

import (
	"strings"
	"testing"
	"time"

	"github.com/billie-coop/dialogstack/pkg/events"
	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		ev   events.Event
		want string
	}{
		{
			name: "opened",
			ev: events.Event{Type: events.DialogOpenedEvent, Payload: events.DialogPayload{
				DialogID: "basic", Stack: []string{"basic"}, Index: -1,
			}},
			want: "dialog.opened basic stack=[basic]",
		},
		{
			name: "closed with index",
			ev: events.Event{Type: events.DialogClosedEvent, Payload: events.DialogPayload{
				DialogID: "confirm", Stack: []string{"basic"}, Index: 1,
			}},
			want: "dialog.closed confirm @1 stack=[basic]",
		},
		{
			name: "closed all",
			ev:   events.Event{Type: events.DialogClosedAllEvent, Payload: events.DialogPayload{Index: -1}},
			want: "dialog.closed_all",
		},
		{
			name: "foreign payload",
			ev:   events.Event{Type: "custom"},
			want: "custom",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(Entry{Event: tt.ev}))
		})
	}
}

func TestLogIsBoundedAndShowsNewest(t *testing.T) {
	m := New()
	m.now = func() time.Time { return time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC) }
	for i := 0; i < defaultLimit+10; i++ {
		m.Update(events.Event{Type: events.DialogEscEvent})
	}
	assert.Equal(t, defaultLimit, m.Len())

	m.SetSize(40, 3)
	lines := strings.Split(m.View(), "\n")
	assert.Len(t, lines, 3)
}

func TestEmptyView(t *testing.T) {
	assert.Contains(t, New().View(), "no events yet")
}

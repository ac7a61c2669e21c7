package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroker_SubscribeByType(t *testing.T) {
	b := NewBroker()
	opened := b.Subscribe(DialogOpenedEvent)

	b.Publish(Event{Type: DialogClosedEvent})
	b.Publish(Event{Type: DialogOpenedEvent, Payload: DialogPayload{DialogID: "d1"}})

	require.Len(t, opened, 1)
	ev := <-opened
	assert.Equal(t, DialogOpenedEvent, ev.Type)
	assert.Equal(t, "d1", ev.Payload.(DialogPayload).DialogID)
}

func TestBroker_WildcardReceivesEverythingOnce(t *testing.T) {
	b := NewBroker()
	all := b.Subscribe()
	both := b.Subscribe(DialogOpenedEvent, Wildcard)

	b.Publish(Event{Type: DialogOpenedEvent})
	b.Publish(Event{Type: DialogEscEvent})

	assert.Len(t, all, 2)
	assert.Len(t, both, 2)
}

func TestBroker_UnsubscribeClosesChannel(t *testing.T) {
	b := NewBroker()
	ch := b.Subscribe(DialogOpenedEvent, DialogClosedEvent)
	b.Unsubscribe(ch)

	_, ok := <-ch
	assert.False(t, ok)

	// Publishing after unsubscribe must not panic on a closed channel.
	assert.NotPanics(t, func() {
		b.Publish(Event{Type: DialogClosedEvent})
	})
}

func TestBroker_FullChannelDropsEvents(t *testing.T) {
	b := NewBroker()
	ch := b.Subscribe(DialogOpenedEvent)

	for i := 0; i < defaultBufferSize+5; i++ {
		b.Publish(Event{Type: DialogOpenedEvent})
	}
	assert.Len(t, ch, defaultBufferSize)
}

func TestBroker_HistoryIsBounded(t *testing.T) {
	b := NewBroker()
	b.SetHistoryLimit(3)

	for _, id := range []string{"a", "b", "c", "d"} {
		b.Publish(Event{Type: DialogOpenedEvent, Payload: DialogPayload{DialogID: id}})
	}

	history := b.History()
	require.Len(t, history, 3)
	assert.Equal(t, "b", history[0].Payload.(DialogPayload).DialogID)
	assert.Equal(t, "d", history[2].Payload.(DialogPayload).DialogID)

	b.SetHistoryLimit(1)
	assert.Len(t, b.History(), 1)

	b.SetHistoryLimit(0)
	b.Publish(Event{Type: DialogEscEvent})
	assert.Empty(t, b.History())
}

func TestBroker_Clear(t *testing.T) {
	b := NewBroker()
	ch := b.Subscribe()
	b.Publish(Event{Type: DialogOpenedEvent})
	b.Clear()

	assert.Empty(t, b.History())
	// Buffered event is still readable, then the channel reports closed.
	<-ch
	_, ok := <-ch
	assert.False(t, ok)
}

func TestListen(t *testing.T) {
	b := NewBroker()
	ch := b.Subscribe()
	b.Publish(Event{Type: DialogEscEvent})

	msg := Listen(ch)()
	ev, ok := msg.(Event)
	require.True(t, ok)
	assert.Equal(t, DialogEscEvent, ev.Type)

	b.Unsubscribe(ch)
	assert.Nil(t, Listen(ch)())
}

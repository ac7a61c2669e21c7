package events

import (
	"sync"

	"github.com/billie-coop/dialogstack/internal/csync"
	tea "github.com/charmbracelet/bubbletea/v2"
)

const (
	defaultBufferSize   = 10
	defaultHistoryLimit = 100
)

// Broker manages event distribution
type Broker struct {
	subscribers  map[EventType][]chan Event
	mu           sync.RWMutex
	bufferSize   int
	history      *csync.Slice[Event]
	historyLimit int
}

// NewBroker creates a new event broker
func NewBroker() *Broker {
	return &Broker{
		subscribers:  make(map[EventType][]chan Event),
		bufferSize:   defaultBufferSize,
		history:      csync.NewSlice[Event](),
		historyLimit: defaultHistoryLimit,
	}
}

// SetHistoryLimit bounds how many published events History keeps.
// A limit of zero disables the history.
func (b *Broker) SetHistoryLimit(limit int) {
	b.mu.Lock()
	b.historyLimit = max(0, limit)
	b.mu.Unlock()
	b.trimHistory()
}

// Subscribe creates a subscription to specific event types
func (b *Broker) Subscribe(eventTypes ...EventType) <-chan Event {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan Event, b.bufferSize)

	// If no specific types provided, subscribe to all
	if len(eventTypes) == 0 {
		eventTypes = []EventType{Wildcard}
	}

	for _, eventType := range eventTypes {
		b.subscribers[eventType] = append(b.subscribers[eventType], ch)
	}

	return ch
}

// Unsubscribe removes a subscription and closes its channel.
func (b *Broker) Unsubscribe(ch <-chan Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	closed := false
	for eventType, subscribers := range b.subscribers {
		for i, sub := range subscribers {
			if sub != ch {
				continue
			}
			b.subscribers[eventType] = append(subscribers[:i], subscribers[i+1:]...)
			if !closed {
				close(sub)
				closed = true
			}
			break
		}
		if len(b.subscribers[eventType]) == 0 {
			delete(b.subscribers, eventType)
		}
	}
}

// Publish sends an event to all subscribers
func (b *Broker) Publish(event Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.historyLimit > 0 {
		b.history.Append(event)
		b.history.TrimFront(b.history.Len() - b.historyLimit)
	}

	// A channel subscribed both to the type and to the wildcard gets the
	// event once.
	delivered := make(map[chan Event]struct{})
	for _, eventType := range []EventType{event.Type, Wildcard} {
		for _, ch := range b.subscribers[eventType] {
			if _, seen := delivered[ch]; seen {
				continue
			}
			delivered[ch] = struct{}{}
			select {
			case ch <- event:
			default:
				// Channel full, skip this event
			}
		}
	}
}

// History returns the most recent published events, oldest first.
func (b *Broker) History() []Event {
	return b.history.ToSlice()
}

// Clear removes all subscriptions and forgets the history.
func (b *Broker) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	closed := make(map[chan Event]struct{})
	for _, subscribers := range b.subscribers {
		for _, ch := range subscribers {
			if _, ok := closed[ch]; ok {
				continue
			}
			closed[ch] = struct{}{}
			close(ch)
		}
	}

	b.subscribers = make(map[EventType][]chan Event)
	b.history.Clear()
}

// Listen returns a command that waits for the next event on ch and delivers
// it to the tea program. Re-issue it after every event to keep listening.
func Listen(ch <-chan Event) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-ch
		if !ok {
			return nil
		}
		return event
	}
}

func (b *Broker) trimHistory() {
	b.mu.RLock()
	limit := b.historyLimit
	b.mu.RUnlock()
	b.history.TrimFront(b.history.Len() - limit)
}

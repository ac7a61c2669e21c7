package dialog

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/billie-coop/dialogstack/pkg/events"
)

// Manager owns the dialog records of one stack scope and the order in which
// dialogs were opened. Records and the open stack are only changed through
// the methods below.
//
// Every identifier in the open stack has a record with Active set, and no
// identifier appears in the open stack twice.
type Manager[K comparable] struct {
	mu      sync.RWMutex
	records map[K]Record
	open    []K

	observers []observer
	nextToken int

	broker *events.Broker
	logger *slog.Logger
}

type observer struct {
	token int
	fn    func()
}

// NewManager creates an empty manager. A nil broker disables event
// publishing and a nil logger discards log output.
func NewManager[K comparable](broker *events.Broker, logger *slog.Logger) *Manager[K] {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Manager[K]{
		records: make(map[K]Record),
		broker:  broker,
		logger:  logger,
	}
}

// Register inserts or replaces the record for id. A new record starts
// inactive; re-registering a dialog that is on the open stack keeps it open
// and in place.
func (m *Manager[K]) Register(id K, closeOnEsc bool, onEscPress func()) {
	m.mu.Lock()
	active := slices.Contains(m.open, id)
	m.records[id] = Record{
		Active:     active,
		CloseOnEsc: closeOnEsc,
		OnEscPress: onEscPress,
	}
	stack := m.stackLocked()
	m.mu.Unlock()

	m.logger.Debug("dialog registered", "id", id, "close_on_esc", closeOnEsc, "active", active)
	m.publish(events.DialogRegisteredEvent, id, stack, -1)
	m.notify()
}

// Unregister removes the record for id and drops id from the open stack.
func (m *Manager[K]) Unregister(id K) {
	m.mu.Lock()
	_, existed := m.records[id]
	index := slices.Index(m.open, id)
	if !existed && index < 0 {
		m.mu.Unlock()
		return
	}
	delete(m.records, id)
	m.open = slices.DeleteFunc(m.open, func(k K) bool { return k == id })
	stack := m.stackLocked()
	m.mu.Unlock()

	m.logger.Debug("dialog unregistered", "id", id)
	m.publish(events.DialogUnregisteredEvent, id, stack, index)
	m.notify()
}

// Open marks id active and puts it on top of the open stack. An id that was
// never registered gets a default record. Opening a dialog that is already
// open moves it to the top.
func (m *Manager[K]) Open(id K) {
	m.mu.Lock()
	rec := m.records[id]
	rec.Active = true
	m.records[id] = rec
	m.open = append(slices.DeleteFunc(m.open, func(k K) bool { return k == id }), id)
	stack := m.stackLocked()
	m.mu.Unlock()

	m.logger.Debug("dialog opened", "id", id, "depth", len(stack))
	m.publish(events.DialogOpenedEvent, id, stack, -1)
	m.notify()
}

// Close marks id inactive and removes it from the open stack. Unknown and
// already closed ids are ignored.
func (m *Manager[K]) Close(id K) {
	m.mu.Lock()
	rec, existed := m.records[id]
	index := slices.Index(m.open, id)
	if index < 0 && !rec.Active {
		m.mu.Unlock()
		return
	}
	if existed {
		rec.Active = false
		m.records[id] = rec
	}
	m.open = slices.DeleteFunc(m.open, func(k K) bool { return k == id })
	stack := m.stackLocked()
	m.mu.Unlock()

	m.logger.Debug("dialog closed", "id", id, "depth", len(stack))
	m.publish(events.DialogClosedEvent, id, stack, index)
	m.notify()
}

// CloseAll marks every record inactive and empties the open stack.
func (m *Manager[K]) CloseAll() {
	m.mu.Lock()
	for id, rec := range m.records {
		rec.Active = false
		m.records[id] = rec
	}
	closed := len(m.open)
	m.open = nil
	m.mu.Unlock()

	m.logger.Debug("all dialogs closed", "count", closed)
	if m.broker != nil {
		m.broker.Publish(events.Event{
			Type:    events.DialogClosedAllEvent,
			Payload: events.DialogPayload{Stack: []string{}, Index: -1},
		})
	}
	m.notify()
}

// CloseCurrent closes the topmost dialog. It does nothing when no dialog is
// open.
func (m *Manager[K]) CloseCurrent() {
	if id, ok := m.Current(); ok {
		m.Close(id)
	}
}

// CloseAtIndex closes every dialog at or after position index of the open
// stack and truncates the stack to its first index entries. Positions count
// from the oldest open dialog. An index outside the stack is ignored.
func (m *Manager[K]) CloseAtIndex(index int) {
	m.mu.Lock()
	if index < 0 || index >= len(m.open) {
		m.mu.Unlock()
		return
	}
	closing := slices.Clone(m.open[index:])
	m.open = slices.Clone(m.open[:index])
	for _, id := range closing {
		if rec, ok := m.records[id]; ok {
			rec.Active = false
			m.records[id] = rec
		}
	}
	stack := m.stackLocked()
	m.mu.Unlock()

	m.logger.Debug("dialogs closed from index", "index", index, "count", len(closing))
	// Report the topmost first, matching the order ESC would close them.
	for i := len(closing) - 1; i >= 0; i-- {
		m.publish(events.DialogClosedEvent, closing[i], stack, index+i)
	}
	m.notify()
}

// HandleEscape applies the ESC policy of the topmost dialog: when it was
// registered with CloseOnEsc, its OnEscPress callback runs and then it is
// closed. It reports whether a dialog was closed.
func (m *Manager[K]) HandleEscape() bool {
	m.mu.RLock()
	id, ok := m.currentLocked()
	rec := m.records[id]
	m.mu.RUnlock()

	if !ok || !rec.CloseOnEsc {
		return false
	}

	if rec.OnEscPress != nil {
		rec.OnEscPress()
	}
	m.mu.RLock()
	stack := m.stackLocked()
	m.mu.RUnlock()
	m.publish(events.DialogEscEvent, id, stack, -1)
	m.Close(id)
	return true
}

// Current returns the topmost open dialog.
func (m *Manager[K]) Current() (K, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentLocked()
}

// Record returns the record registered for id.
func (m *Manager[K]) Record(id K) (Record, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.records[id]
	return rec, ok
}

// IsActive reports whether id is registered and open.
func (m *Manager[K]) IsActive(id K) bool {
	rec, ok := m.Record(id)
	return ok && rec.Active
}

// State returns a copy of every record keyed by identifier.
func (m *Manager[K]) State() map[K]Record {
	m.mu.RLock()
	defer m.mu.RUnlock()

	state := make(map[K]Record, len(m.records))
	for id, rec := range m.records {
		state[id] = rec
	}
	return state
}

// OpenStack returns the open dialogs, oldest first.
func (m *Manager[K]) OpenStack() []K {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.open)
}

// watch registers fn to run after every state change. The returned token
// removes it again via unwatch.
func (m *Manager[K]) watch(fn func()) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextToken++
	m.observers = append(m.observers, observer{token: m.nextToken, fn: fn})
	return m.nextToken
}

func (m *Manager[K]) unwatch(token int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.observers = slices.DeleteFunc(m.observers, func(o observer) bool { return o.token == token })
}

// notify runs observers outside the lock so they may call back into m.
func (m *Manager[K]) notify() {
	m.mu.RLock()
	observers := slices.Clone(m.observers)
	m.mu.RUnlock()

	for _, o := range observers {
		o.fn()
	}
}

func (m *Manager[K]) currentLocked() (K, bool) {
	if len(m.open) == 0 {
		var zero K
		return zero, false
	}
	return m.open[len(m.open)-1], true
}

func (m *Manager[K]) stackLocked() []string {
	stack := make([]string, len(m.open))
	for i, id := range m.open {
		stack[i] = fmt.Sprint(id)
	}
	return stack
}

func (m *Manager[K]) publish(eventType events.EventType, id K, stack []string, index int) {
	if m.broker == nil {
		return
	}
	m.broker.Publish(events.Event{
		Type: eventType,
		Payload: events.DialogPayload{
			DialogID: fmt.Sprint(id),
			Stack:    stack,
			Index:    index,
		},
	})
}

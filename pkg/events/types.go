package events

// EventType identifies the type of event
type EventType string

const (
	// Registration events
	DialogRegisteredEvent   EventType = "dialog.registered"
	DialogUnregisteredEvent EventType = "dialog.unregistered"

	// Stack events
	DialogOpenedEvent    EventType = "dialog.opened"
	DialogClosedEvent    EventType = "dialog.closed"
	DialogClosedAllEvent EventType = "dialog.closed_all"
	DialogEscEvent       EventType = "dialog.esc"

	// Wildcard matches every event type on Subscribe.
	Wildcard EventType = "*"
)

// Event represents an event in the system
type Event struct {
	Type    EventType
	Payload interface{}
}

// DialogPayload describes the dialog an event is about and the open stack
// after the change, oldest first. Identifiers are rendered with fmt.Sprint.
type DialogPayload struct {
	DialogID string
	Stack    []string
	// Index is the open-stack position the dialog held before it was
	// closed, or -1 when it does not apply.
	Index int
}

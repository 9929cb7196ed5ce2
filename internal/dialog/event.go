package dialog

import "strings"

// EventKind discriminates inbound events once, at the transport
// boundary, so handlers never inspect raw transport payloads.
type EventKind string

const (
	KindCommand  EventKind = "command"
	KindText     EventKind = "text"
	KindCallback EventKind = "callback"
	KindPhoto    EventKind = "photo"
)

// Event is a single inbound user action.
type Event struct {
	Kind     EventKind
	ChatID   int64
	Username string

	// Text carries the command, the typed message, or the callback
	// payload, depending on Kind.
	Text string

	// MessageID is the message a callback originated from; menus
	// rendered in response to a callback edit it in place.
	MessageID int

	// PhotoFileID references the largest size of an attached photo.
	PhotoFileID string
}

// IsStartCommand reports whether the event is the universal reset
// command that forces the dialogue back to the beginning.
func (e Event) IsStartCommand() bool {
	return e.Kind == KindCommand && strings.TrimSpace(e.Text) == "/start"
}

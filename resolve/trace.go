package resolve

import "strings"

// EventType identifies the kind of a trace event.
type EventType string

// Trace event types recorded during a resolution walk.
const (
	EventSectionEntry    EventType = "section-entry"
	EventSectionExit     EventType = "section-exit"
	EventSectionKeyValue EventType = "section-key-value"
	EventSectionOperands EventType = "section-operands"
	EventHandlerEntry    EventType = "handler-entry"
	EventHandlerExit     EventType = "handler-exit"
	EventCycleDetected   EventType = "cycle-detected"
)

// Field is one named value attached to a trace [Event].
type Field struct {
	Key   string
	Value string
}

// Event is one structured record emitted by the resolver.
type Event struct {
	Type   EventType
	Fields []Field
}

// String renders the event as a single diagnostic line.
func (e Event) String() string {
	var sb strings.Builder

	sb.WriteString(string(e.Type))

	for _, f := range e.Fields {
		sb.WriteString(" ")
		sb.WriteString(f.Key)
		sb.WriteString("=`")
		sb.WriteString(f.Value)
		sb.WriteString("`")
	}

	return sb.String()
}

// Trace accumulates structured events from one top-level resolution call.
//
// The collector is inert unless enabled; see [WithTrace]. It is cleared at
// the start of each top-level call, so consumers must read it between
// calls. Events are ordered as they occurred.
type Trace struct {
	events  []Event
	enabled bool
}

// Enabled reports whether the collector records events.
func (t *Trace) Enabled() bool { return t.enabled }

// Events returns the recorded events in order. The returned slice is owned
// by the collector and must be treated as read-only.
func (t *Trace) Events() []Event { return t.events }

// Reset discards all recorded events.
func (t *Trace) Reset() { t.events = nil }

// add appends an event when the collector is enabled.
func (t *Trace) add(typ EventType, fields ...Field) {
	if !t.enabled {
		return
	}

	t.events = append(t.events, Event{Type: typ, Fields: fields})
}

// Package events defines the log events recorded for shopping list item
// transitions.
package events

import (
	"errors"
	"fmt"
	"time"
)

// ISOLayout is the timestamp format of LogEvent.ISODate (UTC, milliseconds).
const ISOLayout = "2006-01-02T15:04:05.000Z"

// EventType is the kind of transition an event records.
type EventType string

const (
	MoveEntry        EventType = "MOVE_ENTRY"
	DeleteEntry      EventType = "DELETE_ENTRY"
	CreateEntry      EventType = "CREATE_ENTRY"
	ChangedEntryName EventType = "CHANGED_ENTRY_NAME"
	MarkEntryDone    EventType = "MARK_ENTRY_DONE"
	MarkEntryTodo    EventType = "MARK_ENTRY_TODO"
)

var (
	ErrUnknownEventType = errors.New("unknown event type")
	ErrMissingEntryID   = errors.New("entry id required")
	ErrInvalidDate      = errors.New("invalid iso date")
	ErrUnexpectedMove   = errors.New("move state on non-move event")
)

// Valid reports whether t is one of the known event types.
func (t EventType) Valid() bool {
	switch t {
	case MoveEntry, DeleteEntry, CreateEntry, ChangedEntryName, MarkEntryDone, MarkEntryTodo:
		return true
	}
	return false
}

// State is the item state captured by an event.
type State struct {
	Name string `json:"name"`

	// Done is only present on events written before MARK_ENTRY_DONE and
	// MARK_ENTRY_TODO existed.
	//
	// Deprecated: use the event type instead.
	Done *bool `json:"done,omitempty"`

	// Move fields; set only on MOVE_ENTRY.
	AboveEntry string `json:"aboveEntry,omitempty"`
	BelowEntry string `json:"belowEntry,omitempty"`
	OldIndex   *int   `json:"oldIndex,omitempty"`
	NewIndex   *int   `json:"newIndex,omitempty"`
}

func (s State) hasMove() bool {
	return s.AboveEntry != "" || s.BelowEntry != "" || s.OldIndex != nil || s.NewIndex != nil
}

// LogEvent is a single recorded transition of one list entry.
type LogEvent struct {
	Event   EventType `json:"event"`
	EntryID string    `json:"entryId"`
	State   State     `json:"state"`
	ISODate string    `json:"isoDate"`
}

// ListenerData is the envelope delivered to event listeners.
type ListenerData struct {
	ListID    string   `json:"listid"`
	EventData LogEvent `json:"eventData"`
}

// New creates an event of the given type at the given time.
func New(t EventType, entryID, name string, at time.Time) LogEvent {
	return LogEvent{
		Event:   t,
		EntryID: entryID,
		State:   State{Name: name},
		ISODate: FormatTime(at),
	}
}

// NewMove creates a MOVE_ENTRY event.
func NewMove(entryID, name, aboveEntry, belowEntry string, oldIndex, newIndex int, at time.Time) LogEvent {
	e := New(MoveEntry, entryID, name, at)
	e.State.AboveEntry = aboveEntry
	e.State.BelowEntry = belowEntry
	e.State.OldIndex = &oldIndex
	e.State.NewIndex = &newIndex
	return e
}

// MarkEvent returns the event type for checking (true) or unchecking an item.
func MarkEvent(check bool) EventType {
	if check {
		return MarkEntryDone
	}
	return MarkEntryTodo
}

// FormatTime formats t as an ISO-8601 UTC timestamp.
func FormatTime(t time.Time) string {
	return t.UTC().Format(ISOLayout)
}

// Time parses the event's ISODate. Any RFC 3339 timestamp is accepted.
func (e LogEvent) Time() (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, e.ISODate)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, e.ISODate)
	}
	return t, nil
}

// Validate checks that the event is well formed.
func (e LogEvent) Validate() error {
	if !e.Event.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownEventType, e.Event)
	}
	if e.EntryID == "" {
		return ErrMissingEntryID
	}
	if _, err := e.Time(); err != nil {
		return err
	}
	if e.Event != MoveEntry && e.State.hasMove() {
		return fmt.Errorf("%w: %s", ErrUnexpectedMove, e.Event)
	}
	return nil
}

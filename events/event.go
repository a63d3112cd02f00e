// Package events defines what the round engine announces and where those
// announcements can be kept.
package events

import (
	"reflect"
	"time"
)

// EventHandler is notified of every event an engine emits
type EventHandler func(event Event)

// Event is the interface that all engine events implement
type Event interface {
	Name() string
}

// Timed is implemented by events carrying the moment they happened
type Timed interface {
	OccurredAt() time.Time
}

// GetSessionID extracts the SessionID field of an event, or "" when there is
// none.
func GetSessionID(event Event) string {
	val := reflect.ValueOf(event)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return ""
	}
	field := val.FieldByName("SessionID")
	if field.IsValid() && field.Kind() == reflect.String {
		return field.String()
	}
	return ""
}

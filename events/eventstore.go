package events

import (
	"fmt"
	"sync"
)

// EventStore is the interface for storing and retrieving events.
type EventStore interface {
	Append(event Event) error
	LoadEvents(sessionID string) ([]Event, error)
}

// InMemoryEventStore keeps events per session in memory.
type InMemoryEventStore struct {
	events map[string][]Event
	order  []string
	mutex  sync.RWMutex
}

// NewInMemoryEventStore creates a new in-memory event store.
func NewInMemoryEventStore() *InMemoryEventStore {
	return &InMemoryEventStore{
		events: make(map[string][]Event),
	}
}

// Append adds a new event to the store.
func (s *InMemoryEventStore) Append(event Event) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	sessionID := GetSessionID(event)
	if sessionID == "" {
		return fmt.Errorf("event %T has no session id", event)
	}

	if _, exists := s.events[sessionID]; !exists {
		s.order = append(s.order, sessionID)
	}
	s.events[sessionID] = append(s.events[sessionID], event)
	return nil
}

// LoadEvents retrieves all events for the given session, oldest first.
func (s *InMemoryEventStore) LoadEvents(sessionID string) ([]Event, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	events, exists := s.events[sessionID]
	if !exists {
		return []Event{}, nil
	}
	result := make([]Event, len(events))
	copy(result, events)
	return result, nil
}

// GetEvents returns every stored event, grouped by session in first-seen order
func (s *InMemoryEventStore) GetEvents() []Event {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	var events []Event
	for _, id := range s.order {
		events = append(events, s.events[id]...)
	}
	return events
}

// Sessions lists the session IDs seen so far
func (s *InMemoryEventStore) Sessions() []string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Filter returns the events of one session that are of type T
func Filter[T Event](store EventStore, sessionID string) ([]T, error) {
	all, err := store.LoadEvents(sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load events: %w", err)
	}
	var out []T
	for _, e := range all {
		if typed, ok := e.(T); ok {
			out = append(out, typed)
		}
	}
	return out, nil
}

package events

import (
	"github.com/charmbracelet/log"
	"github.com/sanity-io/litter"
)

// LogHandler returns an EventHandler that logs each event name and, at debug
// level, a dump of its payload.
func LogHandler(logger *log.Logger) EventHandler {
	return func(event Event) {
		if logger == nil {
			return
		}
		logger.Info("event", "name", event.Name(), "session", GetSessionID(event))
		if logger.GetLevel() <= log.DebugLevel {
			logger.Debug(litter.Sdump(event))
		}
	}
}

// StoreHandler returns an EventHandler that appends to store, reporting
// failures to onError when it is set.
func StoreHandler(store EventStore, onError func(Event, error)) EventHandler {
	return func(event Event) {
		if err := store.Append(event); err != nil && onError != nil {
			onError(event, err)
		}
	}
}

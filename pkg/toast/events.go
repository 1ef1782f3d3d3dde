package toast

// EventType identifies a lifecycle event emitted to observers.
type EventType string

const (
	// EventShown fires once when a notification transitions to Visible.
	EventShown EventType = "shown"
	// EventUpdated fires when display fields of a visible notification change.
	EventUpdated EventType = "updated"
	// EventDismissed fires once when a notification reaches Removed.
	EventDismissed EventType = "dismissed"
)

// Event is the payload delivered to observers. Notification is a
// snapshot taken at emission time.
type Event struct {
	Type         EventType
	Notification Notification
}

// Observer is a callback invoked synchronously within the operation
// that triggered the event. Observers run after the manager releases
// its internal lock, so they may call back into the manager.
type Observer func(Event)

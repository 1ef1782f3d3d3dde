package toast

import (
	"maps"
	"slices"
	"time"
)

// Kind represents the notification type/severity. It is an
// informational tag passed through to observers; the manager attaches
// no behavior to it.
type Kind string

const (
	KindInfo    Kind = "info"
	KindSuccess Kind = "success"
	KindWarning Kind = "warning"
	KindError   Kind = "error"
)

// Position is one of six logical display slots. It groups
// notifications for the renderer; capacity is global, not per slot.
type Position string

const (
	PositionTopLeft      Position = "top-left"
	PositionTopCenter    Position = "top-center"
	PositionTopRight     Position = "top-right"
	PositionBottomLeft   Position = "bottom-left"
	PositionBottomCenter Position = "bottom-center"
	PositionBottomRight  Position = "bottom-right"
)

// Valid reports whether p is one of the six known positions.
func (p Position) Valid() bool {
	switch p {
	case PositionTopLeft, PositionTopCenter, PositionTopRight,
		PositionBottomLeft, PositionBottomCenter, PositionBottomRight:
		return true
	}
	return false
}

// State is the lifecycle state of a notification.
type State string

const (
	// StateQueued: created but waiting for display capacity.
	StateQueued State = "queued"
	// StateVisible: displayed, auto-dismiss timer may be running.
	StateVisible State = "visible"
	// StateDismissing: dismissal started, exit delay pending.
	StateDismissing State = "dismissing"
	// StateRemoved: terminal; the record is gone from the manager.
	StateRemoved State = "removed"
)

// Action is a call-to-action attached to a notification. The manager
// stores actions opaquely and never invokes OnClick itself; dispatch
// is the renderer's job.
type Action struct {
	Label   string
	Style   string // renderer hint: primary, secondary, danger
	OnClick func()
}

// Notification is a single transient message instance. Values returned
// by the manager are snapshots; mutating them has no effect on manager
// state.
type Notification struct {
	// ID is assigned by the manager and never reused within a process.
	ID       string
	Kind     Kind
	Title    string
	Message  string
	Position Position

	// Duration is the auto-dismiss countdown. Zero means the
	// notification stays until dismissed explicitly.
	Duration time.Duration

	// Dismissible tells the renderer whether user-initiated dismissal
	// is permitted. Programmatic Dismiss calls are always honored.
	Dismissible bool

	Actions []Action
	Data    map[string]any

	// CreatedAt is set at admission, not at Show time for queued items.
	CreatedAt time.Time

	// Paused and Remaining describe a paused countdown. Remaining is
	// only meaningful while Paused is true.
	Paused    bool
	Remaining time.Duration

	State State
}

// Sticky reports whether the notification never auto-dismisses.
func (n Notification) Sticky() bool {
	return n.Duration == 0
}

// clone returns a deep-enough copy: slices and maps are duplicated so
// callers cannot reach into manager-owned state.
func (n Notification) clone() Notification {
	n.Actions = slices.Clone(n.Actions)
	n.Data = maps.Clone(n.Data)
	return n
}

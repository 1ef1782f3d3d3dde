// Package toast manages the lifecycle of transient user-facing
// notifications without any rendering assumptions.
//
// The manager owns admission control against a global visibility cap,
// per-notification auto-dismiss timers with hover pause/resume, a FIFO
// overflow queue, and synchronous lifecycle events. Rendering is an
// external collaborator: on a shown event it displays an element for
// the notification's id in its position slot, on a dismissed event it
// removes it, and it forwards user clicks and pointer enter/leave back
// into Dismiss, PauseTimer and ResumeTimer. The manager holds no
// reference to any visual element.
//
// # Lifecycle
//
// A notification moves through queued -> visible -> dismissing ->
// removed. Admission (queued to visible) is gated by capacity: at most
// MaxVisible notifications may be visible or dismissing at once,
// counted globally across all six position slots. Overflow goes to a
// single shared FIFO queue drained strictly oldest-first whenever a
// removal frees capacity. Dismissing is the exit-animation window; the
// dismissed event fires when the notification reaches removed.
//
// # Basic Usage
//
//	manager, err := toast.New(
//		toast.WithMaxVisible(3),
//		toast.WithDefaultDuration(5*time.Second),
//	)
//	if err != nil {
//		// handle error
//	}
//	defer manager.Close()
//
//	manager.Subscribe(func(e toast.Event) {
//		// drive the renderer
//	})
//
//	n := manager.Success("Profile saved",
//		toast.WithTitle("Settings"),
//		toast.WithPosition(toast.PositionBottomRight),
//	)
//	// later
//	manager.Dismiss(n.ID, false)
//
// # Failure Semantics
//
// Operations on unknown ids return false rather than erroring: races
// between renderer-driven dismiss clicks and timer expiry are
// expected, and fire-and-forget callers may ignore the result.
package toast

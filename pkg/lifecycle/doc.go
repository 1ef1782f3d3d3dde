// Package lifecycle provides a declarative state-transition table for
// entities that each carry their own state.
//
// Unlike a classic state machine that tracks a single current state,
// a Table is stateless and shared: it only answers whether a given
// transition is legal. This fits domains where many records move
// through the same lifecycle independently (jobs, sessions, toasts).
//
// # Basic Usage
//
//	table := lifecycle.NewTable(
//		lifecycle.T("queued", "visible"),
//		lifecycle.T("visible", "dismissing"),
//		lifecycle.T("visible", "removed"),
//		lifecycle.T("dismissing", "removed"),
//	)
//
//	next, err := table.Step("queued", "visible") // "visible", nil
//	if table.Can("removed", "visible") {         // false
//		...
//	}
//
// Terminal states are simply states with no outgoing transitions.
package lifecycle

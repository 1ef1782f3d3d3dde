// Package toastkit wires the toast notification manager together with
// environment-driven configuration, structured logging, and an
// optional channel-based event stream.
//
// Hosts that want explicit dependency injection should construct the
// manager directly with toast.New and pass it to whatever needs to
// emit notifications; there is no ambient global instance. This
// package is the convenience path: one call builds a manager from
// TOASTKIT_* environment variables (or a YAML file) with a configured
// slog logger attached.
//
//	manager, err := toastkit.New()
//	if err != nil {
//		// handle error
//	}
//	defer manager.Close()
//
//	manager.Info("Welcome back")
//
// Renderers that consume events as a channel rather than synchronous
// callbacks can attach an EventStream:
//
//	events := toastkit.NewEventStream(manager, 32)
//	defer events.Close()
//
//	sub := events.Subscribe(ctx)
//	for e := range sub.C() {
//		// render
//	}
package toastkit

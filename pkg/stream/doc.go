// Package stream provides a non-blocking, in-memory fan-out hub that
// delivers published values to any number of channel subscribers.
//
// The hub never blocks a publisher: when a subscriber's buffer is
// full the value is dropped for that subscriber. This makes Publish
// safe to call from latency-sensitive paths (event emission inside a
// lock-free section, render loops, request handlers).
//
// # Basic Usage
//
//	hub := stream.NewHub[string](16)
//	defer hub.Close()
//
//	sub := hub.Subscribe(ctx)
//	go func() {
//		for v := range sub.C() {
//			fmt.Println("received:", v)
//		}
//	}()
//
//	hub.Publish("hello")
//
// Subscriptions are cleaned up when their context is cancelled, when
// Close is called on them directly, or when the hub itself closes.
package stream

package stream

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Subscription is a single receiver attached to a Hub.
type Subscription[T any] struct {
	id   string
	ch   chan T
	done chan struct{}
	hub  *Hub[T]

	mu     sync.RWMutex
	closed bool
}

// ID returns the unique identifier of the subscription.
func (s *Subscription[T]) ID() string {
	return s.id
}

// C returns the receive channel. The channel is closed when the
// subscription or its hub is closed.
func (s *Subscription[T]) C() <-chan T {
	return s.ch
}

// Close detaches the subscription from the hub and closes the receive
// channel. It is idempotent and safe to call concurrently.
func (s *Subscription[T]) Close() {
	s.hub.unsubscribe(s)
}

// send delivers v without blocking. Returns false if the buffer is
// full or the subscription is closed.
func (s *Subscription[T]) send(v T) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return false
	}

	select {
	case s.ch <- v:
		return true
	default:
		return false
	}
}

func (s *Subscription[T]) markClosed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.closed {
		s.closed = true
		close(s.ch)
		close(s.done)
	}
}

// Hub fans published values out to all active subscriptions. All
// methods are safe for concurrent use.
type Hub[T any] struct {
	mu     sync.RWMutex
	subs   map[string]*Subscription[T]
	buffer int
	closed bool
	wg     sync.WaitGroup
}

// NewHub creates a hub whose subscriptions buffer up to buffer values.
// A minimum buffer of 1 is enforced so sends are never synchronous.
func NewHub[T any](buffer int) *Hub[T] {
	return &Hub[T]{
		subs:   make(map[string]*Subscription[T]),
		buffer: max(buffer, 1),
	}
}

// Subscribe attaches a new subscription. Cancelling ctx detaches it.
// Subscribing to a closed hub returns an already-closed subscription.
func (h *Hub[T]) Subscribe(ctx context.Context) *Subscription[T] {
	sub := &Subscription[T]{
		id:   uuid.New().String(),
		ch:   make(chan T, h.buffer),
		done: make(chan struct{}),
		hub:  h,
	}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		sub.markClosed()
		return sub
	}
	h.subs[sub.id] = sub

	if ctx.Done() != nil {
		h.wg.Add(1)
		go func() {
			defer h.wg.Done()
			select {
			case <-ctx.Done():
				h.unsubscribe(sub)
			case <-sub.done:
				// Subscription closed through another path; nothing to do.
			}
		}()
	}
	h.mu.Unlock()

	return sub
}

// Publish delivers v to every active subscription, dropping it for
// subscribers whose buffers are full. Returns the number of
// subscribers that received the value.
func (h *Hub[T]) Publish(v T) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.closed {
		return 0
	}

	delivered := 0
	for _, sub := range h.subs {
		if sub.send(v) {
			delivered++
		}
	}
	return delivered
}

// Len returns the number of active subscriptions.
func (h *Hub[T]) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

// Close shuts down the hub and every subscription. Idempotent.
func (h *Hub[T]) Close() {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return
	}
	h.closed = true

	for _, sub := range h.subs {
		sub.markClosed()
	}
	clear(h.subs)
	h.mu.Unlock()

	// Context-watcher goroutines hold no locks at this point; waiting
	// here guarantees none outlive the hub.
	h.wg.Wait()
}

func (h *Hub[T]) unsubscribe(sub *Subscription[T]) {
	h.mu.Lock()
	delete(h.subs, sub.id)
	h.mu.Unlock()

	sub.markClosed()
}

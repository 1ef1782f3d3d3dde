package toast

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/dmitrymomot/toastkit/pkg/lifecycle"
	"github.com/dmitrymomot/toastkit/pkg/logger"
)

// transitions is the only legal lifecycle for a notification.
// Queued items reach Removed solely through DismissAll.
var transitions = lifecycle.MustTable(
	lifecycle.T(StateQueued, StateVisible),
	lifecycle.T(StateQueued, StateRemoved),
	lifecycle.T(StateVisible, StateDismissing),
	lifecycle.T(StateVisible, StateRemoved),
	lifecycle.T(StateDismissing, StateRemoved),
)

// allPositions fixes iteration order for operations that sweep every
// display slot.
var allPositions = [...]Position{
	PositionTopLeft, PositionTopCenter, PositionTopRight,
	PositionBottomLeft, PositionBottomCenter, PositionBottomRight,
}

// record is the manager-owned state of one notification. The gen
// counter invalidates stale timer callbacks: every arm or disarm bumps
// it, and a firing callback whose captured gen no longer matches is a
// silent no-op. A record has at most one pending timer at a time (the
// auto-dismiss countdown while Visible, the exit delay while
// Dismissing), so one counter covers both.
type record struct {
	n         Notification
	timer     *time.Timer
	gen       uint64
	armedAt   time.Time
	armedFor  time.Duration
	paused    bool
	remaining time.Duration
}

func (r *record) snapshot() Notification {
	n := r.n.clone()
	n.Paused = r.paused
	n.Remaining = 0
	if r.paused {
		n.Remaining = r.remaining
	}
	return n
}

// Manager owns the lifecycle of all transient notifications: admission
// against a global visibility cap, per-item auto-dismiss timers with
// pause/resume, a FIFO overflow queue, and synchronous event emission
// for renderers.
//
// All methods are safe for concurrent use. Operations run to
// completion under a single lock; timer callbacks re-enter through the
// same lock and re-check state, so a timer firing against an
// already-dismissed notification does nothing.
type Manager struct {
	cfg settings
	log *slog.Logger

	mu        sync.Mutex
	active    map[Position][]*record
	index     map[string]*record // active (Visible or Dismissing) records by id
	queue     []*record
	nextID    uint64
	closed    bool
	observers []Observer
}

// New creates a Manager. Out-of-range configuration fails fast with
// ErrInvalidConfig rather than producing degenerate behavior at the
// first Show call.
func New(opts ...Option) (*Manager, error) {
	cfg := defaultSettings()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.maxVisible < 1 {
		return nil, fmt.Errorf("%w: max visible must be at least 1, got %d", ErrInvalidConfig, cfg.maxVisible)
	}
	if cfg.defaultDuration < 0 {
		return nil, fmt.Errorf("%w: default duration must not be negative, got %s", ErrInvalidConfig, cfg.defaultDuration)
	}
	if cfg.dismissDelay < 0 {
		return nil, fmt.Errorf("%w: dismiss delay must not be negative, got %s", ErrInvalidConfig, cfg.dismissDelay)
	}
	if !cfg.defaultPosition.Valid() {
		return nil, fmt.Errorf("%w: unknown default position %q", ErrInvalidConfig, cfg.defaultPosition)
	}

	return &Manager{
		cfg:       cfg,
		log:       cfg.logger,
		active:    make(map[Position][]*record),
		index:     make(map[string]*record),
		observers: slices.Clone(cfg.observers),
	}, nil
}

// Subscribe registers an observer for lifecycle events. Observers are
// invoked synchronously, in registration order, within the operation
// that produced the event.
func (m *Manager) Subscribe(fn Observer) {
	if fn == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.observers = append(m.observers, fn)
}

// Show creates a notification and admits it immediately when the
// global active count is below the visibility cap, or appends it to
// the overflow queue otherwise. It never fails; the returned snapshot
// reports whether the notification is Visible or Queued.
func (m *Manager) Show(message string, opts ...ShowOption) Notification {
	var o showOptions
	for _, opt := range opts {
		opt(&o)
	}

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return Notification{State: StateRemoved}
	}

	m.nextID++
	r := &record{n: Notification{
		ID:          fmt.Sprintf("toast-%d", m.nextID),
		Kind:        KindInfo,
		Message:     message,
		Position:    m.cfg.defaultPosition,
		Duration:    m.cfg.defaultDuration,
		Dismissible: m.cfg.defaultDismissible,
		State:       StateQueued,
	}}
	if o.messageSet {
		r.n.Message = o.message
	}
	if o.titleSet {
		r.n.Title = o.title
	}
	if o.kindSet {
		r.n.Kind = o.kind
	}
	if o.positionSet && o.position.Valid() {
		r.n.Position = o.position
	}
	if o.durationSet {
		// Negative durations degrade to sticky.
		r.n.Duration = max(o.duration, 0)
	}
	if o.dismissibleSet {
		r.n.Dismissible = o.dismissible
	}
	if o.actionsSet {
		r.n.Actions = slices.Clone(o.actions)
	}
	if o.dataSet {
		r.n.Data = maps.Clone(o.data)
	}

	var events []Event
	if len(m.index) < m.cfg.maxVisible {
		events = m.admitLocked(r)
	} else {
		m.queue = append(m.queue, r)
		m.log.LogAttrs(context.Background(), slog.LevelDebug, "notification queued",
			logger.ToastID(r.n.ID),
			slog.Int("queue_len", len(m.queue)),
		)
	}
	snap := r.snapshot()
	m.mu.Unlock()

	m.notify(events)
	return snap
}

// Info shows an info notification.
func (m *Manager) Info(message string, opts ...ShowOption) Notification {
	return m.Show(message, append([]ShowOption{WithKind(KindInfo)}, opts...)...)
}

// Success shows a success notification.
func (m *Manager) Success(message string, opts ...ShowOption) Notification {
	return m.Show(message, append([]ShowOption{WithKind(KindSuccess)}, opts...)...)
}

// Warning shows a warning notification.
func (m *Manager) Warning(message string, opts ...ShowOption) Notification {
	return m.Show(message, append([]ShowOption{WithKind(KindWarning)}, opts...)...)
}

// Error shows an error notification.
func (m *Manager) Error(message string, opts ...ShowOption) Notification {
	return m.Show(message, append([]ShowOption{WithKind(KindError)}, opts...)...)
}

// Dismiss removes an active notification. With immediate set, the
// notification is removed on the spot; otherwise it transitions to
// Dismissing and is removed after the configured dismiss delay, giving
// the renderer time for its exit animation.
//
// Returns false for unknown ids and for queued-but-not-yet-visible
// notifications; those can only be cleared through DismissAll. A
// deferred dismiss of a notification already in Dismissing returns
// true without rescheduling; an immediate dismiss accelerates it.
func (m *Manager) Dismiss(id string, immediate bool) bool {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return false
	}
	r, ok := m.index[id]
	if !ok {
		m.mu.Unlock()
		return false
	}

	var events []Event
	switch r.n.State {
	case StateVisible:
		if immediate {
			events = m.removeLocked(r, true)
		} else {
			events = m.beginDismissLocked(r)
		}
	case StateDismissing:
		if immediate {
			events = m.removeLocked(r, true)
		}
	}
	m.mu.Unlock()

	m.notify(events)
	return true
}

// DismissAll dismisses every active notification and discards the
// overflow queue. Queued items that never became visible emit no
// events; the renderer never saw them.
func (m *Manager) DismissAll(immediate bool) {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}

	// Snapshot before iterating: removal mutates the position lists.
	var records []*record
	for _, pos := range allPositions {
		records = append(records, m.active[pos]...)
	}

	var events []Event
	for _, r := range records {
		switch r.n.State {
		case StateVisible:
			if immediate {
				events = append(events, m.removeLocked(r, false)...)
			} else {
				events = append(events, m.beginDismissLocked(r)...)
			}
		case StateDismissing:
			if immediate {
				events = append(events, m.removeLocked(r, false)...)
			}
		}
	}

	if discarded := len(m.queue); discarded > 0 {
		for _, r := range m.queue {
			m.stepLocked(r, StateRemoved)
		}
		m.queue = nil
		m.log.LogAttrs(context.Background(), slog.LevelDebug, "queued notifications discarded",
			slog.Int("count", discarded),
		)
	}
	m.mu.Unlock()

	m.notify(events)
}

// Update mutates display fields of an active notification in place and
// emits an updated event. Position and dismissible changes are
// ignored; both are fixed at admission. Setting a duration cancels any
// running or paused countdown and restarts it from the new value.
// Returns false if the id is not active.
func (m *Manager) Update(id string, opts ...ShowOption) bool {
	var o showOptions
	for _, opt := range opts {
		opt(&o)
	}

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return false
	}
	r, ok := m.index[id]
	if !ok {
		m.mu.Unlock()
		return false
	}

	if o.messageSet {
		r.n.Message = o.message
	}
	if o.titleSet {
		r.n.Title = o.title
	}
	if o.kindSet {
		r.n.Kind = o.kind
	}
	if o.actionsSet {
		r.n.Actions = slices.Clone(o.actions)
	}
	if o.dataSet {
		r.n.Data = maps.Clone(o.data)
	}
	if o.durationSet {
		d := max(o.duration, 0)
		r.n.Duration = d
		if r.n.State == StateVisible {
			m.disarmLocked(r)
			r.paused = false
			r.remaining = 0
			if d > 0 {
				m.armLocked(r, d)
			}
		}
	}

	events := []Event{{Type: EventUpdated, Notification: r.snapshot()}}
	m.mu.Unlock()

	m.notify(events)
	return true
}

// PauseTimer freezes the auto-dismiss countdown of a visible
// notification, storing the remaining time. Renderers call this on
// pointer enter. Returns false when pause-on-hover is disabled, the id
// is not visible, or no countdown is running.
func (m *Manager) PauseTimer(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed || !m.cfg.pauseOnHover {
		return false
	}
	r, ok := m.index[id]
	if !ok || r.n.State != StateVisible || r.paused || r.timer == nil {
		return false
	}

	remaining := r.armedFor - time.Since(r.armedAt)
	m.disarmLocked(r)
	r.paused = true
	r.remaining = max(remaining, 0)
	return true
}

// ResumeTimer restarts a paused countdown for exactly the remaining
// time. If the countdown had already reached zero when paused, the
// notification is dismissed on resume. Renderers call this on pointer
// leave. Returns false when there is nothing paused to resume.
func (m *Manager) ResumeTimer(id string) bool {
	m.mu.Lock()
	if m.closed || !m.cfg.pauseOnHover {
		m.mu.Unlock()
		return false
	}
	r, ok := m.index[id]
	if !ok || r.n.State != StateVisible || !r.paused {
		m.mu.Unlock()
		return false
	}

	var events []Event
	remaining := r.remaining
	r.paused = false
	r.remaining = 0
	if remaining > 0 {
		m.armLocked(r, remaining)
	} else {
		// Hover ended exactly as the timer would have fired.
		events = m.beginDismissLocked(r)
	}
	m.mu.Unlock()

	m.notify(events)
	return true
}

// Get returns a snapshot of a notification in the active set or the
// overflow queue.
func (m *Manager) Get(id string) (Notification, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if r, ok := m.index[id]; ok {
		return r.snapshot(), true
	}
	for _, r := range m.queue {
		if r.n.ID == id {
			return r.snapshot(), true
		}
	}
	return Notification{}, false
}

// Active returns snapshots of the notifications in a position slot, in
// display order.
func (m *Manager) Active(pos Position) []Notification {
	m.mu.Lock()
	defer m.mu.Unlock()

	list := m.active[pos]
	out := make([]Notification, 0, len(list))
	for _, r := range list {
		out = append(out, r.snapshot())
	}
	return out
}

// ActiveCount returns the number of notifications in Visible or
// Dismissing state across all positions.
func (m *Manager) ActiveCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.index)
}

// QueuedCount returns the length of the overflow queue. The queue is
// unbounded; hosts that care should watch this value.
func (m *Manager) QueuedCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.queue)
}

// Close cancels every outstanding timer and drops all state. The
// manager emits no events for notifications discarded by Close, and
// all operations on a closed manager are no-ops.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return
	}
	m.closed = true

	for _, r := range m.index {
		m.disarmLocked(r)
	}
	m.active = make(map[Position][]*record)
	m.index = make(map[string]*record)
	m.queue = nil
	m.observers = nil
}

// admitLocked transitions a queued record to Visible, places it in its
// position slot, and arms the auto-dismiss timer.
func (m *Manager) admitLocked(r *record) []Event {
	m.stepLocked(r, StateVisible)
	r.n.CreatedAt = time.Now()

	pos := r.n.Position
	if m.cfg.newestOnTop {
		m.active[pos] = slices.Insert(m.active[pos], 0, r)
	} else {
		m.active[pos] = append(m.active[pos], r)
	}
	m.index[r.n.ID] = r

	if r.n.Duration > 0 {
		m.armLocked(r, r.n.Duration)
	}

	m.log.LogAttrs(context.Background(), slog.LevelDebug, "notification shown",
		logger.ToastID(r.n.ID),
		logger.Position(string(pos)),
		slog.String("kind", string(r.n.Kind)),
	)
	return []Event{{Type: EventShown, Notification: r.snapshot()}}
}

// beginDismissLocked starts the deferred removal path. With a zero
// dismiss delay the record is removed on the spot.
func (m *Manager) beginDismissLocked(r *record) []Event {
	m.disarmLocked(r)
	r.paused = false
	r.remaining = 0

	if m.cfg.dismissDelay <= 0 {
		return m.removeLocked(r, true)
	}

	m.stepLocked(r, StateDismissing)
	m.armLocked(r, m.cfg.dismissDelay)
	return nil
}

// removeLocked detaches the record, emits the dismissed event and,
// when drain is set, admits queued notifications into the freed
// capacity in strict FIFO order.
func (m *Manager) removeLocked(r *record, drain bool) []Event {
	m.disarmLocked(r)
	m.stepLocked(r, StateRemoved)

	pos := r.n.Position
	m.active[pos] = slices.DeleteFunc(m.active[pos], func(x *record) bool { return x == r })
	delete(m.index, r.n.ID)

	m.log.LogAttrs(context.Background(), slog.LevelDebug, "notification dismissed",
		logger.ToastID(r.n.ID),
		logger.Position(string(pos)),
	)

	events := []Event{{Type: EventDismissed, Notification: r.snapshot()}}
	if drain {
		events = append(events, m.drainLocked()...)
	}
	return events
}

// drainLocked admits queue heads while capacity allows. The oldest
// queued notification always goes first, regardless of which position
// slot freed up; capacity is global.
func (m *Manager) drainLocked() []Event {
	var events []Event
	for len(m.queue) > 0 && len(m.index) < m.cfg.maxVisible {
		head := m.queue[0]
		m.queue = m.queue[1:]
		events = append(events, m.admitLocked(head)...)
	}
	return events
}

// armLocked starts a timer for the record. The captured gen makes the
// callback stale-safe: any later disarm or re-arm bumps gen first.
func (m *Manager) armLocked(r *record, d time.Duration) {
	r.gen++
	gen := r.gen
	id := r.n.ID
	r.armedAt = time.Now()
	r.armedFor = d
	r.timer = time.AfterFunc(d, func() {
		m.timerFired(id, gen)
	})
}

func (m *Manager) disarmLocked(r *record) {
	r.gen++
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
}

// timerFired is the asynchronous re-entry point. It tolerates the
// notification having been dismissed, paused, or re-armed since the
// timer was set.
func (m *Manager) timerFired(id string, gen uint64) {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	r, ok := m.index[id]
	if !ok || r.gen != gen {
		m.mu.Unlock()
		return
	}

	var events []Event
	switch r.n.State {
	case StateVisible:
		events = m.beginDismissLocked(r)
	case StateDismissing:
		events = m.removeLocked(r, true)
	}
	m.mu.Unlock()

	m.notify(events)
}

// stepLocked drives the record through the shared transition table. An
// illegal transition is a manager bug; it is logged and the state is
// forced so the collections stay consistent.
func (m *Manager) stepLocked(r *record, to State) {
	next, err := transitions.Step(r.n.State, to)
	if err != nil {
		m.log.LogAttrs(context.Background(), slog.LevelError, "illegal lifecycle transition",
			logger.ToastID(r.n.ID),
			slog.String("from", string(r.n.State)),
			slog.String("to", string(to)),
			logger.Error(err),
		)
		next = to
	}
	r.n.State = next
}

// notify dispatches events to observers outside the manager lock, in
// emission order. Observers may re-enter the manager.
func (m *Manager) notify(events []Event) {
	if len(events) == 0 {
		return
	}
	m.mu.Lock()
	obs := slices.Clone(m.observers)
	m.mu.Unlock()

	for _, e := range events {
		for _, fn := range obs {
			fn(e)
		}
	}
}

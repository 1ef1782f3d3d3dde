package toast

import (
	"log/slog"
	"time"
)

// settings holds manager configuration, fixed at construction.
type settings struct {
	defaultPosition    Position
	defaultDuration    time.Duration
	maxVisible         int
	newestOnTop        bool
	pauseOnHover       bool
	defaultDismissible bool
	dismissDelay       time.Duration
	logger             *slog.Logger
	observers          []Observer
}

func defaultSettings() settings {
	return settings{
		defaultPosition:    PositionTopRight,
		defaultDuration:    5 * time.Second,
		maxVisible:         5,
		newestOnTop:        true,
		pauseOnHover:       true,
		defaultDismissible: true,
		dismissDelay:       300 * time.Millisecond,
		logger:             slog.Default(),
	}
}

// Option configures a Manager at construction.
type Option func(*settings)

// WithLogger sets the logger used for lifecycle diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithDefaultPosition sets the position used when Show is not given one.
func WithDefaultPosition(p Position) Option {
	return func(s *settings) { s.defaultPosition = p }
}

// WithDefaultDuration sets the auto-dismiss countdown used when Show
// is not given one. Zero makes notifications sticky by default.
func WithDefaultDuration(d time.Duration) Option {
	return func(s *settings) { s.defaultDuration = d }
}

// WithMaxVisible caps how many notifications may be in Visible or
// Dismissing state at once, across all positions. Further Show calls
// queue until capacity frees up.
func WithMaxVisible(n int) Option {
	return func(s *settings) { s.maxVisible = n }
}

// WithNewestOnTop controls display order within a position slot:
// newest-first when true, insertion order when false.
func WithNewestOnTop(v bool) Option {
	return func(s *settings) { s.newestOnTop = v }
}

// WithPauseOnHover gates whether PauseTimer/ResumeTimer have any
// effect. Renderers wire these to pointer enter/leave.
func WithPauseOnHover(v bool) Option {
	return func(s *settings) { s.pauseOnHover = v }
}

// WithDefaultDismissible sets the dismissible flag used when Show is
// not given one.
func WithDefaultDismissible(v bool) Option {
	return func(s *settings) { s.defaultDismissible = v }
}

// WithDismissDelay sets how long a notification stays in Dismissing
// before removal, covering the renderer's exit animation. Zero removes
// immediately.
func WithDismissDelay(d time.Duration) Option {
	return func(s *settings) { s.dismissDelay = d }
}

// WithObserver registers an observer at construction. More can be
// added later with Subscribe.
func WithObserver(fn Observer) Option {
	return func(s *settings) {
		if fn != nil {
			s.observers = append(s.observers, fn)
		}
	}
}

// showOptions accumulates per-notification overrides. Fields carry a
// set flag so explicit zero values (sticky duration, dismissible
// false) are distinguishable from "use the default".
type showOptions struct {
	message        string
	messageSet     bool
	title          string
	titleSet       bool
	kind           Kind
	kindSet        bool
	position       Position
	positionSet    bool
	duration       time.Duration
	durationSet    bool
	dismissible    bool
	dismissibleSet bool
	actions        []Action
	actionsSet     bool
	data           map[string]any
	dataSet        bool
}

// ShowOption customizes a single notification. The same options are
// accepted by Update, where position and dismissible changes are
// ignored (those fields are fixed at admission).
type ShowOption func(*showOptions)

// WithMessage replaces the message text. Only meaningful for Update;
// Show takes the message as its argument.
func WithMessage(msg string) ShowOption {
	return func(o *showOptions) {
		o.message = msg
		o.messageSet = true
	}
}

// WithTitle sets the title text.
func WithTitle(title string) ShowOption {
	return func(o *showOptions) {
		o.title = title
		o.titleSet = true
	}
}

// WithKind sets the severity tag.
func WithKind(k Kind) ShowOption {
	return func(o *showOptions) {
		o.kind = k
		o.kindSet = true
	}
}

// WithPosition sets the display slot.
func WithPosition(p Position) ShowOption {
	return func(o *showOptions) {
		o.position = p
		o.positionSet = true
	}
}

// WithDuration sets the auto-dismiss countdown. Zero means sticky.
// In an Update, the countdown restarts from the new value; it does not
// resume the previous remaining time.
func WithDuration(d time.Duration) ShowOption {
	return func(o *showOptions) {
		o.duration = d
		o.durationSet = true
	}
}

// WithSticky disables auto-dismiss for this notification.
func WithSticky() ShowOption {
	return WithDuration(0)
}

// WithDismissible overrides the configured dismissible default.
func WithDismissible(v bool) ShowOption {
	return func(o *showOptions) {
		o.dismissible = v
		o.dismissibleSet = true
	}
}

// WithActions attaches call-to-action entries.
func WithActions(actions ...Action) ShowOption {
	return func(o *showOptions) {
		o.actions = actions
		o.actionsSet = true
	}
}

// WithData attaches an opaque pass-through bag for the renderer.
func WithData(data map[string]any) ShowOption {
	return func(o *showOptions) {
		o.data = data
		o.dataSet = true
	}
}

package toastkit

import (
	"context"
	"log/slog"
	"time"

	"github.com/dmitrymomot/toastkit/pkg/config"
	"github.com/dmitrymomot/toastkit/pkg/logger"
	"github.com/dmitrymomot/toastkit/pkg/stream"
	"github.com/dmitrymomot/toastkit/pkg/toast"
)

// Config holds manager settings resolvable from the environment or a
// YAML file. Defaults come from DefaultConfig, so only deviations need
// to be set.
type Config struct {
	Position     string        `env:"TOASTKIT_POSITION" yaml:"position"`
	Duration     time.Duration `env:"TOASTKIT_DURATION" yaml:"duration" validate:"min=0"`
	MaxVisible   int           `env:"TOASTKIT_MAX_VISIBLE" yaml:"max_visible" validate:"min=1"`
	NewestOnTop  bool          `env:"TOASTKIT_NEWEST_ON_TOP" yaml:"newest_on_top"`
	PauseOnHover bool          `env:"TOASTKIT_PAUSE_ON_HOVER" yaml:"pause_on_hover"`
	Dismissible  bool          `env:"TOASTKIT_DISMISSIBLE" yaml:"dismissible"`
	DismissDelay time.Duration `env:"TOASTKIT_DISMISS_DELAY" yaml:"dismiss_delay" validate:"min=0"`
	LogLevel     string        `env:"TOASTKIT_LOG_LEVEL" yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
	LogFormat    string        `env:"TOASTKIT_LOG_FORMAT" yaml:"log_format" validate:"omitempty,oneof=json text"`
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		Position:     string(toast.PositionTopRight),
		Duration:     5 * time.Second,
		MaxVisible:   5,
		NewestOnTop:  true,
		PauseOnHover: true,
		Dismissible:  true,
		DismissDelay: 300 * time.Millisecond,
		LogLevel:     "info",
		LogFormat:    "json",
	}
}

// New builds a manager from TOASTKIT_* environment variables layered
// over DefaultConfig. Extra options are applied last and win over the
// environment.
func New(opts ...toast.Option) (*toast.Manager, error) {
	cfg := DefaultConfig()
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}
	return NewWithConfig(cfg, opts...)
}

// NewFromFile builds a manager from a YAML file layered over
// DefaultConfig, with environment variables taking precedence over the
// file and extra options over both.
func NewFromFile(path string, opts ...toast.Option) (*toast.Manager, error) {
	cfg := DefaultConfig()
	if err := config.LoadFile(path, &cfg); err != nil {
		return nil, err
	}
	return NewWithConfig(cfg, opts...)
}

// NewWithConfig builds a manager from an explicit Config.
func NewWithConfig(cfg Config, opts ...toast.Option) (*toast.Manager, error) {
	log := logger.New(
		logger.WithLevel(parseLevel(cfg.LogLevel)),
		logger.WithFormat(logger.Format(cfg.LogFormat)),
		logger.WithAttrs(logger.Component("toastkit")),
	)

	managerOpts := append([]toast.Option{
		toast.WithLogger(log),
		toast.WithDefaultPosition(toast.Position(cfg.Position)),
		toast.WithDefaultDuration(cfg.Duration),
		toast.WithMaxVisible(cfg.MaxVisible),
		toast.WithNewestOnTop(cfg.NewestOnTop),
		toast.WithPauseOnHover(cfg.PauseOnHover),
		toast.WithDefaultDismissible(cfg.Dismissible),
		toast.WithDismissDelay(cfg.DismissDelay),
	}, opts...)

	return toast.New(managerOpts...)
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// EventStream fans manager lifecycle events out to channel
// subscribers. The bridge itself is an ordinary synchronous observer;
// subscribers receive events through buffered channels and slow ones
// have events dropped rather than blocking the manager.
type EventStream struct {
	hub *stream.Hub[toast.Event]
}

// NewEventStream attaches a channel bridge to the manager. The buffer
// is the per-subscriber channel capacity.
func NewEventStream(m *toast.Manager, buffer int) *EventStream {
	s := &EventStream{hub: stream.NewHub[toast.Event](buffer)}
	m.Subscribe(func(e toast.Event) {
		s.hub.Publish(e)
	})
	return s
}

// Subscribe returns a subscription receiving all future events.
// Cancelling ctx detaches it.
func (s *EventStream) Subscribe(ctx context.Context) *stream.Subscription[toast.Event] {
	return s.hub.Subscribe(ctx)
}

// Close shuts down the hub and all subscriptions. The manager keeps
// running; subsequent events are discarded by the closed hub.
func (s *EventStream) Close() {
	s.hub.Close()
}

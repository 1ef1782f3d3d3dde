package toastkit_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/toastkit"
	"github.com/dmitrymomot/toastkit/pkg/config"
	"github.com/dmitrymomot/toastkit/pkg/toast"
)

func TestNew_EnvironmentConfig(t *testing.T) {
	t.Setenv("TOASTKIT_MAX_VISIBLE", "1")
	t.Setenv("TOASTKIT_DURATION", "0")
	t.Setenv("TOASTKIT_DISMISS_DELAY", "0")
	t.Setenv("TOASTKIT_POSITION", "bottom-center")

	m, err := toastkit.New()
	require.NoError(t, err)
	t.Cleanup(m.Close)

	a := m.Show("a")
	b := m.Show("b")

	assert.Equal(t, toast.PositionBottomCenter, a.Position)
	assert.Equal(t, toast.StateVisible, a.State)
	assert.Equal(t, toast.StateQueued, b.State)
}

func TestNew_InvalidEnvironment(t *testing.T) {
	t.Setenv("TOASTKIT_MAX_VISIBLE", "0")

	_, err := toastkit.New()
	require.ErrorIs(t, err, config.ErrValidation)
}

func TestNew_OptionsOverrideEnvironment(t *testing.T) {
	t.Setenv("TOASTKIT_MAX_VISIBLE", "5")

	m, err := toastkit.New(
		toast.WithMaxVisible(1),
		toast.WithDefaultDuration(0),
		toast.WithDismissDelay(0),
	)
	require.NoError(t, err)
	t.Cleanup(m.Close)

	m.Show("a")
	assert.Equal(t, toast.StateQueued, m.Show("b").State)
}

func TestNewFromFile(t *testing.T) {
	os.Unsetenv("TOASTKIT_MAX_VISIBLE")
	os.Unsetenv("TOASTKIT_POSITION")

	path := filepath.Join(t.TempDir(), "toastkit.yaml")
	content := "max_visible: 1\nposition: top-left\nduration: 0\ndismiss_delay: 0\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	m, err := toastkit.NewFromFile(path)
	require.NoError(t, err)
	t.Cleanup(m.Close)

	a := m.Show("a")
	assert.Equal(t, toast.PositionTopLeft, a.Position)
	assert.Equal(t, toast.StateQueued, m.Show("b").State)
}

func TestNewFromFile_Missing(t *testing.T) {
	_, err := toastkit.NewFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, config.ErrReadingFile)
}

func TestNewWithConfig_Defaults(t *testing.T) {
	m, err := toastkit.NewWithConfig(toastkit.DefaultConfig())
	require.NoError(t, err)
	t.Cleanup(m.Close)

	n := m.Show("hello")
	assert.Equal(t, toast.PositionTopRight, n.Position)
	assert.Equal(t, 5*time.Second, n.Duration)
	assert.True(t, n.Dismissible)
}

func TestNewWithConfig_InvalidPosition(t *testing.T) {
	cfg := toastkit.DefaultConfig()
	cfg.Position = "center-stage"

	_, err := toastkit.NewWithConfig(cfg)
	require.ErrorIs(t, err, toast.ErrInvalidConfig)
}

func TestEventStream(t *testing.T) {
	cfg := toastkit.DefaultConfig()
	cfg.Duration = 0
	cfg.DismissDelay = 0

	m, err := toastkit.NewWithConfig(cfg)
	require.NoError(t, err)
	t.Cleanup(m.Close)

	events := toastkit.NewEventStream(m, 8)
	t.Cleanup(events.Close)

	sub := events.Subscribe(context.Background())

	n := m.Show("hello")
	m.Dismiss(n.ID, true)

	shown := <-sub.C()
	assert.Equal(t, toast.EventShown, shown.Type)
	assert.Equal(t, n.ID, shown.Notification.ID)

	dismissed := <-sub.C()
	assert.Equal(t, toast.EventDismissed, dismissed.Type)
	assert.Equal(t, n.ID, dismissed.Notification.ID)
}

func TestEventStream_CloseStopsDelivery(t *testing.T) {
	m, err := toastkit.NewWithConfig(toastkit.DefaultConfig())
	require.NoError(t, err)
	t.Cleanup(m.Close)

	events := toastkit.NewEventStream(m, 8)
	sub := events.Subscribe(context.Background())
	events.Close()

	// The manager keeps working; the closed hub just drops events.
	n := m.Show("after close")
	assert.Equal(t, toast.StateVisible, n.State)

	_, open := <-sub.C()
	assert.False(t, open)
}

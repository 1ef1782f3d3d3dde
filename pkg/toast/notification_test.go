package toast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/toastkit/pkg/toast"
)

func TestPosition_Valid(t *testing.T) {
	t.Parallel()

	valid := []toast.Position{
		toast.PositionTopLeft, toast.PositionTopCenter, toast.PositionTopRight,
		toast.PositionBottomLeft, toast.PositionBottomCenter, toast.PositionBottomRight,
	}
	for _, p := range valid {
		assert.True(t, p.Valid(), "position %q", p)
	}

	assert.False(t, toast.Position("").Valid())
	assert.False(t, toast.Position("middle").Valid())
	assert.False(t, toast.Position("top").Valid())
}

func TestSnapshotIsolation(t *testing.T) {
	t.Parallel()

	m, _ := newStickyManager(t)

	data := map[string]any{"key": "original"}
	n := m.Show("a", toast.WithData(data))

	// Mutating the caller's map after Show does not leak into the manager.
	data["key"] = "mutated"
	got, ok := m.Get(n.ID)
	require.True(t, ok)
	assert.Equal(t, "original", got.Data["key"])

	// Mutating a returned snapshot does not either.
	got.Data["key"] = "tampered"
	again, ok := m.Get(n.ID)
	require.True(t, ok)
	assert.Equal(t, "original", again.Data["key"])
}

package lifecycle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/toastkit/pkg/lifecycle"
)

func newTestTable(t *testing.T) *lifecycle.Table[string] {
	t.Helper()
	table, err := lifecycle.NewTable(
		lifecycle.T("queued", "visible"),
		lifecycle.T("visible", "dismissing"),
		lifecycle.T("visible", "removed"),
		lifecycle.T("dismissing", "removed"),
	)
	require.NoError(t, err)
	return table
}

func TestNewTable_Empty(t *testing.T) {
	t.Parallel()

	_, err := lifecycle.NewTable[string]()
	assert.ErrorIs(t, err, lifecycle.ErrEmptyTable)
}

func TestMustTable_PanicsOnEmpty(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		lifecycle.MustTable[string]()
	})
}

func TestTable_Can(t *testing.T) {
	t.Parallel()

	table := newTestTable(t)

	tests := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{name: "declared transition", from: "queued", to: "visible", want: true},
		{name: "declared branch", from: "visible", to: "removed", want: true},
		{name: "undeclared transition", from: "queued", to: "removed", want: false},
		{name: "backwards", from: "removed", to: "visible", want: false},
		{name: "unknown state", from: "ghost", to: "visible", want: false},
		{name: "self transition not declared", from: "visible", to: "visible", want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, table.Can(tt.from, tt.to))
		})
	}
}

func TestTable_Step(t *testing.T) {
	t.Parallel()

	table := newTestTable(t)

	t.Run("legal step returns new state", func(t *testing.T) {
		t.Parallel()
		next, err := table.Step("visible", "dismissing")
		require.NoError(t, err)
		assert.Equal(t, "dismissing", next)
	})

	t.Run("illegal step returns ErrInvalidTransition", func(t *testing.T) {
		t.Parallel()
		_, err := table.Step("removed", "queued")
		require.ErrorIs(t, err, lifecycle.ErrInvalidTransition)
		assert.Contains(t, err.Error(), "removed")
		assert.Contains(t, err.Error(), "queued")
	})
}

func TestTable_Terminal(t *testing.T) {
	t.Parallel()

	table := newTestTable(t)

	assert.True(t, table.Terminal("removed"))
	assert.False(t, table.Terminal("visible"))
	assert.False(t, table.Terminal("queued"))
	// Unknown states have no outgoing transitions either.
	assert.True(t, table.Terminal("ghost"))
}

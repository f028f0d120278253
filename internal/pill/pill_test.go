package pill_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/young1lin/pillrow/internal/pill"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, pill.Validate(nil))
	require.NoError(t, pill.Validate([]pill.Pill{{ID: "a"}, {ID: "b"}}))

	err := pill.Validate([]pill.Pill{{ID: "a"}, {ID: ""}})
	assert.ErrorIs(t, err, pill.ErrEmptyID)

	err = pill.Validate([]pill.Pill{{ID: "a"}, {ID: "a"}})
	assert.ErrorIs(t, err, pill.ErrDuplicateID)
}

func TestToggleSet(t *testing.T) {
	t.Parallel()

	t.Run("zero value is usable", func(t *testing.T) {
		t.Parallel()
		var s pill.ToggleSet
		assert.False(t, s.Has("a"))
		assert.Equal(t, 0, s.Len())
		assert.True(t, s.Toggle("a"))
		assert.True(t, s.Has("a"))
	})

	t.Run("toggle flips membership", func(t *testing.T) {
		t.Parallel()
		s := pill.NewToggleSet("a")
		assert.False(t, s.Toggle("a"))
		assert.False(t, s.Has("a"))
		assert.True(t, s.Toggle("a"))
		assert.True(t, s.Has("a"))
	})

	t.Run("ids are sorted", func(t *testing.T) {
		t.Parallel()
		s := pill.NewToggleSet("c", "a", "b")
		assert.Equal(t, []string{"a", "b", "c"}, s.IDs())
	})

	t.Run("clone does not alias", func(t *testing.T) {
		t.Parallel()
		s := pill.NewToggleSet("a")
		c := s.Clone()
		s.Toggle("b")
		assert.False(t, c.Has("b"))
		assert.True(t, c.Equal(pill.NewToggleSet("a")))
		assert.False(t, c.Equal(s))
	})
}

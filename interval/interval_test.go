package interval

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInterval(t *testing.T) {

	t.Run("New/SwapsEndpoints", func(t *testing.T) {
		i := New(2, true, 1, false)
		require.Equal(t, 1.0, i.A)
		require.Equal(t, 2.0, i.B)
		require.False(t, i.AClosed)
		require.True(t, i.BClosed)
	})

	t.Run("Contains/Closed", func(t *testing.T) {
		i := NewClosed(1, 1.5)
		require.True(t, i.Contains(1))
		require.True(t, i.Contains(1.5))
		require.True(t, i.Contains(1.25))
		require.False(t, i.Contains(0.99))
		require.False(t, i.Contains(1.51))
	})

	t.Run("Contains/Open", func(t *testing.T) {
		i := NewOpen(0, math.Inf(1))
		require.False(t, i.Contains(0))
		require.True(t, i.Contains(1e300))
		require.False(t, i.Contains(-1))
		require.False(t, i.IsBounded())
	})

	t.Run("Contains/HalfOpen", func(t *testing.T) {
		i := New(0, true, 1, false)
		require.True(t, i.Contains(0))
		require.False(t, i.Contains(1))
	})

	t.Run("Point", func(t *testing.T) {
		i := NewPoint(3)
		require.True(t, i.IsPoint())
		require.True(t, i.Contains(3))
		require.Equal(t, 0.0, i.Width())
		require.False(t, NewOpen(3, 3).Contains(3))
	})

	t.Run("Equal", func(t *testing.T) {
		require.True(t, NewClosed(1, 2).Equal(NewClosed(2, 1)))
		require.False(t, NewClosed(1, 2).Equal(NewOpen(1, 2)))
	})

	t.Run("String", func(t *testing.T) {
		require.Equal(t, "[1, 1.5]", NewClosed(1, 1.5).String())
		require.Equal(t, "(0, +Inf)", NewOpen(0, math.Inf(1)).String())
		require.Equal(t, "[-Inf, 2)", New(math.Inf(-1), true, 2, false).String())
	})
}

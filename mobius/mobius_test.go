package mobius

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tuneinsight/realroots/interval"
)

func TestTransform(t *testing.T) {

	t.Run("Identity", func(t *testing.T) {
		require.Equal(t, 3.5, Identity.Apply(3.5))
		require.True(t, math.IsInf(Identity.AtInfinity(), 1))
		require.Equal(t, 1.0, Identity.Determinant())
	})

	t.Run("ScaleBy", func(t *testing.T) {
		m := Identity.ScaleBy(2)
		require.Equal(t, Transform{A: 2, B: 0, C: 0, D: 1}, m)
		require.Equal(t, 3.0, m.Apply(1.5))
	})

	t.Run("ShiftBy", func(t *testing.T) {
		m := Identity.ShiftBy(3)
		require.Equal(t, Transform{A: 1, B: 3, C: 0, D: 1}, m)
		require.Equal(t, 3.0, m.Apply(0))
		require.True(t, math.IsInf(m.AtInfinity(), 1))
	})

	t.Run("VincentReduction", func(t *testing.T) {
		m := Identity.VincentReduction()
		require.Equal(t, Transform{A: 0, B: 1, C: 1, D: 1}, m)
		// t <- 1/(t+1) maps [0, +Inf) onto (0, 1]
		require.Equal(t, 1.0, m.Apply(0))
		require.Equal(t, 0.0, m.AtInfinity())
		require.Equal(t, 0.5, m.Apply(1))
		require.NotZero(t, m.Determinant())
	})

	t.Run("Composition", func(t *testing.T) {
		// shift by 1 then reduce: t -> 1 + 1/(t+1)
		m := Identity.ShiftBy(1).VincentReduction()
		for _, x := range []float64{0, 0.5, 4} {
			require.InDelta(t, 1+1/(x+1), m.Apply(x), 1e-15)
		}
		require.Equal(t, interval.NewClosed(1, 2), m.Bounds())
	})

	t.Run("Bounds/Unbounded", func(t *testing.T) {
		b := Identity.ShiftBy(2).Bounds()
		require.Equal(t, 2.0, b.A)
		require.True(t, math.IsInf(b.B, 1))
		require.True(t, b.AClosed && b.BClosed)
	})

	t.Run("AtInfinity/Signed", func(t *testing.T) {
		require.True(t, math.IsInf(Transform{A: -1, B: 0, C: 0, D: 1}.AtInfinity(), -1))
		require.Equal(t, 0.5, Transform{A: 1, B: 0, C: 2, D: 1}.AtInfinity())
	})

	t.Run("Equal&String", func(t *testing.T) {
		require.True(t, Identity.Equal(Transform{1, 0, 0, 1}))
		require.False(t, Identity.Equal(Identity.ShiftBy(1)))
		require.Equal(t, "(1t + 0)/(0t + 1)", Identity.String())
	})
}

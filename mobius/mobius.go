// Package mobius implements the real linear-fractional (Möbius) transform
// x = (a*t + b) / (c*t + d) that relates the working variable t of a
// subdivided polynomial to the variable x of the original polynomial.
package mobius

import (
	"fmt"
	"math"

	"github.com/tuneinsight/realroots/interval"
)

// Transform is the map t -> (A*t + B) / (C*t + D).
// Transforms are values: every method returns a new Transform.
type Transform struct {
	A, B, C, D float64
}

// Identity is the transform t -> t.
var Identity = Transform{A: 1, B: 0, C: 0, D: 1}

// Apply returns (A*t + B) / (C*t + D).
func (m Transform) Apply(t float64) float64 {
	return (m.A*t + m.B) / (m.C*t + m.D)
}

// AtInfinity returns the limit of Apply(t) for t -> +Inf, that is A/C,
// which is a signed infinity when C = 0.
func (m Transform) AtInfinity() float64 {
	return m.A / m.C
}

// ScaleBy returns the transform composed with the substitution t <- alpha*t.
func (m Transform) ScaleBy(alpha float64) Transform {
	return Transform{A: alpha * m.A, B: m.B, C: alpha * m.C, D: m.D}
}

// ShiftBy returns the transform composed with the substitution t <- t+k.
func (m Transform) ShiftBy(k float64) Transform {
	return Transform{A: m.A, B: k*m.A + m.B, C: m.C, D: k*m.C + m.D}
}

// VincentReduction returns the transform composed with the substitution t <- 1/(t+1).
func (m Transform) VincentReduction() Transform {
	return Transform{A: m.B, B: m.A + m.B, C: m.D, D: m.C + m.D}
}

// Determinant returns A*D - B*C, which is non-zero for an invertible transform.
func (m Transform) Determinant() float64 {
	return m.A*m.D - m.B*m.C
}

// Bounds returns the closed interval whose endpoints are the images of
// t = 0 and t = +Inf. It contains the images of all t >= 0.
func (m Transform) Bounds() interval.Interval {
	v0, vInf := m.Apply(0), m.AtInfinity()
	return interval.NewClosed(math.Min(v0, vInf), math.Max(v0, vInf))
}

// Equal returns true if both transforms have the same parameters.
func (m Transform) Equal(other Transform) bool {
	return m == other
}

func (m Transform) String() string {
	return fmt.Sprintf("(%gt + %g)/(%gt + %g)", m.A, m.B, m.C, m.D)
}

// Package interval implements a real interval with independently open or
// closed endpoints.
package interval

import (
	"math"
	"strconv"
	"strings"
)

// Interval is the set of reals between A and B, with A <= B.
// AClosed and BClosed state whether the corresponding endpoint belongs to the set.
// Interval is a value type: the constructors are the only way endpoints are ordered,
// so callers should not build one from a literal with A > B.
type Interval struct {
	A, B             float64
	AClosed, BClosed bool
}

// New returns the interval between a and b, swapping the endpoints
// (and their flags) if a > b.
func New(a float64, aClosed bool, b float64, bClosed bool) Interval {
	if a > b {
		a, b = b, a
		aClosed, bClosed = bClosed, aClosed
	}

	return Interval{A: a, B: b, AClosed: aClosed, BClosed: bClosed}
}

// NewClosed returns [a, b].
func NewClosed(a, b float64) Interval {
	return New(a, true, b, true)
}

// NewOpen returns (a, b).
func NewOpen(a, b float64) Interval {
	return New(a, false, b, false)
}

// NewPoint returns the degenerate interval [a, a].
func NewPoint(a float64) Interval {
	return NewClosed(a, a)
}

// Contains returns true if x belongs to the interval.
func (i Interval) Contains(x float64) bool {

	if i.AClosed && x == i.A {
		return true
	}

	if i.BClosed && x == i.B {
		return true
	}

	return i.A < x && x < i.B
}

// Width returns B - A.
func (i Interval) Width() float64 {
	return i.B - i.A
}

// IsPoint returns true if the interval is [a, a].
func (i Interval) IsPoint() bool {
	return i.A == i.B && i.AClosed && i.BClosed
}

// IsBounded returns true if both endpoints are finite.
func (i Interval) IsBounded() bool {
	return !math.IsInf(i.A, 0) && !math.IsInf(i.B, 0)
}

// Equal returns true if both intervals have the same endpoints and flags.
func (i Interval) Equal(other Interval) bool {
	return i == other
}

func (i Interval) String() string {
	var sb strings.Builder

	if i.AClosed {
		sb.WriteByte('[')
	} else {
		sb.WriteByte('(')
	}

	sb.WriteString(formatEndpoint(i.A))
	sb.WriteString(", ")
	sb.WriteString(formatEndpoint(i.B))

	if i.BClosed {
		sb.WriteByte(']')
	} else {
		sb.WriteByte(')')
	}

	return sb.String()
}

func formatEndpoint(x float64) string {
	switch {
	case math.IsInf(x, 1):
		return "+Inf"
	case math.IsInf(x, -1):
		return "-Inf"
	default:
		return strconv.FormatFloat(x, 'g', -1, 64)
	}
}

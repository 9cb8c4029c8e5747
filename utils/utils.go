// Package utils implements small generic helpers shared by the other packages.
package utils

import (
	"golang.org/x/exp/constraints"
)

// Number is the set of built-in numeric types accepted by the helpers of this package.
type Number interface {
	constraints.Integer | constraints.Float
}

// Max returns the maximum of a and b.
func Max[V constraints.Ordered](a, b V) V {
	if a >= b {
		return a
	}
	return b
}

// Min returns the minimum of a and b.
func Min[V constraints.Ordered](a, b V) V {
	if a <= b {
		return a
	}
	return b
}

// Abs returns |x|.
func Abs[V constraints.Signed | constraints.Float](x V) V {
	if x < 0 {
		return -x
	}
	return x
}

// Sign returns -1, 0 or 1 according to the sign of x.
func Sign[V constraints.Signed | constraints.Float](x V) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}

// SliceClone returns a copy of s. The copy of an empty slice is nil.
func SliceClone[V any](s []V) (c []V) {
	if len(s) == 0 {
		return
	}
	c = make([]V, len(s))
	copy(c, s)
	return
}

// SliceReverse returns a new slice with the elements of s in reverse order.
func SliceReverse[V any](s []V) (r []V) {
	r = make([]V, len(s))
	for i := range s {
		r[len(s)-1-i] = s[i]
	}
	return
}

// SliceSum returns the sum of the elements of s.
func SliceSum[V Number](s []V) (sum V) {
	for _, v := range s {
		sum += v
	}
	return
}

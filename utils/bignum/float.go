// Package bignum implements arbitrary precision helpers on top of math/big.
package bignum

import (
	"fmt"
	"math/big"

	"github.com/ALTree/bigfloat"
)

// DefaultPrecision is the precision, in bits, used when the caller has no
// better reference.
const DefaultPrecision = 128

// NewFloat creates a new big.Float element with "prec" bits of precision.
// Valid types for x are: int, int64, uint64, float64, *big.Int or *big.Float.
func NewFloat(x interface{}, prec uint) (y *big.Float) {

	y = new(big.Float)
	y.SetPrec(prec)

	if x == nil {
		return
	}

	switch x := x.(type) {
	case int:
		y.SetInt64(int64(x))
	case int64:
		y.SetInt64(x)
	case uint64:
		y.SetUint64(x)
	case float64:
		y.SetFloat64(x)
	case *big.Int:
		y.SetInt(x)
	case *big.Float:
		y.Set(x)
	default:
		panic(fmt.Errorf("invalid x.(type): valid types are int, int64, uint64, float64, *big.Int or *big.Float but is %T", x))
	}

	return
}

// Pow returns x^y, x must be non-negative.
func Pow(x, y *big.Float) (pow *big.Float) {
	return bigfloat.Pow(x, y)
}

// Root returns the real k-th root x^(1/k) of a non-negative x at the precision of x.
func Root(x *big.Float, k int) (root *big.Float) {

	if k <= 0 {
		panic(fmt.Errorf("cannot Root: k must be positive but is %d", k))
	}

	if x.Sign() < 0 {
		panic(fmt.Errorf("cannot Root: x must be non-negative but is %v", x))
	}

	if k == 1 || x.Sign() == 0 || x.IsInf() {
		return new(big.Float).Set(x)
	}

	if k == 2 {
		return new(big.Float).SetPrec(x.Prec()).Sqrt(x)
	}

	e := new(big.Float).SetPrec(x.Prec()).SetInt64(1)
	e.Quo(e, NewFloat(k, x.Prec()))

	return Pow(x, e)
}

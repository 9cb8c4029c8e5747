package bignum

import (
	"math/big"
)

// MonomialEval evaluates y = sum x^i * poly[i] with Horner's rule,
// at the precision of x.
func MonomialEval(x *big.Float, poly []float64) (y *big.Float) {

	y = new(big.Float).SetPrec(x.Prec())

	for i := len(poly) - 1; i >= 0; i-- {
		y.Mul(y, x)
		y.Add(y, NewFloat(poly[i], x.Prec()))
	}

	return
}

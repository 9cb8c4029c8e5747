package bound

import (
	"math/big"

	"github.com/tuneinsight/realroots/polynomial"
	"github.com/tuneinsight/realroots/utils/bignum"
)

// LocalMaxQuadratic is the local-max-quadratic (LMQ) bound of Akritas, Strzeboński
// and Vigklas. For every negative coefficient a_i it takes the minimum over the
// positive higher-order coefficients a_j of (2^t_j |a_i| / a_j)^(1/(j-i)), where t_j
// starts at 1 and is incremented each time a_j realizes such a minimum, and it
// returns the maximum of these minima.
//
// Radicals are computed on big.Float values so that the intermediate powers of two
// and coefficient ratios cannot overflow.
type LocalMaxQuadratic struct {
	// Precision in bits of the intermediate computations, bignum.DefaultPrecision if zero.
	Precision uint
}

// EstimateLowerBound returns the inverse of the LMQ bound on the positive
// roots of x^n p(1/x), or 0 if p has no positive root bound.
func (e LocalMaxQuadratic) EstimateLowerBound(p *polynomial.Polynomial) float64 {
	return lowerBound(p, localMaxQuadratic, e.Precision)
}

// UpperBound returns the LMQ bound on the positive roots of p, 0 if p has no positive root.
func (e LocalMaxQuadratic) UpperBound(p *polynomial.Polynomial) float64 {

	prec := e.Precision
	if prec == 0 {
		prec = bignum.DefaultPrecision
	}

	ub := upperBound(p, localMaxQuadratic, prec)

	if ub == nil {
		return 0
	}

	f, _ := ub.Float64()

	return f
}

func localMaxQuadratic(coeffs []float64, prec uint) (ub *big.Float) {

	n := len(coeffs) - 1

	used := make([]int, n+1)
	for j := range used {
		used[j] = 1
	}

	for i := 0; i < n; i++ {

		if !negative(coeffs[i]) {
			continue
		}

		var lowest *big.Float
		var argmin int

		for j := i + 1; j <= n; j++ {

			if !positive(coeffs[j]) {
				continue
			}

			q := bignum.Root(ratio(coeffs[i], coeffs[j], used[j], prec), j-i)

			if lowest == nil || q.Cmp(lowest) < 0 {
				lowest, argmin = q, j
			}
		}

		// no finite positive coefficient above a_i
		if lowest == nil {
			continue
		}

		used[argmin]++

		if ub == nil || lowest.Cmp(ub) > 0 {
			ub = lowest
		}
	}

	return
}

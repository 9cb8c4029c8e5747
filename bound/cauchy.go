package bound

import (
	"math/big"

	"github.com/tuneinsight/realroots/polynomial"
	"github.com/tuneinsight/realroots/utils/bignum"
)

// Cauchy is Cauchy's rule for positive roots: the maximum, over the negative
// coefficients a_i, of (λ |a_i| / a_n)^(1/(n-i)), λ being the number of negative
// coefficients. It is cheaper but usually looser than [LocalMaxQuadratic].
type Cauchy struct {
	// Precision in bits of the intermediate computations, bignum.DefaultPrecision if zero.
	Precision uint
}

// EstimateLowerBound returns the inverse of Cauchy's bound on the positive
// roots of x^n p(1/x), or 0 if p has no positive root bound.
func (e Cauchy) EstimateLowerBound(p *polynomial.Polynomial) float64 {
	return lowerBound(p, cauchy, e.Precision)
}

func cauchy(coeffs []float64, prec uint) (ub *big.Float) {

	n := len(coeffs) - 1

	if !positive(coeffs[n]) {
		return nil
	}

	var negatives int
	for _, c := range coeffs {
		if negative(c) {
			negatives++
		}
	}

	if negatives == 0 {
		return nil
	}

	lambda := bignum.NewFloat(negatives, prec)

	for i := 0; i < n; i++ {

		if !negative(coeffs[i]) {
			continue
		}

		r := ratio(coeffs[i], coeffs[n], 0, prec)
		r.Mul(r, lambda)

		if q := bignum.Root(r, n-i); ub == nil || q.Cmp(ub) > 0 {
			ub = q
		}
	}

	return
}

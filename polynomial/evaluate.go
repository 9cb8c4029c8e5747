package polynomial

import (
	"math/big"

	"github.com/tuneinsight/realroots/utils"
	"github.com/tuneinsight/realroots/utils/bignum"
)

// Evaluate returns p(x) using Horner's rule.
func (p *Polynomial) Evaluate(x float64) float64 {

	switch {
	case p.IsZero():
		return 0
	case x == 0 || p.Degree() == 0:
		return p.coeffs[0]
	case x == 1:
		return utils.SliceSum(p.coeffs)
	}

	n := p.Degree()

	y := p.coeffs[n] * x
	for i := n - 1; i > 0; i-- {
		y = (y + p.coeffs[i]) * x
	}

	return y + p.coeffs[0]
}

// EvaluateComplex returns p(z) using Horner's rule in complex arithmetic.
func (p *Polynomial) EvaluateComplex(z complex128) complex128 {

	switch {
	case p.IsZero():
		return 0
	case z == 0 || p.Degree() == 0:
		return complex(p.coeffs[0], 0)
	case z == 1:
		return complex(utils.SliceSum(p.coeffs), 0)
	}

	n := p.Degree()

	y := z * complex(p.coeffs[n], 0)
	for i := n - 1; i > 0; i-- {
		y = (y + complex(p.coeffs[i], 0)) * z
	}

	return y + complex(p.coeffs[0], 0)
}

// EvaluateBig returns p(x) computed at the precision of x.
func (p *Polynomial) EvaluateBig(x *big.Float) *big.Float {
	return bignum.MonomialEval(x, p.coeffs)
}

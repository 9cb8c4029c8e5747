// Package bound implements estimators of a lower bound on the positive real
// roots of a polynomial.
//
// The VAS engine uses the lower bound to decide whether a region can be
// shifted towards its first root or has to be split. Correctness of the
// isolation relies on the returned value being a valid lower bound: an
// estimator returning a value larger than the smallest positive root makes
// the engine silently skip that root. Estimators are not validated.
package bound

import (
	"errors"
	"fmt"
	"math"
	"math/big"

	"github.com/tuneinsight/realroots/polynomial"
	"github.com/tuneinsight/realroots/utils/bignum"
)

// ErrUnknownEstimator is returned by [ByName] for unsupported names.
var ErrUnknownEstimator = errors.New("unknown estimator")

// Names of the estimators available through [ByName].
const (
	NameLocalMaxQuadratic = "lmq"
	NameCauchy            = "cauchy"
)

// Estimator estimates a non-negative lower bound on the positive real roots of a polynomial.
type Estimator interface {
	EstimateLowerBound(p *polynomial.Polynomial) float64
}

// Func adapts a function to the [Estimator] interface.
type Func func(p *polynomial.Polynomial) float64

// EstimateLowerBound returns f(p).
func (f Func) EstimateLowerBound(p *polynomial.Polynomial) float64 {
	return f(p)
}

// Fixed is an [Estimator] always returning the same bound.
type Fixed float64

// EstimateLowerBound returns the fixed bound, regardless of p.
func (f Fixed) EstimateLowerBound(*polynomial.Polynomial) float64 {
	return float64(f)
}

// ByName returns the estimator registered under name.
func ByName(name string) (Estimator, error) {
	switch name {
	case NameLocalMaxQuadratic:
		return LocalMaxQuadratic{}, nil
	case NameCauchy:
		return Cauchy{}, nil
	default:
		return nil, fmt.Errorf("cannot ByName: %q: %w", name, ErrUnknownEstimator)
	}
}

// upperBoundRule computes, in the given precision, an upper bound on the positive
// roots of the polynomial with coefficients coeffs (ascending, positive leading
// coefficient). It returns nil if the polynomial has no negative coefficient.
type upperBoundRule func(coeffs []float64, prec uint) *big.Float

// lowerBound returns 1/UB(x^n p(1/x)), the inverse of an upper bound on the
// positive roots of the reversed polynomial, or 0 when no such bound exists.
func lowerBound(p *polynomial.Polynomial, rule upperBoundRule, prec uint) float64 {

	if prec == 0 {
		prec = bignum.DefaultPrecision
	}

	ub := upperBound(p.Reversed(), rule, prec)

	if ub == nil || ub.Sign() == 0 {
		return 0
	}

	lb, _ := new(big.Float).SetPrec(prec).Quo(bignum.NewFloat(1, prec), ub).Float64()

	return lb
}

// upperBound normalizes p to a positive leading coefficient and applies rule.
func upperBound(p *polynomial.Polynomial, rule upperBoundRule, prec uint) *big.Float {

	if p.Degree() <= 0 {
		return nil
	}

	if p.Leading() < 0 {
		p = p.Neg()
	}

	return rule(p.Coefficients(), prec)
}

// positive returns true if c is finite and strictly positive.
// Coefficients that overflowed to an infinity or became NaN are ignored by the rules.
func positive(c float64) bool {
	return c > 0 && !math.IsInf(c, 1)
}

// negative returns true if c is finite and strictly negative.
func negative(c float64) bool {
	return c < 0 && !math.IsInf(c, -1)
}

// ratio returns 2^exp * |num| / den at the given precision, num and den being finite.
func ratio(num, den float64, exp int, prec uint) *big.Float {
	r := bignum.NewFloat(num, prec)
	r.Abs(r)
	r.Quo(r, bignum.NewFloat(den, prec))
	return r.SetMantExp(r, exp)
}

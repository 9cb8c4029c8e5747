package polynomial

import (
	"github.com/tuneinsight/realroots/utils"
)

// Compose returns p(g(x)), substituting g for the variable with Horner's rule.
func (p *Polynomial) Compose(g *Polynomial) *Polynomial {

	if g == nil {
		panic(invalidArgument("Compose", "substituted polynomial is nil"))
	}

	switch {
	case p.IsZero():
		return Zero
	case g.IsZero() || p.Degree() == 0:
		return NewConstant(p.coeffs[0])
	case g.IsIdentity():
		return NewConstant(utils.SliceSum(p.coeffs))
	}

	n := p.Degree()

	result := g.MulScalar(p.coeffs[n])
	for i := n - 1; i > 0; i-- {
		result = result.AddScalar(p.coeffs[i]).Mul(g)
	}

	return result.AddScalar(p.coeffs[0])
}

// Pascal returns (x+1)^n, whose coefficients are the n-th row of Pascal's triangle.
func Pascal(n int) *Polynomial {

	if n < 0 {
		panic(invalidArgument("Pascal", "degree must be non-negative but is %d", n))
	}

	if n == 0 {
		return Identity
	}

	coeffs := make([]float64, n+1)
	coeffs[0] = 1

	for i := 0; i < n; i++ {
		coeffs[i+1] = coeffs[i] * float64(n-i) / float64(i+1)
	}

	return of(coeffs)
}

// Sigma returns the sum of f(k) for k = start, start+increment, ... <= end.
// It returns [Zero] if start > end.
func Sigma(f func(k int) *Polynomial, start, end, increment int) *Polynomial {

	if f == nil {
		panic(invalidArgument("Sigma", "function is nil"))
	}

	if increment <= 0 {
		panic(invalidArgument("Sigma", "increment must be positive but is %d", increment))
	}

	if start > end {
		return Zero
	}

	var terms [][]float64

	for k := start; k <= end; k += increment {

		term := f(k)

		if term == nil {
			panic(invalidArgument("Sigma", "function returned nil for k=%d", k))
		}

		terms = append(terms, term.coeffs)
	}

	return of(SumCoefficientArrays(terms...))
}

// SigmaTo returns the sum of f(k) for k = 0, 1, ..., end.
func SigmaTo(f func(k int) *Polynomial, end int) *Polynomial {
	return Sigma(f, 0, end, 1)
}

// VincentReduction returns (x+1)^n * p(1/(x+1)), n being the degree of p,
// computed as the sum of Pascal(n-k) * coeffs[k].
func (p *Polynomial) VincentReduction() *Polynomial {
	n := p.Degree()
	return SigmaTo(func(k int) *Polynomial {
		return Pascal(n - k).MulScalar(p.coeffs[k])
	}, n)
}

// ReduceDegree returns p/x, dropping the constant term.
// It is exact when the constant term is zero.
func (p *Polynomial) ReduceDegree() *Polynomial {

	if p.Degree() <= 0 {
		return Zero
	}

	return of(utils.SliceClone(p.coeffs[1:]))
}

// ReduceDegreeTruncated drops the constant term and the leading term of p,
// keeping the coefficients of x^1 to x^(n-1) shifted down by one power.
// It is not a division by x: see [Polynomial.ReduceDegree].
func (p *Polynomial) ReduceDegreeTruncated() *Polynomial {

	if p.Degree() <= 0 {
		return Zero
	}

	return of(utils.SliceClone(p.coeffs[1 : len(p.coeffs)-1]))
}

// Reversed returns x^n * p(1/x), n being the degree of p. The roots of the
// result are the inverses of the non-zero roots of p.
func (p *Polynomial) Reversed() *Polynomial {
	return of(utils.SliceReverse(p.coeffs))
}

// SignChanges returns the number of sign changes between consecutive non-zero
// coefficients (Descartes' rule of signs). It bounds the number of positive
// real roots, counted with multiplicity, and has the same parity.
func (p *Polynomial) SignChanges() int {

	count := -1
	var last int

	for _, c := range p.coeffs {

		if sign := utils.Sign(c); sign != 0 && sign != last {
			count++
			last = sign
		}
	}

	return utils.Max(count, 0)
}

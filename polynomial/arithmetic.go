package polynomial

import (
	"github.com/tuneinsight/realroots/utils"
)

// Mul returns p * q.
func (p *Polynomial) Mul(q *Polynomial) *Polynomial {

	if q == nil {
		panic(invalidArgument("Mul", "multiplicand is nil"))
	}

	switch {
	case p.IsIdentity():
		return q
	case q.IsIdentity():
		return p
	case p.IsZero() || q.IsZero():
		return Zero
	case p.Degree() == 0:
		return q.MulScalar(p.coeffs[0])
	case q.Degree() == 0:
		return p.MulScalar(q.coeffs[0])
	}

	coeffs := make([]float64, p.Degree()+q.Degree()+1)

	for i, a := range p.coeffs {
		for j, b := range q.coeffs {
			coeffs[i+j] += a * b
		}
	}

	return of(coeffs)
}

// MulScalar returns c * p.
func (p *Polynomial) MulScalar(c float64) *Polynomial {

	switch {
	case c == 0 || p.IsZero():
		return Zero
	case c == 1:
		return p
	case p.IsIdentity():
		return NewConstant(c)
	}

	coeffs := make([]float64, len(p.coeffs))
	for i := range coeffs {
		coeffs[i] = p.coeffs[i] * c
	}

	return of(coeffs)
}

// Add returns p + q.
func (p *Polynomial) Add(q *Polynomial) *Polynomial {

	if q == nil {
		panic(invalidArgument("Add", "addend is nil"))
	}

	if q.IsZero() {
		return p
	}

	if p.IsZero() {
		return q
	}

	return of(SumCoefficientArrays(p.coeffs, q.coeffs))
}

// AddScalar returns p + c.
func (p *Polynomial) AddScalar(c float64) *Polynomial {

	if c == 0 {
		return p
	}

	if p.IsZero() {
		return NewConstant(c)
	}

	coeffs := utils.SliceClone(p.coeffs)
	coeffs[0] += c

	return of(coeffs)
}

// Sub returns p - q.
func (p *Polynomial) Sub(q *Polynomial) *Polynomial {

	if q == nil {
		panic(invalidArgument("Sub", "subtrahend is nil"))
	}

	if q.IsZero() {
		return p
	}

	if p.IsZero() {
		return q.Neg()
	}

	coeffs := make([]float64, utils.Max(len(p.coeffs), len(q.coeffs)))
	copy(coeffs, p.coeffs)

	for i, c := range q.coeffs {
		coeffs[i] -= c
	}

	return of(coeffs)
}

// Neg returns -p.
func (p *Polynomial) Neg() *Polynomial {

	if p.IsZero() {
		return Zero
	}

	coeffs := make([]float64, len(p.coeffs))
	for i, c := range p.coeffs {
		coeffs[i] = -c
	}

	return of(coeffs)
}

// Pow returns p^n by repeated multiplication.
func (p *Polynomial) Pow(n int) *Polynomial {

	if n < 0 {
		panic(invalidArgument("Pow", "exponent must be non-negative but is %d", n))
	}

	if n == 0 {
		return Identity
	}

	value := p
	for i := 1; i < n; i++ {
		value = value.Mul(p)
	}

	return value
}

// Derivative returns dp/dx.
func (p *Polynomial) Derivative() *Polynomial {

	if p.Degree() <= 0 {
		return Zero
	}

	coeffs := make([]float64, len(p.coeffs)-1)
	for i := range coeffs {
		coeffs[i] = p.coeffs[i+1] * float64(i+1)
	}

	return of(coeffs)
}

// Integral returns the antiderivative of p with a zero constant of integration.
func (p *Polynomial) Integral() *Polynomial {

	if p.IsZero() {
		return Zero
	}

	coeffs := make([]float64, len(p.coeffs)+1)
	for i := 1; i < len(coeffs); i++ {
		coeffs[i] = p.coeffs[i-1] / float64(i)
	}

	return of(coeffs)
}

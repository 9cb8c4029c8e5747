// Package polynomial implements an immutable dense univariate polynomial
// with float64 coefficients.
//
// Coefficients are ordered by ascending power of the variable, index 0 being
// the constant term. The highest stored coefficient is never zero. Two shared
// instances, [Zero] and [Identity], are returned by every constructor for the
// corresponding coefficient sequences, which lets operations short-circuit on
// them. Equality is nonetheless defined on values, see [Polynomial.Equal].
//
// Invalid arguments (nil operands, negative exponents or degrees, non-positive
// increments) are programmer errors: the operation panics with an error
// wrapping [ErrInvalidArgument].
package polynomial

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/zeebo/blake3"

	"github.com/tuneinsight/realroots/utils"
	"github.com/tuneinsight/realroots/utils/buffer"
)

// ErrInvalidArgument is wrapped by the error values of the panics raised on invalid arguments.
var ErrInvalidArgument = errors.New("invalid argument")

// FingerprintSize is the size in bytes of [Polynomial.Fingerprint].
const FingerprintSize = 32

// Polynomial is an immutable polynomial sum coeffs[i] * x^i.
// Instances must be obtained from the constructors of this package.
type Polynomial struct {
	coeffs []float64
}

var (
	// Zero is the zero polynomial, with no coefficients and degree -1.
	Zero = &Polynomial{}

	// Identity is the constant polynomial 1.
	Identity = &Polynomial{coeffs: []float64{1}}
)

// New returns the polynomial with the given coefficients, ordered from the constant term upward.
// The input is copied and trailing zeros are removed.
func New(coeffs ...float64) *Polynomial {
	return of(utils.SliceClone(TrimCoefficients(coeffs)))
}

// NewConstant returns the constant polynomial c.
func NewConstant(c float64) *Polynomial {
	switch c {
	case 0:
		return Zero
	case 1:
		return Identity
	default:
		return &Polynomial{coeffs: []float64{c}}
	}
}

// of wraps coeffs without copying it: the caller must not retain coeffs.
func of(coeffs []float64) *Polynomial {

	coeffs = TrimCoefficients(coeffs)

	switch {
	case len(coeffs) == 0:
		return Zero
	case len(coeffs) == 1:
		return NewConstant(coeffs[0])
	default:
		return &Polynomial{coeffs: coeffs}
	}
}

// TrimCoefficients strips the trailing (highest degree) zero coefficients of coeffs.
// It returns coeffs itself if its last coefficient is non-zero, a reslice of coeffs
// if some zeros were stripped and nil if all the coefficients are zero.
func TrimCoefficients(coeffs []float64) []float64 {

	n := len(coeffs)

	if n == 0 || coeffs[n-1] != 0 {
		return coeffs
	}

	for n > 0 && coeffs[n-1] == 0 {
		n--
	}

	if n == 0 {
		return nil
	}

	return coeffs[:n]
}

// SumCoefficientArrays returns the term-wise sum of the given coefficient arrays.
// The result has the length of the longest array and is not trimmed.
func SumCoefficientArrays(arrays ...[]float64) []float64 {

	var length int
	for _, a := range arrays {
		length = utils.Max(length, len(a))
	}

	sum := make([]float64, length)

	for _, a := range arrays {
		for i, c := range a {
			sum[i] += c
		}
	}

	return sum
}

// Degree returns the degree of the polynomial, -1 for [Zero].
func (p *Polynomial) Degree() int {
	return len(p.coeffs) - 1
}

// Coefficients returns a copy of the coefficients, ordered from the constant term upward.
func (p *Polynomial) Coefficients() []float64 {
	return utils.SliceClone(p.coeffs)
}

// Coefficient returns the coefficient of x^i, 0 if i is outside [0, Degree()].
func (p *Polynomial) Coefficient(i int) float64 {
	if i < 0 || i >= len(p.coeffs) {
		return 0
	}
	return p.coeffs[i]
}

// Constant returns the constant term, 0 for [Zero].
func (p *Polynomial) Constant() float64 {
	return p.Coefficient(0)
}

// Leading returns the coefficient of the highest degree term, 0 for [Zero].
func (p *Polynomial) Leading() float64 {
	return p.Coefficient(p.Degree())
}

// IsZero returns true if p is the zero polynomial.
func (p *Polynomial) IsZero() bool {
	return len(p.coeffs) == 0
}

// IsIdentity returns true if p is the constant polynomial 1.
func (p *Polynomial) IsIdentity() bool {
	return len(p.coeffs) == 1 && p.coeffs[0] == 1
}

// Equal returns true if p and other have the same coefficients.
func (p *Polynomial) Equal(other *Polynomial) bool {

	if p == other {
		return true
	}

	if p == nil || other == nil {
		return false
	}

	return cmp.Equal(p.coeffs, other.coeffs, cmpopts.EquateEmpty())
}

// Fingerprint returns a blake3 digest of the coefficients.
// Equal polynomials have equal fingerprints.
func (p *Polynomial) Fingerprint() []byte {

	buf := buffer.NewBufferSize(p.BinarySize())

	if _, err := p.WriteTo(buf); err != nil {
		// unreachable: the buffer is sized to BinarySize
		panic(fmt.Errorf("cannot Fingerprint: %w", err))
	}

	hasher := blake3.New()
	hasher.Write(buf.Bytes())

	return hasher.Sum(nil)[:FingerprintSize]
}

// String returns a human readable form of p in descending powers, e.g. "x^3 - 7x + 7".
func (p *Polynomial) String() string {

	if p.IsZero() {
		return "0"
	}

	var sb strings.Builder

	for i := p.Degree(); i >= 0; i-- {

		c := p.coeffs[i]

		if c == 0 {
			continue
		}

		if sb.Len() == 0 {
			if c < 0 {
				sb.WriteString("-")
			}
		} else if c < 0 {
			sb.WriteString(" - ")
		} else {
			sb.WriteString(" + ")
		}

		abs := utils.Abs(c)

		if abs != 1 || i == 0 {
			sb.WriteString(formatMagnitude(abs))
		}

		switch i {
		case 0:
		case 1:
			sb.WriteString("x")
		default:
			sb.WriteString("x^")
			sb.WriteString(strconv.Itoa(i))
		}
	}

	return sb.String()
}

// formatMagnitude formats a non-negative coefficient, the sign being written separately.
func formatMagnitude(x float64) string {
	if math.IsInf(x, 0) {
		return "Inf"
	}
	return strconv.FormatFloat(x, 'g', -1, 64)
}

func invalidArgument(op, format string, args ...interface{}) error {
	return fmt.Errorf("cannot %s: %s: %w", op, fmt.Sprintf(format, args...), ErrInvalidArgument)
}

package polynomial

import (
	"fmt"
	"testing"
)

func BenchmarkPolynomial(b *testing.B) {
	b.Run("Mul", benchMul)
	b.Run("Compose", benchCompose)
	b.Run("VincentReduction", benchVincentReduction)
	b.Run("Marshalling", benchMarshalling)
}

// benchPolynomial returns a polynomial of the given degree with non-zero coefficients.
func benchPolynomial(degree int) *Polynomial {
	coeffs := make([]float64, degree+1)
	for i := range coeffs {
		coeffs[i] = float64(i%7) - 3.5
	}
	return New(coeffs...)
}

var benchDegrees = []int{8, 32, 128}

func benchMul(b *testing.B) {
	for _, d := range benchDegrees {
		p := benchPolynomial(d)
		b.Run(fmt.Sprintf("Degree=%d", d), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				p.Mul(p)
			}
		})
	}
}

func benchCompose(b *testing.B) {
	shift := New(1, 1)
	for _, d := range benchDegrees {
		p := benchPolynomial(d)
		b.Run(fmt.Sprintf("Degree=%d", d), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				p.Compose(shift)
			}
		})
	}
}

func benchVincentReduction(b *testing.B) {
	for _, d := range benchDegrees {
		p := benchPolynomial(d)
		b.Run(fmt.Sprintf("Degree=%d", d), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				p.VincentReduction()
			}
		})
	}
}

func benchMarshalling(b *testing.B) {
	for _, d := range benchDegrees {
		p := benchPolynomial(d)
		data, err := p.MarshalBinary()
		if err != nil {
			b.Fatal(err)
		}
		b.Run(fmt.Sprintf("Marshal/Degree=%d", d), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := p.MarshalBinary(); err != nil {
					b.Fatal(err)
				}
			}
		})
		b.Run(fmt.Sprintf("Unmarshal/Degree=%d", d), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := UnmarshalBinary(data); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

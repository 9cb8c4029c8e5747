package polynomial

import (
	"bufio"
	"fmt"
	"io"

	"github.com/tuneinsight/realroots/utils/buffer"
)

// MaxSerializedDegree bounds the degree accepted by the decoders.
const MaxSerializedDegree = 1 << 20

// BinarySize returns the serialized size of p in bytes.
func (p *Polynomial) BinarySize() int {
	return 8 + 8*len(p.coeffs)
}

// WriteTo writes p on w: the number of coefficients as a little-endian
// uint64 followed by the coefficients as little-endian IEEE-754 values.
//
// Unless w implements [buffer.Writer], it is wrapped into a bufio.Writer.
func (p *Polynomial) WriteTo(w io.Writer) (n int64, err error) {

	switch w := w.(type) {
	case buffer.Writer:

		var inc int64
		if inc, err = buffer.WriteUint64(w, uint64(len(p.coeffs))); err != nil {
			return inc, fmt.Errorf("buffer.WriteUint64: %w", err)
		}

		n += inc

		if inc, err = buffer.WriteFloat64Slice(w, p.coeffs); err != nil {
			return n + inc, fmt.Errorf("buffer.WriteFloat64Slice: %w", err)
		}

		n += inc

		return n, w.Flush()

	default:
		return p.WriteTo(bufio.NewWriter(w))
	}
}

// MarshalBinary encodes p on a slice of bytes.
func (p *Polynomial) MarshalBinary() (data []byte, err error) {
	buf := buffer.NewBufferSize(p.BinarySize())
	_, err = p.WriteTo(buf)
	return buf.Bytes(), err
}

// ReadFrom decodes a polynomial written by [Polynomial.WriteTo] from r.
// Polynomials are immutable, hence the decoder is a function rather than
// an io.ReaderFrom method. The result is canonical: trailing zeros are trimmed
// and [Zero] or [Identity] are returned for the matching sequences.
//
// Unless r implements [buffer.Reader], it is wrapped into a bufio.Reader.
func ReadFrom(r io.Reader) (p *Polynomial, n int64, err error) {

	switch r := r.(type) {
	case buffer.Reader:

		var size uint64
		var inc int

		if inc, err = buffer.ReadUint64(r, &size); err != nil {
			return nil, int64(inc), fmt.Errorf("buffer.ReadUint64: %w", err)
		}

		n += int64(inc)

		if size > MaxSerializedDegree+1 {
			return nil, n, fmt.Errorf("cannot ReadFrom: %d coefficients exceed the maximum of %d", size, MaxSerializedDegree+1)
		}

		coeffs := make([]float64, size)

		if inc, err = buffer.ReadFloat64Slice(r, coeffs); err != nil {
			return nil, n + int64(inc), fmt.Errorf("buffer.ReadFloat64Slice: %w", err)
		}

		n += int64(inc)

		return of(coeffs), n, nil

	default:
		return ReadFrom(bufio.NewReader(r))
	}
}

// UnmarshalBinary decodes a polynomial encoded by [Polynomial.MarshalBinary].
func UnmarshalBinary(data []byte) (p *Polynomial, err error) {
	p, _, err = ReadFrom(buffer.NewBuffer(data))
	return
}

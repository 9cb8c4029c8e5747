package buffer

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// ReadUint64 reads a single uint64 from r into c.
func ReadUint64(r Reader, c *uint64) (n int, err error) {

	if c == nil {
		return 0, fmt.Errorf("cannot ReadUint64: c is nil")
	}

	var bb = [8]byte{}

	if n, err = io.ReadFull(r, bb[:]); err != nil {
		return
	}

	*c = binary.LittleEndian.Uint64(bb[:])

	return n, nil
}

// ReadFloat64Slice fills c with float64 values read from r.
func ReadFloat64Slice(r Reader, c []float64) (n int, err error) {

	for len(c) > 0 {

		size := r.Size()
		if len(c)<<3 < size {
			size = len(c) << 3
		}

		var slice []byte
		if slice, err = r.Peek(size); err != nil {
			return
		}

		buffered := len(slice) >> 3

		if buffered == 0 {
			return n, fmt.Errorf("cannot ReadFloat64Slice: %d values left to read but reader is exhausted", len(c))
		}

		for i, j := 0, 0; i < buffered; i, j = i+1, j+8 {
			c[i] = math.Float64frombits(binary.LittleEndian.Uint64(slice[j:]))
		}

		var inc int
		inc, err = r.Discard(buffered << 3)
		n += inc

		if err != nil {
			return
		}

		c = c[buffered:]
	}

	return
}

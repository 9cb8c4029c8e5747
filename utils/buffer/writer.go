package buffer

import (
	"encoding/binary"
	"fmt"
	"math"
)

// WriteUint64 writes c into w.
func WriteUint64(w Writer, c uint64) (n int64, err error) {

	if w.Available() < 8 {
		if err = w.Flush(); err != nil {
			return
		}

		if w.Available() < 8 {
			return 0, fmt.Errorf("cannot WriteUint64: available buffer is smaller than 8 bytes even after flush")
		}
	}

	buf := w.AvailableBuffer()[:8]

	binary.LittleEndian.PutUint64(buf, c)

	nint, err := w.Write(buf)

	return int64(nint), err
}

// WriteFloat64Slice writes the IEEE-754 bit patterns of c into w,
// flushing w whenever its internal buffer is full.
func WriteFloat64Slice(w Writer, c []float64) (n int64, err error) {

	for len(c) > 0 {

		available := w.Available() >> 3

		if available == 0 {
			if err = w.Flush(); err != nil {
				return
			}

			if available = w.Available() >> 3; available == 0 {
				return n, fmt.Errorf("cannot WriteFloat64Slice: available buffer is smaller than 8 bytes even after flush")
			}
		}

		chunk := len(c)
		if chunk > available {
			chunk = available
		}

		buf := w.AvailableBuffer()[:chunk<<3]
		for i := 0; i < chunk; i++ {
			binary.LittleEndian.PutUint64(buf[i<<3:], math.Float64bits(c[i]))
		}

		var inc int
		inc, err = w.Write(buf)
		n += int64(inc)

		if err != nil {
			return
		}

		c = c[chunk:]
	}

	return
}

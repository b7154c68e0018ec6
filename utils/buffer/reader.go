package buffer

import (
	"encoding/binary"
	"fmt"
	"math"
)

// ReadUint64 reads a uint64 from r and stores the result into c.
func ReadUint64(r Reader, c *uint64) (n int, err error) {

	if c == nil {
		return 0, fmt.Errorf("cannot ReadUint64: c is nil")
	}

	var bb = [8]byte{}

	if n, err = r.Read(bb[:]); err != nil {
		return
	}

	*c = binary.LittleEndian.Uint64(bb[:])

	return n, nil
}

// ReadFloat64Slice reads a slice of IEEE 754 float64 from r and stores the result into c.
func ReadFloat64Slice(r Reader, c []float64) (n int, err error) {
	return readSlice64(r, c, math.Float64frombits)
}

func readSlice64[T any](r Reader, c []T, from func(uint64) T) (n int, err error) {

	// c is empty, return
	if len(c) == 0 {
		return
	}

	var slice []byte

	// Avoid EOF
	size := r.Size()
	if len(c)<<3 < size {
		size = len(c) << 3
	}

	if slice, err = r.Peek(size); err != nil {
		return
	}

	buffered := len(slice) >> 3

	if buffered == 0 {
		return 0, fmt.Errorf("cannot readSlice64: buffered data is smaller than 8 bytes")
	}

	// If the slice to write on is equal or smaller than the amount peaked
	if N := len(c); N <= buffered {

		for i, j := 0, 0; i < N; i, j = i+1, j+8 {
			c[i] = from(binary.LittleEndian.Uint64(slice[j:]))
		}

		return r.Discard(N << 3) // Discards what was read
	}

	// Decodes the maximum
	for i, j := 0, 0; i < buffered; i, j = i+1, j+8 {
		c[i] = from(binary.LittleEndian.Uint64(slice[j:]))
	}

	// Discard what was decoded
	var inc int
	if inc, err = r.Discard(buffered << 3); err != nil {
		return n + inc, err
	}

	n += inc

	// Recurses on the remaining slice to fill
	if inc, err = readSlice64(r, c[buffered:], from); err != nil {
		return n + inc, err
	}

	return n + inc, nil
}

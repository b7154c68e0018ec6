// Package sampling implements sampling of bytes, integers and floats
// from a PRNG.
package sampling

import (
	"encoding/binary"
	"io"
)

// RandUint64 return a random value between 0 and 0xFFFFFFFFFFFFFFFF
// drawn from prng.
func RandUint64(prng io.Reader) uint64 {
	b := []byte{0, 0, 0, 0, 0, 0, 0, 0}
	if _, err := prng.Read(b); err != nil {
		panic(err)
	}
	return binary.LittleEndian.Uint64(b)
}

// RandFloat64 returns a random float in [min, max) drawn from prng.
func RandFloat64(prng io.Reader, min, max float64) float64 {
	// 53 random bits mapped to [0, 1)
	f := float64(RandUint64(prng)>>11) / (1 << 53)
	return min + f*(max-min)
}

// RandInt returns a random integer in [min, max] drawn from prng.
func RandInt(prng io.Reader, min, max int) int {
	if max < min {
		panic("invalid range: max < min")
	}
	n := uint64(max-min) + 1
	return min + int(RandUint64(prng)%n)
}

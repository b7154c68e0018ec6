package polynomial

import (
	"bufio"
	"fmt"
	"io"

	"github.com/tuneinsight/polyan/utils/buffer"
	"github.com/zeebo/blake3"
)

// MaxSerializedCoeffs is the maximum number of coefficients accepted when
// decoding a polynomial.
const MaxSerializedCoeffs = 1 << 20

// BinarySize returns the serialized size of the polynomial in bytes.
func (p *Polynomial) BinarySize() int {
	return 8 + 8*len(p.coeffs)
}

// WriteTo writes the polynomial on an io.Writer: the number of coefficients
// as a uint64 followed by the coefficients in IEEE 754 binary form.
// It implements the io.WriterTo interface, and will write exactly
// p.BinarySize() bytes on w.
//
// Unless w implements the buffer.Writer interface (see utils/buffer/writer.go),
// it will be wrapped into a bufio.Writer.
func (p *Polynomial) WriteTo(w io.Writer) (n int64, err error) {
	switch w := w.(type) {
	case buffer.Writer:

		var inc int64
		if inc, err = buffer.WriteUint64(w, uint64(len(p.coeffs))); err != nil {
			return n + inc, err
		}

		n += inc

		if inc, err = buffer.WriteFloat64Slice(w, p.coeffs); err != nil {
			return n + inc, err
		}

		n += inc

		return n, w.Flush()

	default:
		return p.WriteTo(bufio.NewWriter(w))
	}
}

// ReadFrom reads a polynomial written by WriteTo from an io.Reader and
// stores it in p. The decoded coefficients are brought back to normal form.
// It implements the io.ReaderFrom interface.
//
// Unless r implements the buffer.Reader interface (see utils/buffer/reader.go),
// it will be wrapped into a bufio.Reader.
func (p *Polynomial) ReadFrom(r io.Reader) (n int64, err error) {
	switch r := r.(type) {
	case buffer.Reader:

		var size uint64
		var inc int

		if inc, err = buffer.ReadUint64(r, &size); err != nil {
			return int64(inc), fmt.Errorf("cannot ReadFrom: size: %w", err)
		}

		n += int64(inc)

		if size == 0 || size > MaxSerializedCoeffs {
			return n, fmt.Errorf("cannot ReadFrom: invalid number of coefficients %d", size)
		}

		coeffs := make([]float64, size)

		if inc, err = buffer.ReadFloat64Slice(r, coeffs); err != nil {
			return n + int64(inc), fmt.Errorf("cannot ReadFrom: coefficients: %w", err)
		}

		n += int64(inc)

		*p = *newPolynomial(coeffs)

		return n, nil

	default:
		return p.ReadFrom(bufio.NewReader(r))
	}
}

// MarshalBinary encodes the polynomial on a slice of bytes.
func (p *Polynomial) MarshalBinary() (data []byte, err error) {
	buf := buffer.NewBufferSize(p.BinarySize())
	_, err = p.WriteTo(buf)
	return buf.Bytes(), err
}

// UnmarshalBinary decodes a slice of bytes generated by MarshalBinary
// on the polynomial.
func (p *Polynomial) UnmarshalBinary(data []byte) (err error) {
	_, err = p.ReadFrom(buffer.NewBuffer(data))
	return
}

// Fingerprint returns the blake3 digest of the binary form of the polynomial.
// Two polynomials have the same fingerprint if and only if they are Equal,
// up to the collision resistance of blake3 and the sign of zero coefficients.
func (p *Polynomial) Fingerprint() (digest [32]byte) {
	data, err := p.MarshalBinary()
	if err != nil {
		// the buffer is sized with BinarySize
		panic(err)
	}
	return blake3.Sum256(data)
}

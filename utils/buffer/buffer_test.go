package buffer

import (
	"bufio"
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuffer(t *testing.T) {

	values := []float64{0, -1.5, math.Pi, 1e-300, math.Inf(-1)}

	t.Run("Buffer", func(t *testing.T) {

		buf := NewBufferSize(8 + 8*len(values))

		_, err := WriteUint64(buf, uint64(len(values)))
		require.NoError(t, err)
		n, err := WriteFloat64Slice(buf, values)
		require.NoError(t, err)
		require.Equal(t, int64(8*len(values)), n)

		var size uint64
		_, err = ReadUint64(buf, &size)
		require.NoError(t, err)
		require.Equal(t, uint64(len(values)), size)

		decoded := make([]float64, size)
		_, err = ReadFloat64Slice(buf, decoded)
		require.NoError(t, err)
		require.Equal(t, values, decoded)

		_, err = WriteUint64(buf, 1)
		require.Error(t, err)
	})

	t.Run("Bufio", func(t *testing.T) {

		// Buffers smaller than the payload force flushes and partial peeks.
		u := make([]float64, 64)
		for i := range u {
			u[i] = float64(i*i) / 3
		}

		var b bytes.Buffer
		w := bufio.NewWriterSize(&b, 16)
		_, err := WriteFloat64Slice(w, u)
		require.NoError(t, err)
		require.NoError(t, w.Flush())

		r := bufio.NewReaderSize(bytes.NewReader(b.Bytes()), 16)
		decoded := make([]float64, len(u))
		_, err = ReadFloat64Slice(r, decoded)
		require.NoError(t, err)
		require.Equal(t, u, decoded)
	})

	t.Run("Nil", func(t *testing.T) {
		_, err := ReadUint64(NewBufferSize(8), nil)
		require.Error(t, err)
	})
}

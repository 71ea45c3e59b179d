package solinas64

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadWriteU32U64LE(t *testing.T) {
	buf := make([]byte, 16)
	WriteU32LE(buf, 0x04030201)
	require.Equal(t, []byte{1, 2, 3, 4}, buf[:4])
	require.Equal(t, uint32(0x04030201), ReadU32LE(buf))

	WriteU64LE(buf, 0x0807060504030201)
	require.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8}, buf[:8])
	require.Equal(t, uint64(0x0807060504030201), ReadU64LE(buf))
}

func TestReadBytesLEZero(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	require.Equal(t, uint64(0), ReadBytesLE(data, 0))
	require.Equal(t, uint64(0), ReadBytesLE(data, 9))
}

func TestReadBytesLEMatchesU64Mask(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	w := ReadU64LE(data)
	for i := 1; i <= 8; i++ {
		v := ReadBytesLE(data, i)
		mask := uint64(1)<<(8*i) - 1
		if i == 8 {
			mask = ^uint64(0)
		}
		require.Equal(t, w&mask, v, "i=%d", i)
	}
}

func TestWriteBytesLEPartialWidths(t *testing.T) {
	value := uint64(0x0807060504030201)

	for n := 1; n <= 8; n++ {
		buf := make([]byte, 10)
		for i := range buf {
			buf[i] = 0xAA
		}
		WriteBytesLE(buf, n, value)

		for i := 0; i < n; i++ {
			want := byte(value >> (8 * i))
			require.Equal(t, want, buf[i], "n=%d byte=%d", n, i)
		}
		for i := n; i < len(buf); i++ {
			require.Equal(t, byte(0xAA), buf[i], "n=%d byte=%d should be untouched", n, i)
		}
	}
}

func TestIsU64Ambiguous(t *testing.T) {
	require.True(t, IsU64Ambiguous(ambiguityMask))
	require.True(t, IsU64Ambiguous(ambiguityMask|1))
	require.False(t, IsU64Ambiguous(0))
	require.False(t, IsU64Ambiguous(ambiguityMask>>1))
}

func TestWriteThenReadBytesLERoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for n := 0; n <= 8; n++ {
		for i := 0; i < 1000; i++ {
			value := rng.Uint64()
			if n < 8 {
				value &= uint64(1)<<(8*n) - 1
			}

			buf := make([]byte, 8)
			WriteBytesLE(buf, n, value)
			got := ReadBytesLE(buf, n)
			require.Equal(t, value, got, "n=%d", n)
		}
	}
}

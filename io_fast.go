//go:build amd64 || arm64

package solinas64

import "encoding/binary"

// ReadU32LE reads 4 bytes in little-endian byte order. On amd64/arm64 this
// is a plain unaligned load; both architectures guarantee atomicity and
// correctness for unaligned little-endian accesses.
func ReadU32LE(data []byte) uint32 {
	return binary.LittleEndian.Uint32(data)
}

// ReadU64LE reads 8 bytes in little-endian byte order.
func ReadU64LE(data []byte) uint64 {
	return binary.LittleEndian.Uint64(data)
}

// WriteU32LE writes 4 bytes in little-endian byte order.
func WriteU32LE(data []byte, value uint32) {
	binary.LittleEndian.PutUint32(data, value)
}

// WriteU64LE writes 8 bytes in little-endian byte order.
func WriteU64LE(data []byte, value uint64) {
	binary.LittleEndian.PutUint64(data, value)
}

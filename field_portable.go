//go:build !amd64 && !arm64

package solinas64

// mul128 returns the 128-bit product x*y as (hi, lo), using the portable
// 32x32->64 schoolbook emulation: on architectures Go does not lower
// bits.Mul64 to a single hardware instruction on, that emulation is the
// real definition rather than a dead fallback.
func mul128(x, y uint64) (hi, lo uint64) {
	return emulate64x64to128(x, y)
}

//go:build amd64 || arm64

package solinas64

import "math/bits"

// mul128 returns the 128-bit product x*y as (hi, lo), using the host's
// native 64x64->128 multiply instruction: bits.Mul64 compiles to one on
// amd64/arm64.
func mul128(x, y uint64) (hi, lo uint64) {
	return bits.Mul64(x, y)
}

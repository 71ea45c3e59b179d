package solinas64

// Prime is p = 2^64 - 2^32 + 1, a Solinas prime chosen so that reduction
// modulo p collapses to a handful of 32-bit-shift-and-add corrections.
const Prime uint64 = (1<<64 - 1) - primeSubC + 1

// primeSubC is c = 2^32 - 1, so that Prime = -c mod 2^64 and, by the same
// identity, 2^64 = c (mod p).
const primeSubC uint64 = (uint64(1) << 32) - 1

// adc computes x += y and reports whether the addition carried out of the
// 64-bit word.
func adc(x *uint64, y uint64) bool {
	r := *x + y
	carried := r < *x
	*x = r
	return carried
}

// sbb computes x -= y and reports whether the subtraction borrowed.
func sbb(x *uint64, y uint64) bool {
	x0 := *x
	*x = x0 - y
	return x0 < y
}

// Add returns x + y (mod p). Both inputs and the result are partially
// reduced: callers do not need to Finalize before calling Add, and the
// result may itself need Finalize before it is compared for equality with
// a canonical field element.
func Add(x, y uint64) uint64 {
	if adc(&x, y) {
		if adc(&x, primeSubC) {
			adc(&x, primeSubC)
		}
	}
	return x
}

// Subtract returns x - y (mod p). Dual of Add using borrow-out and -c
// corrections.
func Subtract(x, y uint64) uint64 {
	if sbb(&x, y) {
		if sbb(&x, primeSubC) {
			sbb(&x, primeSubC)
		}
	}
	return x
}

// Negate returns -x (mod p) for x in [0, p]. Negate(0) is 0, and for every
// other x, Add(x, Negate(x)) is congruent to 0 (mod p).
func Negate(x uint64) uint64 {
	if x == 0 {
		return 0
	}
	return Prime - x
}

// emulate64x64to128 computes the 128-bit product of x and y using only
// 32x32->64 multiplies, for platforms where the Go compiler does not lower
// bits.Mul64 to a single hardware instruction.
//
// Proof that the middle accumulator cannot overflow: the largest possible
// sum is (2^32-1)*(2^32-1) [the largest p10] plus two more terms of at most
// 2^32-1 each [the high 32 bits of p00 and the low 32 bits of p01], which
// totals exactly 2^64-1 and therefore never carries out of 64 bits
// regardless of x and y.
func emulate64x64to128(x, y uint64) (hi, lo uint64) {
	x0, x1 := uint32(x), uint32(x>>32)
	y0, y1 := uint32(y), uint32(y>>32)

	p11 := uint64(x1) * uint64(y1)
	p01 := uint64(x0) * uint64(y1)
	p10 := uint64(x1) * uint64(y0)
	p00 := uint64(x0) * uint64(y0)

	middle := p10 + uint64(uint32(p00>>32)) + uint64(uint32(p01))

	hi = p11 + uint64(uint32(middle>>32)) + uint64(uint32(p01>>32))
	lo = (middle << 32) | uint64(uint32(p00))
	return hi, lo
}

// Multiply returns x * y (mod p). Inputs need only be partially reduced;
// the result is partially reduced and may need Finalize before it is
// compared for equality with a canonical field element.
func Multiply(x, y uint64) uint64 {
	hi, lo := mul128(x, y)

	// 2^64 = c (mod p), so a 128-bit product hi:lo reduces to lo + hi*c.
	// hi*c is itself computed via the a2/a3 split below (hi = a3*2^32 + a2,
	// and since 2^96 = -1 (mod p), hi*c = a2*c - a3 (mod p)) instead of a
	// full 64-bit multiply by c.
	a2 := uint32(hi)
	a3 := uint32(hi >> 32)

	t := (uint64(a2) << 32) - uint64(a2)

	if adc(&lo, t) {
		adc(&lo, primeSubC)
	}
	if sbb(&lo, uint64(a3)) {
		sbb(&lo, primeSubC)
	}
	return lo
}

// PartialReduce folds x down by repeated subtraction of p. Any uint64 is
// already below 2p (p exceeds 2^63), so a single conditional subtraction
// always suffices for arbitrary input; the loop's extra headroom exists so
// PartialReduce stays correct even if a future caller feeds it the sum of
// several partially-reduced values at once. This replaces a bit-masking
// reduction scheme that cannot exist in general: two values below p that
// are congruent mod p must be numerically identical, so truncating to a
// fixed bit width and patching with c has no valid target once x's true
// residue needs more than 62 bits to write down.
func PartialReduce(x uint64) uint64 {
	for i := 0; i < 4 && x >= Prime; i++ {
		x -= Prime
	}
	return x
}

// Finalize reduces a partially reduced x to the unique canonical
// representative in [0, p).
func Finalize(x uint64) uint64 {
	result := PartialReduce(x)
	if result >= Prime {
		result -= Prime
	}
	return result
}

// Inverse returns the unique y in (0, p) such that x*y = 1 (mod p), or 0 if
// x is congruent to 0 (mod p) and therefore has no inverse. x may be any
// 64-bit value.
//
// This is a variable-time extended Euclidean algorithm specialized for p,
// unrolled per Knuth's Algorithm X. It must never be used on secret inputs:
// its running time depends on the extended-GCD trajectory of x.
func Inverse(u uint64) uint64 {
	u3 := u % Prime
	if u3 == 0 {
		return 0
	}

	u1 := uint64(1)

	qt := Prime / u3
	v3 := Prime % u3
	v1 := qt

	for {
		if v3 == 0 {
			if u3 == 1 {
				return u1
			}
			return 0
		}

		qt = u3 / v3
		u3 %= v3
		u1 += qt * v1

		if u3 == 0 {
			if v3 == 1 {
				return Prime - v1
			}
			return 0
		}

		qt = v3 / u3
		v3 %= u3
		v1 += qt * u1
	}
}

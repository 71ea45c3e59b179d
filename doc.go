// Package solinas64 implements finite-field arithmetic modulo the Solinas
// prime p = 2^64 - 2^32 + 1, a pseudo-random generator and hash used to
// derive field coefficients, and two byte<->field-element packing codecs.
//
// The field arithmetic in this package is not constant-time: Inverse in
// particular runs a variable number of extended-GCD steps depending on its
// input, and must never be used on secret values. Random is a
// non-cryptographic, non-thread-safe xoshiro256+ generator; each goroutine
// that needs random field elements should own its own Random instance.
//
// All functions in this package are pure and allocate nothing: buffers are
// always supplied by the caller, sized using the published GetWorkspaceBytes
// and GetMaxOutputBytes helpers.
package solinas64

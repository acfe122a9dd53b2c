package rsa

import "math/bits"

// mulmod returns (a*b) mod n for n > 0. The product is formed as a 128-bit
// hi/lo pair and reduced in a single division, so operands up to 2^64-1
// stay exact.
func mulmod(a, b, n uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return bits.Rem64(hi, lo, n)
}

// powmod returns base^exp mod n for n > 0 by square-and-multiply,
// consuming the exponent one bit at a time.
func powmod(base, exp, n uint64) uint64 {
	result := 1 % n
	base %= n
	for ; exp > 0; exp >>= 1 {
		if exp&1 == 1 {
			result = mulmod(result, base, n)
		}
		base = mulmod(base, base, n)
	}
	return result
}

// MulMod returns (a*b) mod n without overflowing the intermediate product.
// It fails with ErrZeroModulus when n is zero; every nonzero modulus is
// accepted, including 1 (for which every result is 0).
func MulMod(a, b, n uint64) (uint64, error) {
	if n == 0 {
		return 0, ErrZeroModulus
	}
	return mulmod(a, b, n), nil
}

// PowMod returns base^exp mod n in O(log exp) modular multiplications.
// An exponent of zero yields 1 mod n. It fails with ErrZeroModulus when n
// is zero.
func PowMod(base, exp, n uint64) (uint64, error) {
	if n == 0 {
		return 0, ErrZeroModulus
	}
	return powmod(base, exp, n), nil
}

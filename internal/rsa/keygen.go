package rsa

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
)

// Public exponent candidates, tried largest first. 65537 is the usual
// choice; the smaller Fermat-style values cover the rare totients it
// shares a factor with.
var exponentCandidates = []uint64{65537, 257, 17, 5, 3}

// millerRabinWitnesses is a base set proven deterministic for every
// 64-bit integer.
var millerRabinWitnesses = []uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37}

// GenerateKeyPair produces a key pair whose modulus is bits or bits-1 bits
// wide. bits must lie in [MinKeyBits, MaxKeyBits]: below the minimum a
// block cannot carry a payload byte, above the maximum the totient leaves
// int64 range in the modular inverse.
//
// The moduli are demonstration-grade and trivially factorable. Generation
// draws primes from crypto/rand and validates them with the same modular
// arithmetic the engine encrypts with.
func GenerateKeyPair(bits int) (PublicKey, PrivateKey, error) {
	if bits < MinKeyBits || bits > MaxKeyBits {
		return PublicKey{}, PrivateKey{}, fmt.Errorf("%w: %d bits, want %d to %d", ErrKeySize, bits, MinKeyBits, MaxKeyBits)
	}
	for {
		p, err := randomPrime(bits / 2)
		if err != nil {
			return PublicKey{}, PrivateKey{}, err
		}
		q, err := randomPrime(bits - bits/2)
		if err != nil {
			return PublicKey{}, PrivateKey{}, err
		}
		if p == q {
			continue
		}
		n := p * q
		phi := (p - 1) * (q - 1)
		for _, e := range exponentCandidates {
			if gcd(e, phi) != 1 {
				continue
			}
			d, ok := modInverse(e, phi)
			if !ok {
				continue
			}
			return PublicKey{N: n, E: e}, PrivateKey{N: n, D: d}, nil
		}
		// No candidate exponent fit this totient; draw fresh primes.
	}
}

// randomPrime returns a prime of exactly b bits by rejection sampling:
// draw a candidate from crypto/rand, force its width and oddness, test.
func randomPrime(b int) (uint64, error) {
	for {
		var raw [8]byte
		if _, err := rand.Read(raw[:]); err != nil {
			return 0, fmt.Errorf("read random: %w", err)
		}
		candidate := binary.BigEndian.Uint64(raw[:])
		candidate &= 1<<b - 1
		candidate |= 1<<(b-1) | 1
		if isPrime(candidate) {
			return candidate, nil
		}
	}
}

// isPrime is a deterministic Miller-Rabin test over the fixed 64-bit
// witness set.
func isPrime(n uint64) bool {
	switch {
	case n < 2:
		return false
	case n%2 == 0:
		return n == 2
	}
	// Factor n-1 as d * 2^s with d odd.
	d, s := n-1, 0
	for d%2 == 0 {
		d /= 2
		s++
	}
	for _, a := range millerRabinWitnesses {
		if a%n == 0 {
			continue
		}
		x := powmod(a, d, n)
		if x == 1 || x == n-1 {
			continue
		}
		composite := true
		for r := 1; r < s; r++ {
			x = mulmod(x, x, n)
			if x == n-1 {
				composite = false
				break
			}
		}
		if composite {
			return false
		}
	}
	return true
}

func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// modInverse returns x with (a*x) mod m == 1 via the extended Euclidean
// algorithm, and ok=false when a and m are not coprime. Intermediate
// coefficients stay within int64 for m below 2^62, which MaxKeyBits
// guarantees for every totient this package produces.
func modInverse(a, m uint64) (uint64, bool) {
	if m == 0 {
		return 0, false
	}
	r0, r1 := int64(m), int64(a%m)
	t0, t1 := int64(0), int64(1)
	for r1 != 0 {
		q := r0 / r1
		r0, r1 = r1, r0-q*r1
		t0, t1 = t1, t0-q*t1
	}
	if r0 != 1 {
		return 0, false
	}
	if t0 < 0 {
		t0 += int64(m)
	}
	return uint64(t0), true
}

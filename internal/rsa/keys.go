package rsa

// PublicKey is the sealing half of a key pair. Keys are plain values,
// immutable once constructed; operations take them by value and never
// modify them.
type PublicKey struct {
	// N is the modulus, the product of the two generation-time primes.
	N uint64
	// E is the public exponent.
	E uint64
}

// PrivateKey is the opening half of a key pair. D is the inverse of the
// matching public exponent modulo the totient of N.
type PrivateKey struct {
	N uint64
	D uint64
}

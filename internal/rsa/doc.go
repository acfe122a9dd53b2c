// Package rsa implements the textbook-RSA engine at the heart of sealbox.
// It is built from scratch on fixed-width uint64 arithmetic: modular
// multiplication and exponentiation, a reversible padding codec, PEM-style
// key persistence, and a self-delimiting on-disk ciphertext format.
//
// # Arithmetic
//
// Every value in the system (modulus, exponents, padded blocks, encrypted
// blocks) fits in a uint64. [MulMod] forms the 128-bit product with
// math/bits and reduces it in one step, so operands near 2^64 never
// overflow. [PowMod] is classic square-and-multiply on top of it, costing
// one or two modular multiplications per exponent bit.
//
// # Padding
//
// A payload is split into chunks and each chunk is embedded into one block
// of exactly blockCapacity(n) bytes:
//
//	0x02 | 0xFF ... 0xFF | 0x00 | chunk
//
// The pad run is at least one byte long and absorbs whatever capacity the
// chunk does not use. Decoding scans the pad run to the separator, so it
// recovers exactly the original chunk regardless of its length or content.
// A block whose structure does not match decodes to [ErrMalformedPadding],
// which is what a wrong key or a tampered ciphertext produces.
//
// Unlike standardized RSA padding the pad run is fixed, not random: equal
// chunks under equal keys encrypt to equal blocks. The engine demonstrates
// mechanism, not semantic security.
//
// # Keys
//
// [PublicKey] and [PrivateKey] are plain immutable value types. They
// persist as PEM blocks whose payload is the modulus and exponent as two
// big-endian uint64 values; [WritePrivateKeyEncrypted] additionally wraps
// the payload under a passphrase with scrypt and AES-GCM. [GenerateKeyPair]
// produces demonstration-grade pairs from random primes checked with a
// deterministic Miller-Rabin test over the same modular arithmetic the
// engine encrypts with.
//
// # Security Model
//
// There is none. Moduli fit in 64 bits and are trivially factorable; the
// padding is deterministic. The package exists to show the moving parts of
// RSA with real key material kept small enough to inspect. Do not protect
// data with it.
package rsa

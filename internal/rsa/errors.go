package rsa

import (
	"errors"
	"fmt"
)

var (
	// ErrZeroModulus is returned when a modular operation or a key with a
	// zero modulus is used. No arithmetic is defined modulo zero.
	ErrZeroModulus = errors.New("modulus is zero")

	// ErrPayloadTooLarge is returned when a chunk does not fit one padded
	// block, or when the modulus is too small to hold the padding
	// structure at all.
	ErrPayloadTooLarge = errors.New("payload too large for modulus")

	// ErrMalformedPadding is returned when a decrypted block lacks the
	// expected padding structure. It means the wrong key was used or the
	// ciphertext was corrupted.
	ErrMalformedPadding = errors.New("malformed padding")

	// ErrKeyNotFound is returned when a key file does not exist.
	ErrKeyNotFound = errors.New("key file not found")

	// ErrKeyFormat is returned when a key file exists but cannot be parsed
	// as a sealbox key of the expected type.
	ErrKeyFormat = errors.New("malformed key file")

	// ErrPassphraseRequired is returned when an encrypted private key file
	// is read without a passphrase.
	ErrPassphraseRequired = errors.New("private key file is encrypted, passphrase required")

	// ErrWrongPassphrase is returned when an encrypted private key file
	// does not unwrap under the supplied passphrase.
	ErrWrongPassphrase = errors.New("wrong passphrase for private key file")

	// ErrCiphertextNotFound is returned when a ciphertext file does not exist.
	ErrCiphertextNotFound = errors.New("ciphertext file not found")

	// ErrCiphertextFormat is returned when a ciphertext file exists but its
	// magic, declared block count, or length disagree with its contents.
	ErrCiphertextFormat = errors.New("malformed ciphertext file")

	// ErrKeySize is returned when GenerateKeyPair is asked for a modulus
	// size outside [MinKeyBits, MaxKeyBits].
	ErrKeySize = errors.New("unsupported key size")
)

// PaddingError reports which block of a ciphertext failed to decode during
// decryption. It matches ErrMalformedPadding under errors.Is.
type PaddingError struct {
	// Block is the zero-based index of the offending block.
	Block int
}

func (e *PaddingError) Error() string {
	return fmt.Sprintf("block %d: malformed padding", e.Block)
}

// Is reports whether target is ErrMalformedPadding.
func (e *PaddingError) Is(target error) bool {
	return target == ErrMalformedPadding
}

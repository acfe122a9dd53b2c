package sealbox

import (
	"errors"
	"fmt"

	"github.com/sealbox/sealbox-go/internal/rsa"
)

// Sentinel errors for errors.Is() checks. The cryptographic kinds
// originate in the RSA core and are re-exported here so callers never
// import internal packages.
var (
	// ErrZeroModulus is returned when a key with a zero modulus is used.
	ErrZeroModulus = rsa.ErrZeroModulus

	// ErrPayloadTooLarge is returned when a payload cannot be padded into
	// the blocks its modulus allows.
	ErrPayloadTooLarge = rsa.ErrPayloadTooLarge

	// ErrMalformedPadding is returned when a decrypted block lacks the
	// expected padding structure: wrong key or corrupted ciphertext.
	ErrMalformedPadding = rsa.ErrMalformedPadding

	// ErrKeyNotFound is returned when a key file does not exist.
	ErrKeyNotFound = rsa.ErrKeyNotFound

	// ErrKeyFormat is returned when a key file cannot be parsed.
	ErrKeyFormat = rsa.ErrKeyFormat

	// ErrPassphraseRequired is returned when an encrypted private key
	// file is read without a passphrase.
	ErrPassphraseRequired = rsa.ErrPassphraseRequired

	// ErrWrongPassphrase is returned when an encrypted private key file
	// does not unwrap under the supplied passphrase.
	ErrWrongPassphrase = rsa.ErrWrongPassphrase

	// ErrCiphertextNotFound is returned when a wrapped-key file does not exist.
	ErrCiphertextNotFound = rsa.ErrCiphertextNotFound

	// ErrCiphertextFormat is returned when a wrapped-key file cannot be parsed.
	ErrCiphertextFormat = rsa.ErrCiphertextFormat

	// ErrKeySize is returned when GenerateKeyPair is asked for a modulus
	// size it does not support.
	ErrKeySize = rsa.ErrKeySize

	// ErrNoPublicKey is returned by Seal on a box built without a public key.
	ErrNoPublicKey = errors.New("no public key loaded")

	// ErrNoPrivateKey is returned by Open on a box built without a private key.
	ErrNoPrivateKey = errors.New("no private key loaded")

	// ErrEnvelopeFormat is returned when a body file is too short to
	// contain its nonce.
	ErrEnvelopeFormat = errors.New("malformed envelope body")
)

// PaddingError names the ciphertext block whose padding failed to decode
// during Open. It matches ErrMalformedPadding under errors.Is.
type PaddingError = rsa.PaddingError

// SealboxError is implemented by all errors this package constructs.
type SealboxError interface {
	error
	SealboxError() // marker method
}

// KeyFileError wraps a key-loading failure with the path involved.
type KeyFileError struct {
	Path string
	Err  error
}

func (e *KeyFileError) Error() string {
	return fmt.Sprintf("key file %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *KeyFileError) Unwrap() error {
	return e.Err
}

// SealboxError implements the SealboxError interface.
func (e *KeyFileError) SealboxError() {}

// EnvelopeFormatError reports a body file whose contents cannot hold a
// valid envelope.
type EnvelopeFormatError struct {
	Path string
	Size int
}

func (e *EnvelopeFormatError) Error() string {
	return fmt.Sprintf("envelope body %s: %d bytes is shorter than a nonce", e.Path, e.Size)
}

// Is implements errors.Is for sentinel error matching.
func (e *EnvelopeFormatError) Is(target error) bool {
	return target == ErrEnvelopeFormat
}

// SealboxError implements the SealboxError interface.
func (e *EnvelopeFormatError) SealboxError() {}

// wrapKeyError attaches the file path to key-loading failures so that
// public errors name the file while errors.Is still reaches the sentinel.
func wrapKeyError(path string, err error) error {
	if err == nil {
		return nil
	}
	return &KeyFileError{Path: path, Err: err}
}

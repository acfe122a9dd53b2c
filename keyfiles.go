package sealbox

import "github.com/sealbox/sealbox-go/internal/rsa"

// Key size bounds for GenerateKeyPair, re-exported from the RSA core.
const (
	MinKeyBits     = rsa.MinKeyBits
	MaxKeyBits     = rsa.MaxKeyBits
	DefaultKeyBits = rsa.DefaultKeyBits
)

// GenerateKeyPair produces a demonstration-grade key pair with a modulus
// of roughly bits bits. See MinKeyBits and MaxKeyBits for the admissible
// range.
func GenerateKeyPair(bits int) (PublicKey, PrivateKey, error) {
	return rsa.GenerateKeyPair(bits)
}

// WritePublicKey persists pub to path as a PEM file.
func WritePublicKey(path string, pub PublicKey) error {
	return rsa.WritePublicKey(path, pub)
}

// ReadPublicKey loads a public key PEM file.
func ReadPublicKey(path string) (PublicKey, error) {
	return rsa.ReadPublicKey(path)
}

// WritePrivateKey persists priv to path as an unencrypted PEM file.
func WritePrivateKey(path string, priv PrivateKey) error {
	return rsa.WritePrivateKey(path, priv)
}

// WritePrivateKeyEncrypted persists priv to path wrapped under a
// passphrase (scrypt key derivation, AES-GCM sealing).
func WritePrivateKeyEncrypted(path string, priv PrivateKey, passphrase []byte) error {
	return rsa.WritePrivateKeyEncrypted(path, priv, passphrase)
}

// ReadPrivateKey loads a private key PEM file. passphrase may be nil for
// unencrypted files.
func ReadPrivateKey(path string, passphrase []byte) (PrivateKey, error) {
	return rsa.ReadPrivateKey(path, passphrase)
}

// Package aesgcm wraps AES-128-GCM for the body of a sealed message. The
// RSA engine transports the 16-byte keys this package consumes; everything
// here is a thin layer over crypto/aes and crypto/cipher.
package aesgcm

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
)

const (
	// KeySize is the AES-128 key length in bytes.
	KeySize = 16
	// NonceSize is the AES-GCM nonce length in bytes.
	NonceSize = 12
	// TagSize is the AES-GCM authentication tag length in bytes. The tag
	// is appended to the ciphertext.
	TagSize = 16
)

var (
	// ErrInvalidKeySize is returned when a key is not KeySize bytes.
	ErrInvalidKeySize = errors.New("invalid key size")
	// ErrInvalidNonceSize is returned when a nonce is not NonceSize bytes.
	ErrInvalidNonceSize = errors.New("invalid nonce size")
	// ErrDecryptFailed is returned when authentication fails during
	// decryption. The cause (wrong key, wrong nonce, or tampered
	// ciphertext) is deliberately not distinguished.
	ErrDecryptFailed = errors.New("decryption failed")
)

// GenerateKey returns a fresh random AES-128 key.
func GenerateKey() ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("generate key: %w", err)
	}
	return key, nil
}

// Encrypt seals plaintext under key with a fresh random nonce. The nonce
// is returned separately from the ciphertext; both are needed to decrypt.
// The returned ciphertext includes the authentication tag.
func Encrypt(key, plaintext []byte) (ciphertext, nonce []byte, err error) {
	if len(key) != KeySize {
		return nil, nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidKeySize, len(key), KeySize)
	}
	nonce = make([]byte, NonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, nil, fmt.Errorf("generate nonce: %w", err)
	}
	gcm, err := newGCM(key)
	if err != nil {
		return nil, nil, err
	}
	return gcm.Seal(nil, nonce, plaintext, nil), nonce, nil
}

// Decrypt opens ciphertext with key and nonce and returns the plaintext.
func Decrypt(key, nonce, ciphertext []byte) ([]byte, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidKeySize, len(key), KeySize)
	}
	if len(nonce) != NonceSize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidNonceSize, len(nonce), NonceSize)
	}
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrDecryptFailed
	}
	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create GCM: %w", err)
	}
	return gcm, nil
}

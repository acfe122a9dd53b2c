package sealbox

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/sealbox/sealbox-go/internal/aesgcm"
	"github.com/sealbox/sealbox-go/internal/rsa"
)

// Key and ciphertext types are those of the RSA core; the aliases keep
// internal import paths off the public surface.
type (
	// PublicKey is the sealing half of a key pair.
	PublicKey = rsa.PublicKey
	// PrivateKey is the opening half of a key pair.
	PrivateKey = rsa.PrivateKey
	// Ciphertext is an ordered sequence of RSA-encrypted blocks.
	Ciphertext = rsa.Ciphertext
)

// Box seals and opens messages with keys loaded once at construction.
// A Box is immutable after New and safe for concurrent use.
type Box struct {
	pub  *rsa.PublicKey
	priv *rsa.PrivateKey
	log  logrus.FieldLogger
}

// New loads the configured key files and returns a ready Box. A box built
// with only a public key can Seal, with only a private key Open, with
// both do both. Key files are read exactly once, here.
func New(opts ...Option) (*Box, error) {
	cfg := defaultBoxConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	box := &Box{log: cfg.log}
	if cfg.publicKeyPath != "" {
		pub, err := rsa.ReadPublicKey(cfg.publicKeyPath)
		if err != nil {
			return nil, wrapKeyError(cfg.publicKeyPath, err)
		}
		box.pub = &pub
		box.log.WithFields(logrus.Fields{
			"path":     cfg.publicKeyPath,
			"exponent": redactUint(pub.E),
		}).Info("public key loaded")
	}
	if cfg.privateKeyPath != "" {
		priv, err := rsa.ReadPrivateKey(cfg.privateKeyPath, cfg.passphrase)
		if err != nil {
			return nil, wrapKeyError(cfg.privateKeyPath, err)
		}
		box.priv = &priv
		box.log.WithFields(logrus.Fields{
			"path":     cfg.privateKeyPath,
			"exponent": redactUint(priv.D),
		}).Info("private key loaded")
	}
	return box, nil
}

// PublicKey returns a copy of the loaded public key, or nil when the box
// cannot Seal.
func (b *Box) PublicKey() *PublicKey {
	if b.pub == nil {
		return nil
	}
	pub := *b.pub
	return &pub
}

// PrivateKey returns a copy of the loaded private key, or nil when the
// box cannot Open.
func (b *Box) PrivateKey() *PrivateKey {
	if b.priv == nil {
		return nil
	}
	priv := *b.priv
	return &priv
}

// Seal encrypts plaintext under a fresh AES-128 key and wraps that key
// with the box's RSA public key. Each call draws a new message key and
// nonce, so sealing the same plaintext twice yields different envelopes.
func (b *Box) Seal(plaintext []byte) (*Envelope, error) {
	if b.pub == nil {
		return nil, ErrNoPublicKey
	}
	key, err := aesgcm.GenerateKey()
	if err != nil {
		return nil, err
	}
	b.log.WithField("key_sha256", HashHex(key)).Debug("message key generated")

	body, nonce, err := aesgcm.Encrypt(key, plaintext)
	if err != nil {
		return nil, err
	}
	wrapped, err := rsa.Encrypt(*b.pub, key)
	if err != nil {
		return nil, fmt.Errorf("wrap message key: %w", err)
	}
	b.log.WithFields(logrus.Fields{
		"body_bytes": len(body),
		"key_blocks": len(wrapped),
	}).Info("message sealed")
	return &Envelope{Nonce: nonce, Body: body, Key: wrapped}, nil
}

// Open reverses Seal: it unwraps the message key with the RSA private
// exponent, then decrypts the body with it.
func (b *Box) Open(env *Envelope) ([]byte, error) {
	if b.priv == nil {
		return nil, ErrNoPrivateKey
	}
	key, err := rsa.Decrypt(*b.priv, env.Key)
	if err != nil {
		return nil, fmt.Errorf("unwrap message key: %w", err)
	}
	b.log.WithField("key_sha256", HashHex(key)).Debug("message key recovered")

	plaintext, err := aesgcm.Decrypt(key, env.Nonce, env.Body)
	if err != nil {
		return nil, err
	}
	b.log.WithField("plaintext_bytes", len(plaintext)).Info("message opened")
	return plaintext, nil
}

// SealFile reads inPath, seals its contents, and persists the envelope:
// bodyPath receives the AES body, keyPath the RSA-wrapped key. Nothing is
// written unless both cryptographic steps succeed.
func (b *Box) SealFile(inPath, bodyPath, keyPath string) error {
	plaintext, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("read plaintext: %w", err)
	}
	env, err := b.Seal(plaintext)
	if err != nil {
		return err
	}
	if err := env.WriteFiles(bodyPath, keyPath); err != nil {
		return err
	}
	b.log.WithFields(logrus.Fields{
		"body": bodyPath,
		"key":  keyPath,
	}).Info("envelope exported")
	return nil
}

// OpenFile loads a persisted envelope and returns the original plaintext.
func (b *Box) OpenFile(bodyPath, keyPath string) ([]byte, error) {
	env, err := ReadEnvelope(bodyPath, keyPath)
	if err != nil {
		return nil, err
	}
	return b.Open(env)
}

package sealbox

import (
	"io"

	"github.com/sirupsen/logrus"
)

// boxConfig holds configuration for a Box.
type boxConfig struct {
	publicKeyPath  string
	privateKeyPath string
	passphrase     []byte
	log            logrus.FieldLogger
}

// Option configures a Box.
type Option func(*boxConfig)

// WithPublicKeyFile points the box at a persisted public key. A box needs
// one to Seal.
func WithPublicKeyFile(path string) Option {
	return func(c *boxConfig) {
		c.publicKeyPath = path
	}
}

// WithPrivateKeyFile points the box at a persisted private key. A box
// needs one to Open.
func WithPrivateKeyFile(path string) Option {
	return func(c *boxConfig) {
		c.privateKeyPath = path
	}
}

// WithPassphrase supplies the passphrase for an encrypted private key
// file. It is ignored for unencrypted key files.
func WithPassphrase(passphrase []byte) Option {
	return func(c *boxConfig) {
		c.passphrase = passphrase
	}
}

// WithLogger routes the box's progress logging to log. Key material never
// reaches a log line directly; it is redacted to a SHA-256 digest first.
// Without this option the box logs nowhere.
func WithLogger(log logrus.FieldLogger) Option {
	return func(c *boxConfig) {
		c.log = log
	}
}

func defaultBoxConfig() *boxConfig {
	silent := logrus.New()
	silent.SetOutput(io.Discard)
	return &boxConfig{log: silent}
}

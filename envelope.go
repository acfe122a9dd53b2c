package sealbox

import (
	"fmt"
	"os"

	"github.com/sealbox/sealbox-go/internal/aesgcm"
	"github.com/sealbox/sealbox-go/internal/rsa"
)

// Envelope is one sealed message: the AES-GCM body, the nonce it was
// sealed with, and the RSA-wrapped message key. Envelopes are plain
// values; WriteFiles and ReadEnvelope move them through the two-file
// persisted form.
type Envelope struct {
	// Nonce is the AES-GCM nonce of the body.
	Nonce []byte
	// Body is the AES-GCM ciphertext of the message, tag included.
	Body []byte
	// Key is the RSA-encrypted message key, one block per padded chunk.
	Key Ciphertext
}

// WriteFiles persists the envelope. bodyPath receives the nonce followed
// by the body; keyPath receives the self-delimiting block format of the
// RSA core. Existing files are replaced, and a body file is never left
// behind without its key file.
func (e *Envelope) WriteFiles(bodyPath, keyPath string) error {
	buf := make([]byte, 0, len(e.Nonce)+len(e.Body))
	buf = append(buf, e.Nonce...)
	buf = append(buf, e.Body...)
	if err := os.WriteFile(bodyPath, buf, 0o644); err != nil {
		return fmt.Errorf("write envelope body: %w", err)
	}
	if err := rsa.WriteCiphertext(keyPath, e.Key); err != nil {
		os.Remove(bodyPath)
		return err
	}
	return nil
}

// ReadEnvelope loads an envelope persisted by WriteFiles.
func ReadEnvelope(bodyPath, keyPath string) (*Envelope, error) {
	raw, err := os.ReadFile(bodyPath)
	if err != nil {
		return nil, fmt.Errorf("read envelope body: %w", err)
	}
	if len(raw) < aesgcm.NonceSize {
		return nil, &EnvelopeFormatError{Path: bodyPath, Size: len(raw)}
	}
	key, err := rsa.ReadCiphertext(keyPath)
	if err != nil {
		return nil, err
	}
	return &Envelope{
		Nonce: raw[:aesgcm.NonceSize],
		Body:  raw[aesgcm.NonceSize:],
		Key:   key,
	}, nil
}

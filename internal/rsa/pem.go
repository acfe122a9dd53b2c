package rsa

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/pem"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"golang.org/x/crypto/scrypt"

	"github.com/sealbox/sealbox-go/internal/aesgcm"
)

// Encrypted private key files carry the classic PEM encryption headers.
// The wrapped payload is salt || nonce || sealed blob.
const (
	procTypeHeader = "Proc-Type"
	procTypeValue  = "4,ENCRYPTED"
	dekInfoHeader  = "DEK-Info"
	dekInfoValue   = "AES-128-GCM,scrypt"
	scryptCostN    = 1 << 15
	scryptCostR    = 8
	scryptCostP    = 1
	scryptSaltSize = 16
)

// WritePublicKey persists pub to path in the sealbox PEM container,
// replacing any existing file. The full uint64 range of both fields round
// trips; no key validation happens at this layer.
func WritePublicKey(path string, pub PublicKey) error {
	return writeKey(path, PublicKeyType, pub.N, pub.E)
}

// ReadPublicKey parses a key persisted by WritePublicKey.
func ReadPublicKey(path string) (PublicKey, error) {
	n, e, err := readKey(path, PublicKeyType, nil)
	if err != nil {
		return PublicKey{}, err
	}
	return PublicKey{N: n, E: e}, nil
}

// WritePrivateKey persists priv to path unencrypted.
func WritePrivateKey(path string, priv PrivateKey) error {
	return writeKey(path, PrivateKeyType, priv.N, priv.D)
}

// WritePrivateKeyEncrypted persists priv to path with the key material
// wrapped under a passphrase: scrypt derives the wrapping key and AES-GCM
// seals the payload. The file is marked with Proc-Type and DEK-Info
// headers so readers know a passphrase is needed.
func WritePrivateKeyEncrypted(path string, priv PrivateKey, passphrase []byte) error {
	if len(passphrase) == 0 {
		return errors.New("empty passphrase")
	}
	wrapped, err := wrapKeyBlob(keyBlob(priv.N, priv.D), passphrase)
	if err != nil {
		return err
	}
	block := &pem.Block{
		Type: PrivateKeyType,
		Headers: map[string]string{
			procTypeHeader: procTypeValue,
			dekInfoHeader:  dekInfoValue,
		},
		Bytes: wrapped,
	}
	if err := os.WriteFile(path, pem.EncodeToMemory(block), 0o600); err != nil {
		return fmt.Errorf("write key file: %w", err)
	}
	return nil
}

// ReadPrivateKey parses a key persisted by WritePrivateKey or
// WritePrivateKeyEncrypted. passphrase may be nil for unencrypted files;
// reading an encrypted file without one fails with ErrPassphraseRequired.
func ReadPrivateKey(path string, passphrase []byte) (PrivateKey, error) {
	n, d, err := readKey(path, PrivateKeyType, passphrase)
	if err != nil {
		return PrivateKey{}, err
	}
	return PrivateKey{N: n, D: d}, nil
}

// keyBlob packs a modulus and an exponent in the persisted byte layout.
func keyBlob(n, exp uint64) []byte {
	blob := make([]byte, KeyBlobSize)
	binary.BigEndian.PutUint64(blob[:8], n)
	binary.BigEndian.PutUint64(blob[8:], exp)
	return blob
}

func parseKeyBlob(blob []byte) (n, exp uint64, err error) {
	if len(blob) != KeyBlobSize {
		return 0, 0, fmt.Errorf("%w: key payload is %d bytes, want %d", ErrKeyFormat, len(blob), KeyBlobSize)
	}
	return binary.BigEndian.Uint64(blob[:8]), binary.BigEndian.Uint64(blob[8:]), nil
}

func writeKey(path, blockType string, n, exp uint64) error {
	block := &pem.Block{Type: blockType, Bytes: keyBlob(n, exp)}
	if err := os.WriteFile(path, pem.EncodeToMemory(block), 0o600); err != nil {
		return fmt.Errorf("write key file: %w", err)
	}
	return nil
}

// readKey loads one PEM block from path, enforces its type, unwraps it if
// the encryption headers are present, and unpacks the key blob.
func readKey(path, blockType string, passphrase []byte) (n, exp uint64, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, 0, fmt.Errorf("%w: %s", ErrKeyNotFound, path)
		}
		return 0, 0, fmt.Errorf("read key file: %w", err)
	}
	block, _ := pem.Decode(data)
	if block == nil {
		return 0, 0, fmt.Errorf("%w: no PEM block in %s", ErrKeyFormat, path)
	}
	if block.Type != blockType {
		return 0, 0, fmt.Errorf("%w: PEM block is %q, want %q", ErrKeyFormat, block.Type, blockType)
	}
	payload := block.Bytes
	if block.Headers[procTypeHeader] == procTypeValue {
		if len(passphrase) == 0 {
			return 0, 0, fmt.Errorf("%w: %s", ErrPassphraseRequired, path)
		}
		payload, err = unwrapKeyBlob(payload, passphrase)
		if err != nil {
			return 0, 0, err
		}
	}
	return parseKeyBlob(payload)
}

func wrapKeyBlob(blob, passphrase []byte) ([]byte, error) {
	salt := make([]byte, scryptSaltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	kek, err := scrypt.Key(passphrase, salt, scryptCostN, scryptCostR, scryptCostP, aesgcm.KeySize)
	if err != nil {
		return nil, fmt.Errorf("derive wrapping key: %w", err)
	}
	sealed, nonce, err := aesgcm.Encrypt(kek, blob)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, scryptSaltSize+len(nonce)+len(sealed))
	out = append(out, salt...)
	out = append(out, nonce...)
	out = append(out, sealed...)
	return out, nil
}

func unwrapKeyBlob(wrapped, passphrase []byte) ([]byte, error) {
	if len(wrapped) < scryptSaltSize+aesgcm.NonceSize {
		return nil, fmt.Errorf("%w: encrypted key payload too short", ErrKeyFormat)
	}
	salt := wrapped[:scryptSaltSize]
	nonce := wrapped[scryptSaltSize : scryptSaltSize+aesgcm.NonceSize]
	sealed := wrapped[scryptSaltSize+aesgcm.NonceSize:]
	kek, err := scrypt.Key(passphrase, salt, scryptCostN, scryptCostR, scryptCostP, aesgcm.KeySize)
	if err != nil {
		return nil, fmt.Errorf("derive wrapping key: %w", err)
	}
	blob, err := aesgcm.Decrypt(kek, nonce, sealed)
	if err != nil {
		return nil, fmt.Errorf("%w: key did not unwrap", ErrWrongPassphrase)
	}
	return blob, nil
}

package sealbox

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// writeTestKeys generates a key pair and persists it under a temp
// directory, returning the two file paths.
func writeTestKeys(t *testing.T) (pubPath, privPath string) {
	t.Helper()
	pub, priv, err := GenerateKeyPair(DefaultKeyBits)
	if err != nil {
		t.Fatalf("GenerateKeyPair() error = %v", err)
	}
	dir := t.TempDir()
	pubPath = filepath.Join(dir, "pubKey.pem")
	privPath = filepath.Join(dir, "privKey.pem")
	if err := WritePublicKey(pubPath, pub); err != nil {
		t.Fatalf("WritePublicKey() error = %v", err)
	}
	if err := WritePrivateKey(privPath, priv); err != nil {
		t.Fatalf("WritePrivateKey() error = %v", err)
	}
	return pubPath, privPath
}

func TestNew_LoadsKeys(t *testing.T) {
	pubPath, privPath := writeTestKeys(t)

	box, err := New(
		WithPublicKeyFile(pubPath),
		WithPrivateKeyFile(privPath),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if box.PublicKey() == nil {
		t.Error("PublicKey() = nil after loading a public key")
	}
	if box.PrivateKey() == nil {
		t.Error("PrivateKey() = nil after loading a private key")
	}
}

func TestNew_NoKeys(t *testing.T) {
	box, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if box.PublicKey() != nil || box.PrivateKey() != nil {
		t.Error("a bare box should hold no keys")
	}
}

func TestNew_MissingKeyFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.pem")
	_, err := New(WithPublicKeyFile(missing))
	if !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound, got %v", err)
	}
	var kfErr *KeyFileError
	if !errors.As(err, &kfErr) {
		t.Fatalf("expected a KeyFileError, got %T", err)
	}
	if kfErr.Path != missing {
		t.Errorf("KeyFileError.Path = %q, want %q", kfErr.Path, missing)
	}
}

func TestNew_GarbageKeyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pubKey.pem")
	if err := os.WriteFile(path, []byte("not a key"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := New(WithPublicKeyFile(path)); !errors.Is(err, ErrKeyFormat) {
		t.Errorf("expected ErrKeyFormat, got %v", err)
	}
}

func TestBox_SealOpen_RoundTrip(t *testing.T) {
	pubPath, privPath := writeTestKeys(t)
	box, err := New(
		WithPublicKeyFile(pubPath),
		WithPrivateKeyFile(privPath),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	tests := []struct {
		name      string
		plaintext []byte
	}{
		{"empty", []byte{}},
		{"short", []byte("attack at dawn")},
		{"multiline", []byte("line one\nline two\nline three\n")},
		{"binary", []byte{0x00, 0xFF, 0x02, 0x80, 0x7F}},
		{"large", bytes.Repeat([]byte("sealbox "), 4096)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, err := box.Seal(tt.plaintext)
			if err != nil {
				t.Fatalf("Seal() error = %v", err)
			}
			got, err := box.Open(env)
			if err != nil {
				t.Fatalf("Open() error = %v", err)
			}
			if !bytes.Equal(got, tt.plaintext) {
				t.Errorf("Open(Seal(x)) = %x, want %x", got, tt.plaintext)
			}
		})
	}
}

func TestBox_Seal_FreshKeyPerCall(t *testing.T) {
	pubPath, privPath := writeTestKeys(t)
	box, err := New(WithPublicKeyFile(pubPath), WithPrivateKeyFile(privPath))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	env1, err := box.Seal([]byte("same message"))
	if err != nil {
		t.Fatalf("Seal() error = %v", err)
	}
	env2, err := box.Seal([]byte("same message"))
	if err != nil {
		t.Fatalf("Seal() error = %v", err)
	}

	if bytes.Equal(env1.Body, env2.Body) {
		t.Error("two Seal() calls produced identical bodies")
	}
	sameKey := len(env1.Key) == len(env2.Key)
	if sameKey {
		for i := range env1.Key {
			if env1.Key[i] != env2.Key[i] {
				sameKey = false
				break
			}
		}
	}
	if sameKey {
		t.Error("two Seal() calls wrapped identical message keys")
	}
}

func TestBox_Seal_RequiresPublicKey(t *testing.T) {
	_, privPath := writeTestKeys(t)
	box, err := New(WithPrivateKeyFile(privPath))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if _, err := box.Seal([]byte("x")); !errors.Is(err, ErrNoPublicKey) {
		t.Errorf("expected ErrNoPublicKey, got %v", err)
	}
}

func TestBox_Open_RequiresPrivateKey(t *testing.T) {
	pubPath, _ := writeTestKeys(t)
	box, err := New(WithPublicKeyFile(pubPath))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	env, err := box.Seal([]byte("x"))
	if err != nil {
		t.Fatalf("Seal() error = %v", err)
	}
	if _, err := box.Open(env); !errors.Is(err, ErrNoPrivateKey) {
		t.Errorf("expected ErrNoPrivateKey, got %v", err)
	}
}

func TestBox_Open_WrongPrivateKey(t *testing.T) {
	pubPath, _ := writeTestKeys(t)
	_, wrongPrivPath := writeTestKeys(t)

	sealer, err := New(WithPublicKeyFile(pubPath))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	opener, err := New(WithPrivateKeyFile(wrongPrivPath))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	plaintext := []byte("attack at dawn")
	env, err := sealer.Seal(plaintext)
	if err != nil {
		t.Fatalf("Seal() error = %v", err)
	}
	got, err := opener.Open(env)
	if err == nil && bytes.Equal(got, plaintext) {
		t.Error("Open() with the wrong key recovered the plaintext")
	}
}

func TestBox_SealFileOpenFile_RoundTrip(t *testing.T) {
	pubPath, privPath := writeTestKeys(t)
	box, err := New(WithPublicKeyFile(pubPath), WithPrivateKeyFile(privPath))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	dir := t.TempDir()
	inPath := filepath.Join(dir, "message.txt")
	bodyPath := filepath.Join(dir, "msg_enc.aes")
	keyPath := filepath.Join(dir, "key_enc.bin")

	original := []byte("the quick brown fox jumps over the lazy dog\n")
	if err := os.WriteFile(inPath, original, 0o644); err != nil {
		t.Fatal(err)
	}

	if err := box.SealFile(inPath, bodyPath, keyPath); err != nil {
		t.Fatalf("SealFile() error = %v", err)
	}

	// The body file must not contain the plaintext.
	body, err := os.ReadFile(bodyPath)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Contains(body, original) {
		t.Error("sealed body contains the plaintext")
	}

	got, err := box.OpenFile(bodyPath, keyPath)
	if err != nil {
		t.Fatalf("OpenFile() error = %v", err)
	}
	if !bytes.Equal(got, original) {
		t.Errorf("OpenFile() = %q, want %q", got, original)
	}
}

func TestBox_SealFile_MissingInput(t *testing.T) {
	pubPath, privPath := writeTestKeys(t)
	box, err := New(WithPublicKeyFile(pubPath), WithPrivateKeyFile(privPath))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	dir := t.TempDir()
	err = box.SealFile(
		filepath.Join(dir, "missing.txt"),
		filepath.Join(dir, "msg_enc.aes"),
		filepath.Join(dir, "key_enc.bin"),
	)
	if err == nil {
		t.Fatal("expected an error for a missing input file")
	}
	if _, statErr := os.Stat(filepath.Join(dir, "msg_enc.aes")); !os.IsNotExist(statErr) {
		t.Error("SealFile() left a body file behind after failing")
	}
}

func TestBox_WithEncryptedPrivateKey(t *testing.T) {
	pub, priv, err := GenerateKeyPair(DefaultKeyBits)
	if err != nil {
		t.Fatalf("GenerateKeyPair() error = %v", err)
	}
	dir := t.TempDir()
	pubPath := filepath.Join(dir, "pubKey.pem")
	privPath := filepath.Join(dir, "privKey.pem")
	passphrase := []byte("hunter2")

	if err := WritePublicKey(pubPath, pub); err != nil {
		t.Fatal(err)
	}
	if err := WritePrivateKeyEncrypted(privPath, priv, passphrase); err != nil {
		t.Fatal(err)
	}

	// Without the passphrase the box must refuse to load.
	_, err = New(WithPublicKeyFile(pubPath), WithPrivateKeyFile(privPath))
	if !errors.Is(err, ErrPassphraseRequired) {
		t.Fatalf("expected ErrPassphraseRequired, got %v", err)
	}

	box, err := New(
		WithPublicKeyFile(pubPath),
		WithPrivateKeyFile(privPath),
		WithPassphrase(passphrase),
	)
	if err != nil {
		t.Fatalf("New() with passphrase error = %v", err)
	}
	env, err := box.Seal([]byte("vault"))
	if err != nil {
		t.Fatalf("Seal() error = %v", err)
	}
	got, err := box.Open(env)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if !bytes.Equal(got, []byte("vault")) {
		t.Errorf("Open() = %q, want vault", got)
	}
}

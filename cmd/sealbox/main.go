// Command sealbox runs the full hybrid-encryption demonstration: it asks
// for a text file, seals it under the configured key pair, opens the
// result again, and verifies the round trip, logging every step to stdout
// and a log file.
//
// Configuration comes from the environment (a .env file is honored):
//
//	SEALBOX_KEYS_DIR        directory holding pubKey.pem and privKey.pem (default keys)
//	SEALBOX_OUT_DIR         directory for the sealed output files (default ciphertext)
//	SEALBOX_LOG_FILE        log file, truncated at startup (default sealbox.log)
//	SEALBOX_DECRYPTED_FILE  where the recovered plaintext is written (default decrypted.txt)
//	SEALBOX_KEY_PASSPHRASE  passphrase for an encrypted private key, if any
package main

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	sealbox "github.com/sealbox/sealbox-go"
)

func main() {
	_ = godotenv.Load()

	keysDir := getenv("SEALBOX_KEYS_DIR", "keys")
	outDir := getenv("SEALBOX_OUT_DIR", "ciphertext")
	logPath := getenv("SEALBOX_LOG_FILE", "sealbox.log")
	decryptedPath := getenv("SEALBOX_DECRYPTED_FILE", "decrypted.txt")
	passphrase := os.Getenv("SEALBOX_KEY_PASSPHRASE")

	log, closeLog, err := newLogger(logPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closeLog()

	log.Info("program started")
	if err := run(log, keysDir, outDir, decryptedPath, passphrase); err != nil {
		log.WithError(err).Error("run failed")
		closeLog()
		os.Exit(1)
	}
	log.Info("program finished")
}

func run(log *logrus.Logger, keysDir, outDir, decryptedPath, passphrase string) error {
	fmt.Println("Enter the path to your textfile:")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return fmt.Errorf("read input path: %w", err)
	}
	inPath := strings.TrimSpace(line)
	message, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("read %s: %w", inPath, err)
	}
	log.WithFields(logrus.Fields{
		"path":  inPath,
		"bytes": len(message),
	}).Info("plaintext file read")

	opts := []sealbox.Option{
		sealbox.WithPublicKeyFile(filepath.Join(keysDir, "pubKey.pem")),
		sealbox.WithPrivateKeyFile(filepath.Join(keysDir, "privKey.pem")),
		sealbox.WithLogger(log),
	}
	if passphrase != "" {
		opts = append(opts, sealbox.WithPassphrase([]byte(passphrase)))
	}
	box, err := sealbox.New(opts...)
	if err != nil {
		if errors.Is(err, sealbox.ErrKeyNotFound) {
			return fmt.Errorf("%w (generate a pair with sealbox-keygen first)", err)
		}
		return err
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	bodyPath := filepath.Join(outDir, "msg_enc.aes")
	keyPath := filepath.Join(outDir, "key_enc.bin")

	log.Info("===== encryption =====")
	if err := box.SealFile(inPath, bodyPath, keyPath); err != nil {
		return fmt.Errorf("seal: %w", err)
	}

	log.Info("===== decryption =====")
	decrypted, err := box.OpenFile(bodyPath, keyPath)
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}
	if err := os.WriteFile(decryptedPath, decrypted, 0o644); err != nil {
		return fmt.Errorf("write decrypted file: %w", err)
	}
	log.WithField("path", decryptedPath).Info("decrypted message exported")

	if !bytes.Equal(message, decrypted) {
		return errors.New("decrypted message does not match the original")
	}
	log.Info("decrypted message matches the original")
	return nil
}

// newLogger builds the run logger: text lines with full timestamps,
// written to stdout and to a log file that every run starts fresh.
func newLogger(path string) (*logrus.Logger, func(), error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	log.SetOutput(io.MultiWriter(os.Stdout, f))
	return log, func() { f.Close() }, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Command sealbox-keygen generates a demonstration key pair and writes it
// as PEM files where the sealbox command expects them.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	sealbox "github.com/sealbox/sealbox-go"
)

func main() {
	_ = godotenv.Load()

	dir := flag.String("dir", getenv("SEALBOX_KEYS_DIR", "keys"), "directory for the key pair")
	bits := flag.Int("bits", sealbox.DefaultKeyBits, "modulus size in bits")
	passphrase := flag.String("passphrase", os.Getenv("SEALBOX_KEY_PASSPHRASE"), "encrypt the private key file under this passphrase")
	flag.Parse()

	pub, priv, err := sealbox.GenerateKeyPair(*bits)
	if err != nil {
		fatal("generate key pair: %v", err)
	}
	if err := os.MkdirAll(*dir, 0o755); err != nil {
		fatal("create key directory: %v", err)
	}

	pubPath := filepath.Join(*dir, "pubKey.pem")
	privPath := filepath.Join(*dir, "privKey.pem")
	if err := sealbox.WritePublicKey(pubPath, pub); err != nil {
		fatal("write public key: %v", err)
	}
	if *passphrase != "" {
		err = sealbox.WritePrivateKeyEncrypted(privPath, priv, []byte(*passphrase))
	} else {
		err = sealbox.WritePrivateKey(privPath, priv)
	}
	if err != nil {
		fatal("write private key: %v", err)
	}

	fmt.Printf("wrote %s and %s\n", pubPath, privPath)
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

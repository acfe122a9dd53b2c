// Package sealbox demonstrates hybrid encryption: AES-128-GCM protects a
// message body while a from-scratch textbook-RSA engine protects the AES
// key that sealed it.
//
// The RSA engine runs entirely on uint64 arithmetic with deterministic
// padding, so every key, block, and intermediate value is small enough to
// inspect. That makes sealbox a teaching tool, not a security tool; see
// the internal rsa package documentation for the exact guarantees it does
// not make.
//
// Basic usage:
//
//	box, err := sealbox.New(
//	    sealbox.WithPublicKeyFile("keys/pubKey.pem"),
//	    sealbox.WithPrivateKeyFile("keys/privKey.pem"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Seal a message: a fresh AES key encrypts it, RSA wraps the key.
//	env, err := box.Seal([]byte("attack at dawn"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Open it again.
//	plaintext, err := box.Open(env)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println(string(plaintext))
//
// Envelopes persist as two files, the AES body and the RSA-wrapped key;
// see [Envelope.WriteFiles] and [ReadEnvelope].
package sealbox

package rsa

const (
	// markerByte opens every padded block.
	markerByte = 0x02
	// padByte fills the run between the marker and the separator.
	padByte = 0xFF
	// separatorByte ends the pad run; the chunk follows it.
	separatorByte = 0x00
	// padOverhead is the structure around a chunk at its smallest: the
	// marker, one pad byte, and the separator.
	padOverhead = 3

	// KeyBlobSize is the decoded payload size of a key PEM block: the
	// modulus and the exponent as two big-endian uint64 values.
	KeyBlobSize = 16

	// PublicKeyType is the PEM block type of a persisted public key.
	PublicKeyType = "SEALBOX PUBLIC KEY"
	// PrivateKeyType is the PEM block type of a persisted private key.
	PrivateKeyType = "SEALBOX PRIVATE KEY"

	// ciphertextMagic opens every persisted ciphertext file.
	ciphertextMagic = "SBX1"
	// blockBytes is the on-disk width of one encrypted block.
	blockBytes = 8

	// MinKeyBits is the smallest modulus GenerateKeyPair will produce.
	// Below it a block cannot carry even one payload byte after padding.
	MinKeyBits = 34
	// MaxKeyBits is the largest modulus GenerateKeyPair will produce.
	// Above it the totient leaves int64 range in the modular inverse.
	MaxKeyBits = 62
	// DefaultKeyBits is the modulus size used when callers do not choose
	// one. A 48-bit modulus gives five-byte blocks carrying two payload
	// bytes each, so a 16-byte message key spans eight blocks.
	DefaultKeyBits = 48
)

package sealbox

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
)

// HashHex returns the SHA-256 digest of b in lowercase hex. It exists so
// key material can be correlated across log lines without appearing in
// them; it carries no cryptographic meaning beyond that.
func HashHex(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

// redactUint redacts one integer of key material for logging, hashing its
// decimal form.
func redactUint(v uint64) string {
	return HashHex([]byte(strconv.FormatUint(v, 10)))
}

package rsa

import "fmt"

// Ciphertext is an ordered sequence of encrypted blocks. Block order is
// chunk order and must survive persistence: decryption reassembles the
// payload by concatenating decoded chunks in sequence.
type Ciphertext []uint64

// Encrypt pads payload into blocks sized for pub.N and exponentiates each
// with the public exponent. The payload is split greedily: every block but
// the last carries the full chunk capacity of the modulus.
//
// A modulus too small to fit the padding structure around at least one
// payload byte fails with ErrPayloadTooLarge.
func Encrypt(pub PublicKey, payload []byte) (Ciphertext, error) {
	if pub.N == 0 {
		return nil, ErrZeroModulus
	}
	capacity := blockCapacity(pub.N)
	chunkSize := maxChunkSize(pub.N)
	if chunkSize < 1 {
		return nil, fmt.Errorf("%w: %d-byte blocks cannot hold the padding structure", ErrPayloadTooLarge, capacity)
	}
	chunks := splitChunks(payload, chunkSize)
	ct := make(Ciphertext, 0, len(chunks))
	for _, chunk := range chunks {
		block, err := pad(chunk, capacity)
		if err != nil {
			return nil, err
		}
		ct = append(ct, powmod(block, pub.E, pub.N))
	}
	return ct, nil
}

// Decrypt exponentiates each block with the private exponent and strips
// the padding, reassembling the payload in block order.
//
// A block that does not decode to well-formed padding aborts the whole
// operation with a PaddingError naming the block; no partial payload is
// returned.
func Decrypt(priv PrivateKey, ct Ciphertext) ([]byte, error) {
	if priv.N == 0 {
		return nil, ErrZeroModulus
	}
	capacity := blockCapacity(priv.N)
	var payload []byte
	for i, block := range ct {
		chunk, err := unpad(powmod(block, priv.D, priv.N), capacity)
		if err != nil {
			return nil, &PaddingError{Block: i}
		}
		payload = append(payload, chunk...)
	}
	return payload, nil
}

// splitChunks slices payload into pieces of at most size bytes, preserving
// order. An empty payload yields one empty chunk so that encrypting it
// still produces a single well-formed block.
func splitChunks(payload []byte, size int) [][]byte {
	if len(payload) == 0 {
		return [][]byte{nil}
	}
	var chunks [][]byte
	for start := 0; start < len(payload); start += size {
		end := start + size
		if end > len(payload) {
			end = len(payload)
		}
		chunks = append(chunks, payload[start:end])
	}
	return chunks
}

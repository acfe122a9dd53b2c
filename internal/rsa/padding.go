package rsa

import "math/bits"

// blockCapacity returns the block width in whole bytes for modulus n. Any
// big-endian value of this width is below 2^(bitlen(n)-1) and therefore
// strictly below n, so a padded block always survives the modular
// arithmetic unchanged.
func blockCapacity(n uint64) int {
	return (bits.Len64(n) - 1) / 8
}

// maxChunkSize returns how many payload bytes one padded block carries
// under modulus n. Zero or negative means the modulus cannot hold the
// padding structure at all.
func maxChunkSize(n uint64) int {
	return blockCapacity(n) - padOverhead
}

// pad embeds chunk into a single integer block of exactly capacity bytes:
//
//	0x02 | 0xFF ... 0xFF | 0x00 | chunk
//
// The pad run is at least one byte and absorbs the capacity the chunk does
// not use, so chunks of every admissible length (including empty) decode
// back to exactly their original bytes.
func pad(chunk []byte, capacity int) (uint64, error) {
	if len(chunk) > capacity-padOverhead {
		return 0, ErrPayloadTooLarge
	}
	buf := make([]byte, capacity)
	buf[0] = markerByte
	padLen := capacity - 2 - len(chunk)
	for i := 1; i <= padLen; i++ {
		buf[i] = padByte
	}
	// buf[padLen+1] is already separatorByte.
	copy(buf[padLen+2:], chunk)
	var block uint64
	for _, b := range buf {
		block = block<<8 | uint64(b)
	}
	return block, nil
}

// unpad recovers the chunk from a padded block of the given capacity. It
// is the exact left inverse of pad: the scan stops at the first byte that
// is not padByte, which a well-formed block guarantees is the separator.
// Any structural violation (wrong marker, empty pad run, missing
// separator, or a value wider than capacity bytes) fails with
// ErrMalformedPadding.
func unpad(block uint64, capacity int) ([]byte, error) {
	if capacity < padOverhead {
		return nil, ErrMalformedPadding
	}
	buf := make([]byte, capacity)
	for i := capacity - 1; i >= 0; i-- {
		buf[i] = byte(block)
		block >>= 8
	}
	if block != 0 {
		// The value does not fit capacity bytes, so it cannot be the
		// image of pad under this modulus.
		return nil, ErrMalformedPadding
	}
	if buf[0] != markerByte {
		return nil, ErrMalformedPadding
	}
	i := 1
	for i < capacity && buf[i] == padByte {
		i++
	}
	if i == 1 || i == capacity || buf[i] != separatorByte {
		return nil, ErrMalformedPadding
	}
	return buf[i+1:], nil
}

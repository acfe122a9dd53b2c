package rsa

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Marshal encodes the ciphertext in its on-disk form: the magic, a
// big-endian uint32 block count, then each block as a big-endian uint64.
// The explicit count makes the format self-delimiting, so a reader can
// reject truncated or padded files outright.
func (c Ciphertext) Marshal() []byte {
	buf := make([]byte, 0, len(ciphertextMagic)+4+len(c)*blockBytes)
	buf = append(buf, ciphertextMagic...)
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(c)))
	for _, block := range c {
		buf = binary.BigEndian.AppendUint64(buf, block)
	}
	return buf
}

// ParseCiphertext decodes Marshal's output. Anything whose magic, declared
// count, or byte length disagrees with the data fails with
// ErrCiphertextFormat.
func ParseCiphertext(data []byte) (Ciphertext, error) {
	headerLen := len(ciphertextMagic) + 4
	if len(data) < headerLen {
		return nil, fmt.Errorf("%w: %d bytes is shorter than the header", ErrCiphertextFormat, len(data))
	}
	if string(data[:len(ciphertextMagic)]) != ciphertextMagic {
		return nil, fmt.Errorf("%w: bad magic", ErrCiphertextFormat)
	}
	count := binary.BigEndian.Uint32(data[len(ciphertextMagic):headerLen])
	body := data[headerLen:]
	if len(body) != int(count)*blockBytes {
		return nil, fmt.Errorf("%w: %d blocks declared, %d bytes of block data", ErrCiphertextFormat, count, len(body))
	}
	ct := make(Ciphertext, count)
	for i := range ct {
		ct[i] = binary.BigEndian.Uint64(body[i*blockBytes:])
	}
	return ct, nil
}

// WriteCiphertext persists ct to path, replacing any existing file.
func WriteCiphertext(path string, ct Ciphertext) error {
	if err := os.WriteFile(path, ct.Marshal(), 0o644); err != nil {
		return fmt.Errorf("write ciphertext: %w", err)
	}
	return nil
}

// ReadCiphertext loads a ciphertext persisted by WriteCiphertext. A
// missing file fails with ErrCiphertextNotFound so callers can tell
// absence from corruption.
func ReadCiphertext(path string) (Ciphertext, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrCiphertextNotFound, path)
		}
		return nil, fmt.Errorf("read ciphertext: %w", err)
	}
	return ParseCiphertext(data)
}

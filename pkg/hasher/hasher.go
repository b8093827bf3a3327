package hasher

import (
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"io"
	"os"
)

// chunkSize bounds peak memory per file regardless of file size.
const chunkSize = 8 * 1024

// Digest computes the SHA256 and SHA512 hex digests plus the byte size of
// the file at path. Both hashes consume the same sequential stream, so the
// two digests always describe an identical byte sequence even if the file
// is mutated mid-read.
func Digest(path string) (string, string, int64, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", "", 0, fmt.Errorf("open %s for hashing: %w", path, err)
	}
	defer file.Close()

	h256 := sha256.New()
	h512 := sha512.New()

	buf := make([]byte, chunkSize)
	size, err := io.CopyBuffer(io.MultiWriter(h256, h512), file, buf)
	if err != nil {
		return "", "", 0, fmt.Errorf("read %s while hashing: %w", path, err)
	}

	return hex.EncodeToString(h256.Sum(nil)), hex.EncodeToString(h512.Sum(nil)), size, nil
}

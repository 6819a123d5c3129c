package config

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/zeebo/blake3"
)

// Blake3Hex returns the hex BLAKE3-256 digest of data.
func Blake3Hex(data []byte) string {
	hash := blake3.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// ComputeBlake3Hash computes the BLAKE3 hash of a file.
func ComputeBlake3Hash(filePath string) (string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	return Blake3Hex(data), nil
}

// VerifyHash checks data against an expected hex digest. An empty expected
// digest always passes.
func VerifyHash(name string, data []byte, expected string) error {
	if expected == "" {
		return nil
	}
	actual := Blake3Hex(data)
	if !strings.EqualFold(actual, expected) {
		return fmt.Errorf("hash mismatch for %s: expected %s, got %s", name, expected, actual)
	}
	return nil
}

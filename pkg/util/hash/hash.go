package hash

import (
	"crypto/sha256"
	"fmt"
	"io"
	"os"
)

// File creates the hash value of a single file
func File(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	hash := sha256.New()
	_, err = io.Copy(hash, file)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%x", hash.Sum(nil)), nil
}

// String creates the hash value of a string
func String(s string) string {
	hash := sha256.New()
	_, _ = hash.Write([]byte(s))
	return fmt.Sprintf("%x", hash.Sum(nil))
}

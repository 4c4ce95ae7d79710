package randutil

import (
	"crypto/rand"
	"encoding/base64"
	"regexp"
)

var nonAlphanumeric = regexp.MustCompile("[^a-zA-Z0-9]")

// GenerateRandomString returns a random string containing only letters and numbers
func GenerateRandomString(length int) string {
	randBytes := make([]byte, length*2)
	_, _ = rand.Read(randBytes)

	return nonAlphanumeric.ReplaceAllString(base64.URLEncoding.EncodeToString(randBytes), "")[0:length]
}

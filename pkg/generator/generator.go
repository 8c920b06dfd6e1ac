package generator

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateRandomID returns a hex-encoded random id of the given length.
func GenerateRandomID(length int) (string, error) {
	buf := make([]byte, (length+1)/2)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf)[:length], nil
}

package services

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
)

// stateBytes is the entropy of each anti-replay token
const stateBytes = 32

// GenerateState returns a URL-safe random state value for CSRF protection
func GenerateState() (string, error) {
	b := make([]byte, stateBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// statesEqual compares in constant time; an empty expected value never matches
func statesEqual(expected, got string) bool {
	if expected == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(expected), []byte(got)) == 1
}

package service

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// HashPassword returns the unsalted SHA-256 hexdigest of password. Existing
// user documents store this exact format and must keep verifying, so the
// digest stays deterministic. Identical passwords share a digest.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// VerifyPassword recomputes the digest and compares in constant time.
func VerifyPassword(password, digest string) bool {
	computed := HashPassword(password)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(digest)) == 1
}

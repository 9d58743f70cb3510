package services

import (
	"crypto/sha256"
	"encoding/hex"
)

// ContentHash returns the lowercase hex SHA-256 digest of data. Identical
// bytes always produce the identical hash, which makes it usable as a
// content-addressed cache key. It is a lookup key, not a security credential.
func ContentHash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

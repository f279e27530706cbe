package ecc

import (
	"crypto/sha256"
)

// Hash256 does two rounds of SHA256 hashing. Callers that layer signing or
// addressing on top of this package conventionally hash their payloads with
// it before use.
func Hash256(data []byte) []byte {
	h := sha256.Sum256(data)
	h1 := sha256.Sum256(h[:])
	return h1[:]
}

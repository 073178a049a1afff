package utils // package utils provides helper functions for token minting and hashing

import (
	"crypto/rand"   // secure random number generation
	"encoding/hex"  // hex encoding of the random bytes
)

// tokenBytes is the number of random bytes in a session token.  16 bytes
// encode to 32 hex characters.
const tokenBytes = 16

// NewSessionToken returns a fresh opaque token.  The value carries no
// claims: it is only meaningful as a key into the session table, which is
// what makes it revocable by logout.
func NewSessionToken() (string, error) {
	return randomHex(tokenBytes)
}

// randomHex returns a hex-encoded string generated from n bytes of
// cryptographically secure random data.
func randomHex(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

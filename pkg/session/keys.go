package session

import (
	"crypto/rand"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"regexp"
	"time"
)

var keyPattern = regexp.MustCompile(`^[a-fA-F0-9]{40}$`)

// ValidKey reports whether key matches the fixed 40-hexadecimal-character
// session identifier format produced by GenerateKey. Case-insensitive;
// anything else (wrong length, non-hex characters, empty) is invalid.
func ValidKey(key string) bool {
	return keyPattern.MatchString(key)
}

// KeyGenerator produces a new session identifier. Implementations must emit
// identifiers accepted by ValidKey or Store.Get will silently downgrade
// lookups into fresh sessions.
type KeyGenerator func(salt string) (string, error)

// GenerateKey is the default KeyGenerator. It hashes an optional salt, the
// current wall-clock time and 30 bytes of OS entropy through SHA-1, rendered
// as 40 lowercase hex characters. Collisions between calls are accepted as
// negligible and not checked for.
//
// If the OS entropy source fails, key generation fails with ErrKeyGeneration
// rather than degrading to a weaker randomness source.
func GenerateKey(salt string) (string, error) {
	entropy := make([]byte, 30)
	if _, err := rand.Read(entropy); err != nil {
		return "", errors.Join(ErrKeyGeneration, err)
	}

	h := sha1.New()
	fmt.Fprintf(h, "%s%d", salt, time.Now().UnixNano())
	h.Write(entropy)
	return hex.EncodeToString(h.Sum(nil)), nil
}

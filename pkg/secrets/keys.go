package secrets

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

const (
	// MinKeyLength is the minimum byte length of a signing secret.
	MinKeyLength = 32

	// GeneratedKeySize is the number of random bytes produced by GenerateKey.
	GeneratedKeySize = 32
)

// Key is a single signing secret.
type Key []byte

// Keyring is an ordered set of signing keys. The first key signs, all verify.
type Keyring []Key

// NewKeyring builds a keyring from the primary secret followed by any
// previous secrets still accepted for verification. Empty previous secrets
// are skipped. Secret length is measured in UTF-8 bytes.
func NewKeyring(primary string, previous ...string) (Keyring, error) {
	if primary == "" {
		return nil, ErrMissingSecret
	}

	ring := make(Keyring, 0, 1+len(previous))
	ring = append(ring, Key(primary))
	for _, s := range previous {
		if s == "" {
			continue
		}
		ring = append(ring, Key(s))
	}

	for i, k := range ring {
		if len(k) < MinKeyLength {
			return nil, fmt.Errorf("%w: secret %d has %d bytes, need at least %d", ErrSecretTooShort, i, len(k), MinKeyLength)
		}
	}

	return ring, nil
}

// Primary returns the key used for signing, or nil for an empty ring.
func (r Keyring) Primary() Key {
	if len(r) == 0 {
		return nil
	}
	return r[0]
}

// Len returns the number of keys in the ring.
func (r Keyring) Len() int {
	return len(r)
}

// GenerateKey returns GeneratedKeySize bytes from crypto/rand encoded with
// standard base64. The result is suitable as SESSION_COOKIE_SECRET.
func GenerateKey() (string, error) {
	key := make([]byte, GeneratedKeySize)
	if _, err := rand.Read(key); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(key), nil
}

// Package password derives and verifies salted password hashes with
// PBKDF2-HMAC-SHA256.
package password

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"

	"github.com/dmitrijs2005/moviecategories/internal/common"
	"golang.org/x/crypto/pbkdf2"
)

const (
	// DefaultIterations is the PBKDF2 work factor used by NewHasher.
	DefaultIterations = 100_000
	// SaltSize is the length of the random salt in bytes.
	SaltSize = 16
	// KeySize is the length of the derived key in bytes.
	KeySize = 32
)

// Hasher is safe for concurrent use.
type Hasher struct {
	iterations int
}

// NewHasher returns a Hasher using DefaultIterations.
func NewHasher() *Hasher {
	return &Hasher{iterations: DefaultIterations}
}

// NewHasherWithIterations is meant for tests; production code uses NewHasher.
func NewHasherWithIterations(iterations int) *Hasher {
	return &Hasher{iterations: iterations}
}

// Hash returns the base64-encoded derived key and the base64-encoded random
// salt it was derived with.
func (h *Hasher) Hash(password string) (hash string, salt string, err error) {
	saltBytes, err := common.GenerateRandByteArray(SaltSize)
	if err != nil {
		return "", "", fmt.Errorf("salt generation: %w", err)
	}

	key := h.derive(password, saltBytes)
	defer common.WipeByteArray(key)

	return base64.StdEncoding.EncodeToString(key), base64.StdEncoding.EncodeToString(saltBytes), nil
}

// Verify reports whether candidate matches hash under salt. Undecodable input
// yields false, same as a mismatch.
func (h *Hasher) Verify(hash string, salt string, candidate string) bool {
	expected, err := base64.StdEncoding.DecodeString(hash)
	if err != nil || len(expected) != KeySize {
		return false
	}
	saltBytes, err := base64.StdEncoding.DecodeString(salt)
	if err != nil || len(saltBytes) == 0 {
		return false
	}

	key := h.derive(candidate, saltBytes)
	defer common.WipeByteArray(key)

	return subtle.ConstantTimeCompare(expected, key) == 1
}

func (h *Hasher) derive(password string, salt []byte) []byte {
	return pbkdf2.Key([]byte(password), salt, h.iterations, KeySize, sha256.New)
}

package password

import (
	"crypto/sha256"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/pbkdf2"
)

// fast keeps the suite quick; the algorithm is identical to production.
func fast() *Hasher { return NewHasherWithIterations(1000) }

func TestNewHasher_Defaults(t *testing.T) {
	assert.Equal(t, 100_000, NewHasher().iterations)
}

func TestHash_Shape(t *testing.T) {
	t.Parallel()

	hash, salt, err := fast().Hash("pw1")
	require.NoError(t, err)

	rawHash, err := base64.StdEncoding.DecodeString(hash)
	require.NoError(t, err)
	assert.Len(t, rawHash, KeySize)

	rawSalt, err := base64.StdEncoding.DecodeString(salt)
	require.NoError(t, err)
	assert.Len(t, rawSalt, SaltSize)
}

func TestHash_MatchesReferenceDerivation(t *testing.T) {
	t.Parallel()

	h := NewHasher()
	hash, salt, err := h.Hash("correct horse")
	require.NoError(t, err)

	rawSalt, _ := base64.StdEncoding.DecodeString(salt)
	want := pbkdf2.Key([]byte("correct horse"), rawSalt, 100_000, 32, sha256.New)
	assert.Equal(t, base64.StdEncoding.EncodeToString(want), hash)
}

func TestHash_RandomSalt(t *testing.T) {
	t.Parallel()

	h := fast()
	hash1, salt1, err := h.Hash("same")
	require.NoError(t, err)
	hash2, salt2, err := h.Hash("same")
	require.NoError(t, err)

	assert.NotEqual(t, salt1, salt2)
	assert.NotEqual(t, hash1, hash2)
}

func TestVerify(t *testing.T) {
	t.Parallel()

	h := fast()
	hash, salt, err := h.Hash("pw1")
	require.NoError(t, err)

	tests := []struct {
		name      string
		hash      string
		salt      string
		candidate string
		want      bool
	}{
		{name: "correct password", hash: hash, salt: salt, candidate: "pw1", want: true},
		{name: "wrong password", hash: hash, salt: salt, candidate: "pw2", want: false},
		{name: "empty candidate", hash: hash, salt: salt, candidate: "", want: false},
		{name: "hash not base64", hash: "%%%", salt: salt, candidate: "pw1", want: false},
		{name: "salt not base64", hash: hash, salt: "%%%", candidate: "pw1", want: false},
		{name: "empty salt", hash: hash, salt: "", candidate: "pw1", want: false},
		{name: "truncated hash", hash: base64.StdEncoding.EncodeToString([]byte("short")), salt: salt, candidate: "pw1", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, h.Verify(tt.hash, tt.salt, tt.candidate))
		})
	}
}

func TestVerify_DifferentIterationsDoNotMatch(t *testing.T) {
	t.Parallel()

	hash, salt, err := NewHasherWithIterations(1000).Hash("pw1")
	require.NoError(t, err)

	assert.False(t, NewHasherWithIterations(1001).Verify(hash, salt, "pw1"))
}

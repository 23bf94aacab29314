package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHasher_HashAndVerify(t *testing.T) {
	t.Parallel()

	h := NewHasher(bcrypt.MinCost)

	hashed, err := h.Hash("correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, hashed)
	assert.NotContains(t, hashed, "correct horse battery staple")

	ok, err := h.Verify("correct horse battery staple", hashed)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestHasher_VerifyWrongPassword(t *testing.T) {
	t.Parallel()

	h := NewHasher(bcrypt.MinCost)

	hashed, err := h.Hash("right")
	require.NoError(t, err)

	ok, err := h.Verify("wrong", hashed)
	require.NoError(t, err, "a mismatch is a normal false result, not an error")
	assert.False(t, ok)
}

func TestHasher_SaltedPerCall(t *testing.T) {
	t.Parallel()

	h := NewHasher(bcrypt.MinCost)

	first, err := h.Hash("same password")
	require.NoError(t, err)
	second, err := h.Hash("same password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "each hash must carry a fresh salt")
}

func TestHasher_VerifyMalformedHash(t *testing.T) {
	t.Parallel()

	h := NewHasher(bcrypt.MinCost)

	ok, err := h.Verify("anything", "not-a-bcrypt-blob")
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrBadHash)
}

func TestNewHasher_ClampsInvalidCost(t *testing.T) {
	t.Parallel()

	h := NewHasher(1000)

	hashed, err := h.Hash("pw")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hashed))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}

package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	t.Run("produces a verifiable bcrypt hash", func(t *testing.T) {
		hash, err := HashPassword("secret123", bcrypt.MinCost)
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(hash, "$2a$"))
		assert.True(t, VerifyPassword(hash, "secret123"))
	})

	t.Run("same password hashes differently each time", func(t *testing.T) {
		first, err := HashPassword("secret123", bcrypt.MinCost)
		require.NoError(t, err)
		second, err := HashPassword("secret123", bcrypt.MinCost)
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})

	t.Run("rejects passwords over the bcrypt length limit", func(t *testing.T) {
		_, err := HashPassword(strings.Repeat("x", 73), bcrypt.MinCost)
		assert.Error(t, err)
	})
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("secret123", bcrypt.MinCost)
	require.NoError(t, err)

	t.Run("wrong password", func(t *testing.T) {
		assert.False(t, VerifyPassword(hash, "wrong"))
	})

	t.Run("garbage hash", func(t *testing.T) {
		assert.False(t, VerifyPassword("not-a-hash", "secret123"))
	})
}

package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"creatorhub/internal/apperr"
)

func TestValidatePassword(t *testing.T) {
	t.Run("exactly 72 bytes accepted", func(t *testing.T) {
		assert.NoError(t, ValidatePassword(strings.Repeat("a", 72)))
	})

	t.Run("73 bytes rejected", func(t *testing.T) {
		err := ValidatePassword(strings.Repeat("a", 73))
		var appErr *apperr.Error
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.Status)
	})

	t.Run("7 characters rejected", func(t *testing.T) {
		err := ValidatePassword("short77")
		var appErr *apperr.Error
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.Status)
	})

	t.Run("8 characters accepted", func(t *testing.T) {
		assert.NoError(t, ValidatePassword("exactly8"))
	})
}

func TestPasswordHasher(t *testing.T) {
	hasher := PasswordHasher{Cost: 4} // minimum cost for fast tests

	hash, err := hasher.Hash("correct horse battery")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery", hash)

	assert.True(t, hasher.Verify("correct horse battery", hash))
	assert.False(t, hasher.Verify("wrong password", hash))
	assert.False(t, hasher.Verify("", hash))
}

func TestPasswordHasherRejectsOversizedInput(t *testing.T) {
	hasher := PasswordHasher{Cost: 4}

	_, err := hasher.Hash(strings.Repeat("x", 73))
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Status)
}

func TestPasswordHashesAreSalted(t *testing.T) {
	hasher := PasswordHasher{Cost: 4}

	a, err := hasher.Hash("same password!")
	require.NoError(t, err)
	b, err := hasher.Hash("same password!")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

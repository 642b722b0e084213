package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("pw1", 4)
	require.NoError(t, err)

	assert.True(t, VerifyPassword(hash, "pw1"))
	assert.False(t, VerifyPassword(hash, "wrong"))
}

func TestHashPassword_SaltsDiffer(t *testing.T) {
	first, err := HashPassword("pw1", 4)
	require.NoError(t, err)
	second, err := HashPassword("pw1", 4)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, VerifyPassword(first, "pw1"))
	assert.True(t, VerifyPassword(second, "pw1"))
}

func TestVerifyPassword_GarbageHash(t *testing.T) {
	assert.False(t, VerifyPassword("not-a-bcrypt-hash", "pw1"))
}

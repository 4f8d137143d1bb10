package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)

	assert.NotEqual(t, "secret123", hash)
	assert.NotContains(t, hash, "secret123")
	assert.True(t, CheckPasswordHash("secret123", hash))
	assert.False(t, CheckPasswordHash("secret124", hash))

	// salted: same input, different hash
	other, err := HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, hash, other)
}

func TestCheckPasswordHash_Garbage(t *testing.T) {
	assert.False(t, CheckPasswordHash("secret123", "not-a-hash"))
}

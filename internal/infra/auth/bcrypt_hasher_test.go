package auth

import (
	"testing"

	"catalog/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHasher() *bcryptHasher {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:        4, // Minimum cost keeps the test fast.
			MinPasswordLength: 6,
		},
	}

	return NewBcryptHasher(cfg).(*bcryptHasher)
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := newTestHasher()

	hash, err := hasher.Hash("correct horse battery")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "correct horse battery", hash)

	assert.True(t, hasher.Check("correct horse battery", hash))
	assert.False(t, hasher.Check("wrong password", hash))
}

func TestBcryptHasher_HashesAreSalted(t *testing.T) {
	hasher := newTestHasher()

	first, err := hasher.Hash("samepassword")
	require.NoError(t, err)
	second, err := hasher.Hash("samepassword")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBcryptHasher_Check_InvalidHash(t *testing.T) {
	hasher := newTestHasher()

	assert.False(t, hasher.Check("anything", "not-a-bcrypt-hash"))
}

func TestBcryptHasher_ValidateStrength(t *testing.T) {
	hasher := newTestHasher()

	require.NoError(t, hasher.ValidateStrength("longenough"))
	require.NoError(t, hasher.ValidateStrength("sixsix"))
	require.Error(t, hasher.ValidateStrength("short"))
	require.Error(t, hasher.ValidateStrength(""))
}

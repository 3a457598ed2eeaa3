package auth_test

import (
	"testing"

	"petadoption/internal/adapters/out/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptPasswordHasher_HashAndVerify(t *testing.T) {
	hasher := auth.NewBcryptPasswordHasher(4)

	hash, err := hasher.Hash("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)

	assert.True(t, hasher.Verify("s3cret", hash))
	assert.False(t, hasher.Verify("wrong", hash))
}

func TestBcryptPasswordHasher_HashesAreSalted(t *testing.T) {
	hasher := auth.NewBcryptPasswordHasher(4)

	first, err := hasher.Hash("s3cret")
	require.NoError(t, err)
	second, err := hasher.Hash("s3cret")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Verify("s3cret", first))
	assert.True(t, hasher.Verify("s3cret", second))
}

func TestNewBcryptPasswordHasher_InvalidCostFallsBack(t *testing.T) {
	hasher := auth.NewBcryptPasswordHasher(1000)

	hash, err := hasher.Hash("s3cret")
	require.NoError(t, err)
	assert.True(t, hasher.Verify("s3cret", hash))
}

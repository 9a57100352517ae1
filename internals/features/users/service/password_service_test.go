// file: internals/features/users/service/password_service_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("rahasia-banget")
	require.NoError(t, err)
	assert.NotEqual(t, "rahasia-banget", hash)

	assert.True(t, CheckPasswordHash("rahasia-banget", hash))
	assert.False(t, CheckPasswordHash("rahasia-salah", hash))
	assert.False(t, CheckPasswordHash("rahasia-banget", "bukan-hash"))
}

func TestHashPassword_UniqueSalt(t *testing.T) {
	h1, err := HashPassword("sama")
	require.NoError(t, err)
	h2, err := HashPassword("sama")
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}

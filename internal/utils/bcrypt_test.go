package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	password := "password123"
	hashedPassword, err := HashPassword(password)

	assert.NoError(t, err)
	assert.NotEmpty(t, hashedPassword)
	assert.NotEqual(t, password, hashedPassword)
}

func TestHashPassword_FreshSaltEachCall(t *testing.T) {
	first, err := HashPassword("secret123")
	require.NoError(t, err)
	second, err := HashPassword("secret123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, CheckPasswordHash("secret123", first))
	assert.True(t, CheckPasswordHash("secret123", second))
}

func TestCheckPasswordHash(t *testing.T) {
	password := "password123"
	hashedPassword, _ := HashPassword(password)

	assert.True(t, CheckPasswordHash(password, hashedPassword))
	assert.False(t, CheckPasswordHash("wrongpassword", hashedPassword))
	assert.False(t, CheckPasswordHash("", hashedPassword))
}

func TestCheckPasswordHash_InvalidHash(t *testing.T) {
	assert.False(t, CheckPasswordHash("password123", "invalidhash"))
	assert.False(t, CheckPasswordHash("password123", ""))
}

func TestHashPassword_LimitCountsBytes(t *testing.T) {
	// 25 runes, 75 bytes
	multibyte := strings.Repeat("€", 25)
	_, err := HashPassword(multibyte)
	assert.ErrorIs(t, err, ErrPasswordTooLong)

	_, err = HashPassword(strings.Repeat("a", MaxPasswordBytes))
	assert.NoError(t, err)
}

package security_test

import (
	"testing"
	"time"

	"docshelf-backend/internal/security"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestTokenManager_RoundTrip(t *testing.T) {
	tm := security.NewTokenManager(testSecret, time.Hour)

	token, err := tm.GenerateAccessToken("user-1", "root", []string{"admin"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tm.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "root", claims.Username)
	assert.True(t, claims.HasRole("admin"))
	assert.False(t, claims.HasRole("user"))
}

func TestTokenManager_ExpiredToken(t *testing.T) {
	tm := security.NewTokenManager(testSecret, -time.Minute)

	token, err := tm.GenerateAccessToken("user-1", "root", nil)
	require.NoError(t, err)

	_, err = tm.ValidateToken(token)
	assert.ErrorIs(t, err, security.ErrExpiredToken)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	tm := security.NewTokenManager(testSecret, time.Hour)
	other := security.NewTokenManager("another-32-character-secret-value!!", time.Hour)

	token, err := tm.GenerateAccessToken("user-1", "root", nil)
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, security.ErrInvalidToken)
}

func TestTokenManager_Garbage(t *testing.T) {
	tm := security.NewTokenManager(testSecret, time.Hour)

	_, err := tm.ValidateToken("not-a-jwt")
	assert.ErrorIs(t, err, security.ErrInvalidToken)
}

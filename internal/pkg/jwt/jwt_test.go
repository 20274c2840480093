package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testService() Service {
	return NewJWTService("test-secret-key", "1h", "24h")
}

func TestAccessTokenClaims(t *testing.T) {
	svc := testService()

	tokenString, expiresAt, err := svc.GenerateAccessToken("user-1", "a@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)
	assert.Positive(t, expiresAt)

	token, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	userID, _ := token.Get("user_id")
	assert.Equal(t, "user-1", userID)
	tokenType, _ := token.Get("type")
	assert.Equal(t, "access", tokenType)
}

func TestParseRefreshToken(t *testing.T) {
	svc := testService()

	refresh, _, err := svc.GenerateRefreshToken("user-2")
	require.NoError(t, err)

	userID, err := svc.ParseRefreshToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, "user-2", userID)

	// An access token is not accepted on the refresh path.
	access, _, err := svc.GenerateAccessToken("user-2", "b@example.com")
	require.NoError(t, err)
	_, err = svc.ParseRefreshToken(access)
	assert.Error(t, err)
}

func TestRevocation(t *testing.T) {
	svc := testService()

	refresh, _, err := svc.GenerateRefreshToken("user-3")
	require.NoError(t, err)

	assert.False(t, svc.IsTokenRevoked(refresh))
	svc.RevokeToken(refresh)
	assert.True(t, svc.IsTokenRevoked(refresh))
}

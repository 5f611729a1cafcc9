package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestManager() *TokenManager {
	return NewTokenManager("test-secret", time.Hour, 24*time.Hour)
}

func TestAccessTokenRoundTrip(t *testing.T) {
	t.Parallel()

	m := newTestManager()
	token, err := m.GenerateToken("user-123", "worker")
	assert.NoError(t, err)

	claims, err := m.ParseToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "worker", claims.Role)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	t.Parallel()

	m := newTestManager()
	token, err := m.GenerateRefreshToken("user-123", "admin")
	assert.NoError(t, err)

	claims, err := m.ParseRefreshToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, TokenTypeRefresh, claims.TokenType)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	t.Parallel()

	token, err := newTestManager().GenerateToken("user-123", "worker")
	assert.NoError(t, err)

	other := NewTokenManager("different-secret", time.Hour, 24*time.Hour)
	_, err = other.ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	t.Parallel()

	m := NewTokenManager("test-secret", -time.Minute, 24*time.Hour)
	token, err := m.GenerateToken("user-123", "worker")
	assert.NoError(t, err)

	_, err = m.ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsWrongTokenType(t *testing.T) {
	t.Parallel()

	m := newTestManager()

	refresh, err := m.GenerateRefreshToken("user-123", "worker")
	assert.NoError(t, err)
	_, err = m.ParseToken(refresh)
	assert.ErrorIs(t, err, ErrWrongTokenType)

	access, err := m.GenerateToken("user-123", "worker")
	assert.NoError(t, err)
	_, err = m.ParseRefreshToken(access)
	assert.ErrorIs(t, err, ErrWrongTokenType)
}

func TestParseRejectsGarbage(t *testing.T) {
	t.Parallel()

	_, err := newTestManager().ParseToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	return NewJWTService("test-secret", "15m", "168h")
}

func TestRevokeToken_TrackedUntilExpiry(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)

	token, expiresAt, err := svc.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	svc.RevokeToken(token)
	assert.True(t, svc.IsTokenRevoked(token))

	// Still within the token's lifetime, nothing to sweep.
	assert.Zero(t, svc.SweepRevokedTokens(time.Now()))
	assert.True(t, svc.IsTokenRevoked(token))

	// Once the token itself has expired the entry is dead weight.
	afterExpiry := time.Unix(expiresAt, 0).Add(time.Minute)
	assert.Equal(t, 1, svc.SweepRevokedTokens(afterExpiry))
	assert.False(t, svc.IsTokenRevoked(token))
}

func TestRevokeToken_IgnoresUndecodableTokens(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)

	svc.RevokeToken("not-a-jwt")
	assert.False(t, svc.IsTokenRevoked("not-a-jwt"))
	assert.Zero(t, svc.SweepRevokedTokens(time.Now().Add(24*time.Hour)))
}

func TestSweepRevokedTokens_KeepsUnexpiredEntries(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)

	first, _, err := svc.GenerateRefreshToken("user-1")
	require.NoError(t, err)
	second, _, err := svc.GenerateRefreshToken("user-2")
	require.NoError(t, err)

	svc.RevokeToken(first)
	svc.RevokeToken(second)

	assert.Zero(t, svc.SweepRevokedTokens(time.Now()))
	assert.True(t, svc.IsTokenRevoked(first))
	assert.True(t, svc.IsTokenRevoked(second))
}

package jwt_test

import (
	"context"
	"testing"
	"time"

	appjwt "studio-api/internal/jwt"
	"studio-api/internal/model"

	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateTokens(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	user := &model.User{ID: 42, Email: "admin@studio.dev", IsAdmin: true}

	access, refresh, err := appjwt.GenerateTokens(user)
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)
	require.NotEqual(t, access, refresh)

	claims, err := appjwt.ValidateToken(access)
	require.NoError(t, err)
	require.Equal(t, "42", claims["sub"])
	require.Equal(t, appjwt.TokenTypeAccess, claims["typ"])
	require.Equal(t, true, claims["is_admin"])
	require.NotEmpty(t, claims["jti"])

	refreshClaims, err := appjwt.ValidateToken(refresh)
	require.NoError(t, err)
	require.Equal(t, appjwt.TokenTypeRefresh, refreshClaims["typ"])
}

func TestValidateToken_WrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret-one")
	access, _, err := appjwt.GenerateTokens(&model.User{ID: 1, Email: "a@b.com"})
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "secret-two")
	_, err = appjwt.ValidateToken(access)
	require.Error(t, err)
}

func TestClaimExpiry(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	access, _, err := appjwt.GenerateTokens(&model.User{ID: 1, Email: "a@b.com"})
	require.NoError(t, err)

	claims, err := appjwt.ValidateToken(access)
	require.NoError(t, err)

	remaining := appjwt.ClaimExpiry(claims)
	require.Greater(t, remaining, time.Minute*25)
	require.LessOrEqual(t, remaining, appjwt.AccessTokenTTL)
}

func TestMemoryBlacklist(t *testing.T) {
	bl := appjwt.NewMemoryBlacklist()
	ctx := context.Background()

	found, err := bl.Contains(ctx, "missing")
	require.NoError(t, err)
	require.False(t, found)

	require.NoError(t, bl.Add(ctx, "revoked", time.Minute))
	found, err = bl.Contains(ctx, "revoked")
	require.NoError(t, err)
	require.True(t, found)

	// zero ttl entries are never stored
	require.NoError(t, bl.Add(ctx, "expired", 0))
	found, err = bl.Contains(ctx, "expired")
	require.NoError(t, err)
	require.False(t, found)
}

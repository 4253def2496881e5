package auth_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskmaster/api/internal/config"
	"github.com/taskmaster/api/internal/mocks"
	"github.com/taskmaster/api/internal/service/auth"
)

const testSecret = "test-secret-key-thats-32-characters"

func newTestService(t *testing.T, lifetimeMinutes int, revocations *mocks.MockRevocationStore) auth.JWTService {
	t.Helper()
	svc, err := auth.NewJWTService(config.AuthConfig{
		JWTSecret:            testSecret,
		TokenLifetimeMinutes: lifetimeMinutes,
	}, revocations)
	require.NoError(t, err)
	return svc
}

func TestNewJWTService(t *testing.T) {
	t.Parallel()

	t.Run("rejects short secret", func(t *testing.T) {
		t.Parallel()
		_, err := auth.NewJWTService(config.AuthConfig{
			JWTSecret:            "too-short",
			TokenLifetimeMinutes: 60,
		}, mocks.NewMockRevocationStore())
		assert.Error(t, err)
	})

	t.Run("rejects nil revocation store", func(t *testing.T) {
		t.Parallel()
		_, err := auth.NewJWTService(config.AuthConfig{
			JWTSecret:            testSecret,
			TokenLifetimeMinutes: 60,
		}, nil)
		assert.Error(t, err)
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := newTestService(t, 60, mocks.NewMockRevocationStore())
	userID := uuid.New()

	token, err := svc.GenerateToken(ctx, userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.NotEmpty(t, claims.ID)
	assert.True(t, claims.ExpiresAt.After(claims.IssuedAt))

	// Each token carries a distinct jti.
	token2, err := svc.GenerateToken(ctx, userID)
	require.NoError(t, err)
	claims2, err := svc.ValidateToken(ctx, token2)
	require.NoError(t, err)
	assert.NotEqual(t, claims.ID, claims2.ID)
}

func TestValidateTokenFailures(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("garbage token", func(t *testing.T) {
		t.Parallel()
		svc := newTestService(t, 60, mocks.NewMockRevocationStore())
		_, err := svc.ValidateToken(ctx, "not-a-token")
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("wrong signing key", func(t *testing.T) {
		t.Parallel()
		svc := newTestService(t, 60, mocks.NewMockRevocationStore())
		other, err := auth.NewJWTService(config.AuthConfig{
			JWTSecret:            "another-secret-key-32-characters!",
			TokenLifetimeMinutes: 60,
		}, mocks.NewMockRevocationStore())
		require.NoError(t, err)

		token, err := other.GenerateToken(ctx, uuid.New())
		require.NoError(t, err)

		_, err = svc.ValidateToken(ctx, token)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		t.Parallel()
		// A negative lifetime puts the expiry beyond the clock skew
		// allowance straight away.
		svc := newTestService(t, -5, mocks.NewMockRevocationStore())
		token, err := svc.GenerateToken(ctx, uuid.New())
		require.NoError(t, err)

		_, err = svc.ValidateToken(ctx, token)
		assert.ErrorIs(t, err, auth.ErrExpiredToken)
	})
}

func TestRevokeToken(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	revocations := mocks.NewMockRevocationStore()
	svc := newTestService(t, 60, revocations)

	token, err := svc.GenerateToken(ctx, uuid.New())
	require.NoError(t, err)

	// Valid before revocation.
	claims, err := svc.ValidateToken(ctx, token)
	require.NoError(t, err)

	require.NoError(t, svc.RevokeToken(ctx, token))

	// The jti is now on the revocation list and validation fails even
	// though the token itself has not expired.
	_, err = svc.ValidateToken(ctx, token)
	assert.ErrorIs(t, err, auth.ErrRevokedToken)

	jti, err := uuid.Parse(claims.ID)
	require.NoError(t, err)
	assert.Contains(t, revocations.Revoked, jti)

	// Revoking again is a no-op, not an error.
	assert.NoError(t, svc.RevokeToken(ctx, token))
}

func TestRevokeTokenRejectsInvalid(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, 60, mocks.NewMockRevocationStore())
	err := svc.RevokeToken(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

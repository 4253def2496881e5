package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/taskmaster/api/internal/config"
	"github.com/taskmaster/api/internal/platform/logger"
	"github.com/taskmaster/api/internal/store"
)

// hmacJWTService implements JWTService using HMAC-SHA256 signing and a
// persisted revocation list.
type hmacJWTService struct {
	signingKey    []byte
	tokenLifetime time.Duration
	revocations   store.RevocationStore
	timeFunc      func() time.Time // Injectable for testing
	clockSkew     time.Duration    // Leeway for clock drift during validation
}

// jwtCustomClaims is the wire shape of our token claims.
type jwtCustomClaims struct {
	UserID uuid.UUID `json:"uid"`
	jwt.RegisteredClaims
}

var _ JWTService = (*hmacJWTService)(nil)

// NewJWTService creates a JWT service using HMAC-SHA256 signing. Tokens
// it validates are additionally checked against the given revocation
// store.
func NewJWTService(cfg config.AuthConfig, revocations store.RevocationStore) (JWTService, error) {
	if len(cfg.JWTSecret) < 32 {
		return nil, fmt.Errorf("jwt secret must be at least 32 characters")
	}
	if revocations == nil {
		return nil, fmt.Errorf("revocation store is required")
	}

	return &hmacJWTService{
		signingKey:    []byte(cfg.JWTSecret),
		tokenLifetime: time.Duration(cfg.TokenLifetimeMinutes) * time.Minute,
		revocations:   revocations,
		timeFunc:      time.Now,
		clockSkew:     2 * time.Minute,
	}, nil
}

// GenerateToken implements JWTService.GenerateToken.
func (s *hmacJWTService) GenerateToken(ctx context.Context, userID uuid.UUID) (string, error) {
	log := logger.FromContext(ctx)
	now := s.timeFunc()

	claims := jwtCustomClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenLifetime)),
			ID:        uuid.New().String(), // Unique token ID, the revocation handle
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(s.signingKey)
	if err != nil {
		log.Error("failed to sign token",
			"error", err,
			"user_id", userID)
		return "", fmt.Errorf("failed to sign token with HMAC-SHA256: %w", err)
	}

	return signedToken, nil
}

// ValidateToken implements JWTService.ValidateToken.
func (s *hmacJWTService) ValidateToken(ctx context.Context, tokenString string) (*Claims, error) {
	log := logger.FromContext(ctx)

	claims, err := s.parse(ctx, tokenString)
	if err != nil {
		return nil, err
	}

	jti, err := uuid.Parse(claims.ID)
	if err != nil {
		log.Debug("token validation failed: malformed jti",
			"error", err)
		return nil, ErrInvalidToken
	}

	revoked, err := s.revocations.IsRevoked(ctx, jti)
	if err != nil {
		log.Error("failed to check token revocation",
			"error", err,
			"jti", claims.ID)
		return nil, fmt.Errorf("failed to check token revocation: %w", err)
	}
	if revoked {
		log.Debug("token validation failed: token revoked",
			"jti", claims.ID,
			"user_id", claims.UserID)
		return nil, ErrRevokedToken
	}

	return claims, nil
}

// RevokeToken implements JWTService.RevokeToken. The token must still
// parse and verify; its jti is then blocklisted. Inserting an existing
// jti is a no-op, which makes revocation idempotent.
func (s *hmacJWTService) RevokeToken(ctx context.Context, tokenString string) error {
	log := logger.FromContext(ctx)

	claims, err := s.parse(ctx, tokenString)
	if err != nil {
		return err
	}

	jti, err := uuid.Parse(claims.ID)
	if err != nil {
		log.Debug("token revocation failed: malformed jti",
			"error", err)
		return ErrInvalidToken
	}

	if err := s.revocations.Revoke(ctx, jti, s.timeFunc().UTC()); err != nil {
		log.Error("failed to record token revocation",
			"error", err,
			"jti", claims.ID)
		return fmt.Errorf("failed to record token revocation: %w", err)
	}

	log.Info("token revoked",
		"jti", claims.ID,
		"user_id", claims.UserID)
	return nil
}

// parse verifies the token's signature and time claims and extracts
// them. Revocation is handled by the callers.
func (s *hmacJWTService) parse(ctx context.Context, tokenString string) (*Claims, error) {
	log := logger.FromContext(ctx)
	now := s.timeFunc()

	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithLeeway(s.clockSkew),
		jwt.WithTimeFunc(func() time.Time { return now }),
	}

	token, err := jwt.ParseWithClaims(
		tokenString,
		&jwtCustomClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return s.signingKey, nil
		},
		parserOpts...)

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			log.Debug("token validation failed: token expired", "error", err)
			return nil, ErrExpiredToken
		case errors.Is(err, jwt.ErrTokenNotValidYet):
			log.Debug("token validation failed: token not yet valid", "error", err)
			return nil, ErrTokenNotYetValid
		default:
			log.Debug("token validation failed", "error", err)
			return nil, ErrInvalidToken
		}
	}

	claims, ok := token.Claims.(*jwtCustomClaims)
	if !ok || !token.Valid {
		log.Debug("token validation failed: invalid claims")
		return nil, ErrInvalidToken
	}

	return &Claims{
		UserID:    claims.UserID,
		ID:        claims.ID,
		IssuedAt:  claims.IssuedAt.Time,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

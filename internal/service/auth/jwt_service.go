// Package auth provides token issuing, validation and revocation plus
// password verification.
package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// JWTService defines operations for managing bearer authentication
// tokens.
type JWTService interface {
	// GenerateToken creates a signed token carrying the user's identity
	// and a unique per-token identifier (jti).
	GenerateToken(ctx context.Context, userID uuid.UUID) (string, error)

	// ValidateToken checks the token's signature, expiry and claims, then
	// consults the revocation list: a revoked jti fails with
	// ErrRevokedToken even before the token's expiry.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)

	// RevokeToken records the token's jti in the revocation list so every
	// subsequent ValidateToken call rejects it. Revoking the same token
	// twice has no additional effect.
	RevokeToken(ctx context.Context, tokenString string) error
}

// Claims is the validated content of a bearer token.
type Claims struct {
	// UserID is the user the token was issued for.
	UserID uuid.UUID `json:"sub,omitempty"`

	// ID is the token's unique identifier (jti), the handle used for
	// revocation.
	ID string `json:"jti,omitempty"`

	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
}

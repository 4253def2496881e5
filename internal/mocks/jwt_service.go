package mocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/taskmaster/api/internal/service/auth"
)

// MockJWTService implements auth.JWTService for testing.
type MockJWTService struct {
	// GenerateTokenFn allows test cases to mock the GenerateToken behavior
	GenerateTokenFn func(ctx context.Context, userID uuid.UUID) (string, error)

	// ValidateTokenFn allows test cases to mock the ValidateToken behavior
	ValidateTokenFn func(ctx context.Context, tokenString string) (*auth.Claims, error)

	// RevokeTokenFn allows test cases to mock the RevokeToken behavior
	RevokeTokenFn func(ctx context.Context, tokenString string) error

	// Default values used when functions aren't explicitly defined
	Token       string
	Err         error
	ValidateErr error
	RevokeErr   error
	Claims      *auth.Claims

	// RevokedTokens records tokens passed to RevokeToken
	RevokedTokens []string
}

// GenerateToken implements the auth.JWTService interface.
func (m *MockJWTService) GenerateToken(ctx context.Context, userID uuid.UUID) (string, error) {
	if m.GenerateTokenFn != nil {
		return m.GenerateTokenFn(ctx, userID)
	}
	return m.Token, m.Err
}

// ValidateToken implements the auth.JWTService interface.
func (m *MockJWTService) ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	if m.ValidateTokenFn != nil {
		return m.ValidateTokenFn(ctx, tokenString)
	}
	if m.ValidateErr != nil {
		return nil, m.ValidateErr
	}
	return m.Claims, nil
}

// RevokeToken implements the auth.JWTService interface.
func (m *MockJWTService) RevokeToken(ctx context.Context, tokenString string) error {
	if m.RevokeTokenFn != nil {
		return m.RevokeTokenFn(ctx, tokenString)
	}
	if m.RevokeErr != nil {
		return m.RevokeErr
	}
	m.RevokedTokens = append(m.RevokedTokens, tokenString)
	return nil
}

package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by operator access tokens.
type Claims struct {
	OperatorID uuid.UUID `json:"-"`
	Roles      []string  `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// TokenService issues and validates operator access tokens.
// Tokens are normally issued by the identity provider sharing the signing secret;
// IssueToken exists for tooling and tests.
type TokenService interface {
	// IssueToken creates a signed access token for an operator.
	IssueToken(operatorID uuid.UUID, roles []string, ttl time.Duration) (string, error)

	// ValidateToken checks the token signature and expiry and returns its claims.
	ValidateToken(tokenString string) (*Claims, error)
}

package service

import (
	"time"

	"github.com/google/uuid"
)

// Claims are the access-token claims this service relies on.
type Claims struct {
	UserID    uuid.UUID
	Roles     []string
	ExpiresAt time.Time
}

// TokenService validates access tokens issued by the auth service, which shares the HMAC secret.
type TokenService interface {
	// ValidateAccessToken parses and verifies an access token.
	ValidateAccessToken(tokenString string) (*Claims, error)

	// GenerateAccessToken mints an access token. Used by tooling and tests.
	GenerateAccessToken(userID uuid.UUID, roles []string) (string, error)
}

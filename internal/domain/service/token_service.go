package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims are the validated contents of an admin token.
type Claims struct {
	UserID uuid.UUID
	Roles  []string
	Type   string
	jwt.RegisteredClaims
}

// TokenService issues and validates admin JWTs.
type TokenService interface {
	GenerateTokens(userID uuid.UUID, roles []string) (accessToken string, refreshToken string, err error)

	// ValidateToken verifies signature and expiry. Callers check Type.
	ValidateToken(tokenString string) (*Claims, error)

	GetAccessTokenDuration() time.Duration
}

package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims for operator access tokens.
type Claims struct {
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating operator JWTs.
type TokenService interface {
	// GenerateToken creates an access token for subject with roles.
	GenerateToken(subject string, roles []string) (string, time.Time, error)

	// ValidateToken parses and verifies a token string.
	ValidateToken(tokenString string) (*Claims, error)
}

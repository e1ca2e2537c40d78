package service

import (
	"errors"
	"time"

	"surveyor/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken covers bad signatures, wrong algorithms, and malformed or incomplete tokens.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken is returned once the current time reaches the token's expiry.
	ErrExpiredToken = errors.New("token expired")
)

// Claims defines the custom claims for session tokens.
type Claims struct {
	Email             string         `json:"email"`
	Variant           entity.Variant `json:"variant"`
	CredentialVersion int            `json:"ver"`
	jwt.RegisteredClaims
}

// TokenSubject is what a session token asserts about its bearer.
type TokenSubject struct {
	Email             string
	Variant           entity.Variant
	CredentialVersion int
}

// TokenService issues and decodes signed, expiring session tokens.
type TokenService interface {
	// Issue signs a token for subject that expires lifetime after now.
	Issue(subject TokenSubject, lifetime time.Duration) (string, error)

	// Decode verifies the token and returns its claims.
	// Expiry is reported as ErrExpiredToken, every other failure as ErrInvalidToken.
	Decode(token string) (*Claims, error)
}

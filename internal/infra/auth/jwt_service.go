package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"surveyor/config"
	domainerrors "surveyor/internal/domain/errors"
	"surveyor/internal/domain/service"
	"surveyor/internal/errors"
)

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	secret []byte
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
// The signing secret comes from secretKey.session.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Session == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return newJWTService(cfg.SecretKey.Session, time.Now), nil
}

// NewJWTServiceWithClock builds a TokenService that reads the current time from now.
func NewJWTServiceWithClock(secret string, now func() time.Time) service.TokenService {
	return newJWTService(secret, now)
}

func newJWTService(secret string, now func() time.Time) *jwtService {
	return &jwtService{
		secret: []byte(secret),
		now:    now,
	}
}

// Issue signs a session token for subject.
func (s *jwtService) Issue(subject service.TokenSubject, lifetime time.Duration) (string, error) {
	if subject.Email == "" {
		return "", errors.Wrap(domainerrors.ErrInvalidInput.WithDetails("token subject must have an email"), "issue token")
	}
	if lifetime <= 0 {
		return "", errors.Wrap(domainerrors.ErrInvalidInput.WithDetails("token lifetime must be positive"), "issue token")
	}

	now := s.now()
	claims := &service.Claims{
		Email:             subject.Email,
		Variant:           subject.Variant,
		CredentialVersion: subject.CredentialVersion,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(lifetime)),
			ID:        uuid.NewString(), // Two tokens issued in the same second still differ.
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}

	return signed, nil
}

// Decode verifies signature, algorithm and expiry and returns the token's claims.
func (s *jwtService) Decode(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errors.Wrap(service.ErrExpiredToken, err.Error())
		}

		return nil, errors.Wrap(service.ErrInvalidToken, err.Error())
	}

	if claims.Email == "" {
		return nil, errors.Wrap(service.ErrInvalidToken, "token has no email claim")
	}

	return claims, nil
}

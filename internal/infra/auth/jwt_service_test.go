package auth

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"surveyor/config"
	domainerrors "surveyor/internal/domain/errors"
	"surveyor/internal/domain/entity"
	"surveyor/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_session_secret_key_very_long_for_testing"

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestJWTService() (*jwtService, *fakeClock) {
	clock := &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}

	return newJWTService(testSecret, clock.Now), clock
}

func adminSubject() service.TokenSubject {
	return service.TokenSubject{Email: "a@x.io", Variant: entity.VariantAdmin, CredentialVersion: 1}
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)

	cfg := &config.Config{}
	cfg.SecretKey.Session = testSecret
	svc, err := NewJWTService(cfg)
	require.NoError(t, err)
	assert.NotNil(t, svc)
}

func TestJWTService_IssueAndDecode(t *testing.T) {
	svc, clock := newTestJWTService()

	token, err := svc.Issue(adminSubject(), time.Hour)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.io", claims.Email)
	assert.Equal(t, entity.VariantAdmin, claims.Variant)
	assert.Equal(t, 1, claims.CredentialVersion)
	assert.Equal(t, "a@x.io", claims.Subject)
	assert.Equal(t, clock.now, claims.IssuedAt.Time.UTC())
	assert.Equal(t, clock.now.Add(time.Hour), claims.ExpiresAt.Time.UTC())
	assert.NotEmpty(t, claims.ID)
}

func TestJWTService_IssueProducesDistinctTokens(t *testing.T) {
	svc, _ := newTestJWTService()

	first, err := svc.Issue(adminSubject(), time.Hour)
	require.NoError(t, err)
	second, err := svc.Issue(adminSubject(), time.Hour)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestJWTService_IssueRejectsInvalidInput(t *testing.T) {
	svc, _ := newTestJWTService()

	_, err := svc.Issue(service.TokenSubject{Variant: entity.VariantAdmin}, time.Hour)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))

	_, err = svc.Issue(adminSubject(), 0)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
}

func TestJWTService_Expiry(t *testing.T) {
	svc, clock := newTestJWTService()

	token, err := svc.Issue(adminSubject(), 60*time.Second)
	require.NoError(t, err)

	clock.Advance(59 * time.Second)
	_, err = svc.Decode(token)
	require.NoError(t, err)

	clock.Advance(time.Second)
	_, err = svc.Decode(token)
	assert.True(t, errors.Is(err, service.ErrExpiredToken))
	assert.False(t, errors.Is(err, service.ErrInvalidToken))
}

func TestJWTService_RejectsForeignSecret(t *testing.T) {
	svc, clock := newTestJWTService()
	other := newJWTService("another_secret_key_of_reasonable_length", clock.Now)

	token, err := other.Issue(adminSubject(), time.Hour)
	require.NoError(t, err)

	_, err = svc.Decode(token)
	assert.True(t, errors.Is(err, service.ErrInvalidToken))
}

func TestJWTService_RejectsEveryFlippedSignatureBit(t *testing.T) {
	svc, _ := newTestJWTService()

	token, err := svc.Issue(adminSubject(), time.Hour)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	signature, err := base64.RawURLEncoding.DecodeString(parts[2])
	require.NoError(t, err)

	for i := 0; i < len(signature)*8; i++ {
		tampered := make([]byte, len(signature))
		copy(tampered, signature)
		tampered[i/8] ^= 1 << (i % 8)

		forged := parts[0] + "." + parts[1] + "." + base64.RawURLEncoding.EncodeToString(tampered)
		_, err := svc.Decode(forged)
		require.Truef(t, errors.Is(err, service.ErrInvalidToken), "bit %d accepted", i)
	}
}

func TestJWTService_RejectsOtherAlgorithms(t *testing.T) {
	svc, clock := newTestJWTService()

	claims := &service.Claims{
		Email:   "a@x.io",
		Variant: entity.VariantAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(clock.now),
			ExpiresAt: jwt.NewNumericDate(clock.now.Add(time.Hour)),
		},
	}

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	_, err = svc.Decode(hs512)
	assert.True(t, errors.Is(err, service.ErrInvalidToken))

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = svc.Decode(none)
	assert.True(t, errors.Is(err, service.ErrInvalidToken))
}

func TestJWTService_RejectsMissingClaims(t *testing.T) {
	svc, clock := newTestJWTService()

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &service.Claims{
		Email: "a@x.io",
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)
	_, err = svc.Decode(noExpiry)
	assert.True(t, errors.Is(err, service.ErrInvalidToken))

	noEmail, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &service.Claims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(clock.now.Add(time.Hour))},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)
	_, err = svc.Decode(noEmail)
	assert.True(t, errors.Is(err, service.ErrInvalidToken))
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	svc, _ := newTestJWTService()

	for _, token := range []string{"", "clearly-not-a-jwt-token-format", "a.b.c"} {
		claims, err := svc.Decode(token)
		assert.Nil(t, claims)
		assert.True(t, errors.Is(err, service.ErrInvalidToken), "token %q", token)
	}
}

package auth

import (
	"strings"
	"testing"

	"surveyor/config"
	domainerrors "surveyor/internal/domain/errors"
	"surveyor/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndVerify(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	hash, err := hasher.Hash("pw1")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "pw1", hash)

	ok, err := hasher.Verify("pw1", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = hasher.Verify("pw2", hash)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = hasher.Verify("", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBcryptHasher_SaltsEveryHash(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	first, err := hasher.Hash("same-password")
	require.NoError(t, err)
	second, err := hasher.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBcryptHasher_UsesConfiguredCost(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: 5}}
	hasher := NewBcryptHasher(cfg)

	hash, err := hasher.Hash("pw1")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 5, cost)
}

func TestBcryptHasher_DefaultCostWithoutConfig(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{})

	assert.Equal(t, bcrypt.DefaultCost, hasher.(*bcryptHasher).cost)
}

func TestBcryptHasher_HashRejectsInvalidInput(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	tests := []struct {
		name     string
		password string
	}{
		{name: "empty", password: ""},
		{name: "longer than 72 bytes", password: strings.Repeat("a", 73)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := hasher.Hash(tt.password)
			assert.Empty(t, hash)
			assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
		})
	}
}

func TestBcryptHasher_Accepts72Bytes(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)
	password := strings.Repeat("p", 72)

	hash, err := hasher.Hash(password)
	require.NoError(t, err)

	ok, err := hasher.Verify(password, hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = hasher.Verify(password+"x", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBcryptHasher_VerifyMalformedDigest(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	for _, digest := range []string{"", "invalid_hash", "$2a$99$" + strings.Repeat("x", 53)} {
		ok, err := hasher.Verify("pw1", digest)
		assert.False(t, ok)
		assert.True(t, errors.Is(err, service.ErrMalformedDigest), "digest %q", digest)
	}
}

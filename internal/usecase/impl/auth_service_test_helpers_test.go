package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"surveyor/config"
	"surveyor/internal/domain/entity"
	"surveyor/internal/domain/repository"
	"surveyor/internal/domain/service"
	"surveyor/internal/infra/auth"
	mockRepo "surveyor/internal/mocks/repository"
	mockSvc "surveyor/internal/mocks/service"
	"surveyor/internal/usecase"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSessionSecret = "test-session-secret"

type testClock struct {
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time { return c.now }

func (c *testClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:           bcrypt.MinCost,
			TokenLifetimeSeconds: 3600,
			EmailScope:           config.EmailScopeVariant,
		},
		Survey: &config.SurveyConfig{},
	}
	cfg.SecretKey.Session = testSessionSecret

	return cfg
}

// authFixture wires an authService to mocked persistence and real crypto.
type authFixture struct {
	txManager *mockRepo.MockTransactionManager
	factory   *mockRepo.MockRepositoryFactory
	repo      *mockRepo.MockPrincipalRepository
	publisher *mockSvc.MockEventPublisher
	hasher    service.PasswordHasher
	tokens    service.TokenService
	clock     *testClock
	service   usecase.AuthUsecase
}

type fixtureOption func(*config.Config, *AuthServiceParams)

func withConfig(mutate func(cfg *config.Config)) fixtureOption {
	return func(cfg *config.Config, _ *AuthServiceParams) { mutate(cfg) }
}

func withHasher(hasher service.PasswordHasher) fixtureOption {
	return func(_ *config.Config, params *AuthServiceParams) { params.Hasher = hasher }
}

func withTokenService(tokens service.TokenService) fixtureOption {
	return func(_ *config.Config, params *AuthServiceParams) { params.TokenService = tokens }
}

func createTestAuthService(t *testing.T, variant entity.Variant, opts ...fixtureOption) *authFixture {
	t.Helper()

	clock := newTestClock()
	f := &authFixture{
		txManager: mockRepo.NewMockTransactionManager(t),
		factory:   mockRepo.NewMockRepositoryFactory(t),
		repo:      mockRepo.NewMockPrincipalRepository(t),
		publisher: mockSvc.NewMockEventPublisher(t),
		hasher:    auth.NewBcryptHasherWithCost(bcrypt.MinCost),
		tokens:    auth.NewJWTServiceWithClock(testSessionSecret, clock.Now),
		clock:     clock,
	}

	cfg := newTestConfig()
	params := AuthServiceParams{
		TxManager:     f.txManager,
		PrincipalRepo: f.repo,
		Hasher:        f.hasher,
		TokenService:  f.tokens,
		Publisher:     f.publisher,
		Config:        cfg,
		Logger:        newDiscardLogger(),
	}
	for _, opt := range opts {
		opt(cfg, &params)
	}

	f.service = NewAuthService(variant, params)

	return f
}

// expectTransaction runs the callback against the mocked repository.
func (f *authFixture) expectTransaction(ctx context.Context) {
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(f.factory)
		}).Once()
	f.factory.EXPECT().NewPrincipalRepository().Return(f.repo).Maybe()
}

func (f *authFixture) expectEvent(eventType service.AccountEventType, email string) {
	f.publisher.EXPECT().
		PublishAccountEvent(mock.Anything, mock.MatchedBy(func(event *service.AccountEvent) bool {
			return event.Type == eventType && event.Email == email && event.EventID != ""
		})).
		Return(nil).Once()
}

// storedPrincipal builds a persisted principal whose digest matches password.
func (f *authFixture) storedPrincipal(t *testing.T, variant entity.Variant, email, password string) *entity.Principal {
	t.Helper()

	digest, err := f.hasher.Hash(password)
	require.NoError(t, err)

	return &entity.Principal{
		Variant:           variant,
		Email:             email,
		PasswordHash:      digest,
		CredentialVersion: entity.InitialCredentialVersion,
		CreatedAt:         f.clock.Now(),
		UpdatedAt:         f.clock.Now(),
	}
}

func (f *authFixture) tokenFor(t *testing.T, principal *entity.Principal) string {
	t.Helper()

	token, err := f.tokens.Issue(service.TokenSubject{
		Email:             principal.Email,
		Variant:           principal.Variant,
		CredentialVersion: principal.CredentialVersion,
	}, time.Hour)
	require.NoError(t, err)

	return token
}

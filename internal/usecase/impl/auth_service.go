// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"surveyor/config"
	deliverycontext "surveyor/internal/delivery/context"
	"surveyor/internal/domain/entity"
	domainerrors "surveyor/internal/domain/errors"
	"surveyor/internal/domain/repository"
	"surveyor/internal/domain/service"
	"surveyor/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// timingPassword feeds the dummy comparison made for unknown emails.
const timingPassword = "timing-equalizer-password"

// authService implements AuthUsecase for one principal Variant.
type authService struct {
	variant            entity.Variant
	txManager          repository.TransactionManager
	principalRepo      repository.PrincipalRepository
	hasher             service.PasswordHasher
	tokenService       service.TokenService
	publisher          service.EventPublisher
	tokenLifetime      time.Duration
	globalEmailScope   bool
	emailCaseSensitive bool
	dummyDigest        func() (string, error)
	logger             *slog.Logger
}

// AuthServiceParams holds dependencies for the auth services, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	PrincipalRepo repository.PrincipalRepository
	Hasher        service.PasswordHasher
	TokenService  service.TokenService
	Publisher     service.EventPublisher
	Config        *config.Config
	Logger        *slog.Logger
}

// NewAdminAuthService builds the AuthUsecase for administrators.
func NewAdminAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return NewAuthService(entity.VariantAdmin, params)
}

// NewCompanyAuthService builds the AuthUsecase for companies.
func NewCompanyAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return NewAuthService(entity.VariantCompany, params)
}

// NewAuthService is the constructor for authService.
func NewAuthService(variant entity.Variant, params AuthServiceParams) usecase.AuthUsecase {
	srv := &authService{
		variant:       variant,
		txManager:     params.TxManager,
		principalRepo: params.PrincipalRepo,
		hasher:        params.Hasher,
		tokenService:  params.TokenService,
		publisher:     params.Publisher,
		tokenLifetime: time.Hour,
		logger:        params.Logger,
	}

	if params.Config != nil && params.Config.Auth != nil {
		if lifetime := params.Config.Auth.TokenLifetime(); lifetime > 0 {
			srv.tokenLifetime = lifetime
		}
		srv.globalEmailScope = params.Config.Auth.GlobalEmailScope()
		srv.emailCaseSensitive = params.Config.Auth.EmailCaseSensitive
	}

	srv.dummyDigest = sync.OnceValues(func() (string, error) {
		return srv.hasher.Hash(timingPassword)
	})

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger).With(slog.String("variant", srv.variant.String()))
}

func (srv *authService) Variant() entity.Variant {
	return srv.variant
}

// Register creates a principal and issues its first token.
// The store reports duplicates: the unique index on (variant, email), and under
// global scope an email lock held for the whole transaction.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email, srv.emailCaseSensitive)
	if email == "" {
		return nil, errors.Wrap(domainerrors.ErrInvalidInput.WithDetails("email is required"), "register failed")
	}

	// bcrypt is CPU-bound, keep it outside the transaction.
	digest, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, srv.hashError(err, "register failed")
	}

	principal := &entity.Principal{
		Variant:           srv.variant,
		Email:             email,
		PasswordHash:      digest,
		CredentialVersion: entity.InitialCredentialVersion,
		Profile:           input.Profile,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		principalRepo := repoFactory.NewPrincipalRepository()

		if srv.globalEmailScope {
			// The unique index is per variant; the lock makes check-then-insert atomic across variants.
			if err := principalRepo.LockEmail(ctx, email); err != nil {
				return err
			}

			exists, err := principalRepo.ExistsByEmail(ctx, email)
			if err != nil {
				return err
			}
			if exists {
				return repository.ErrPrincipalAlreadyExists
			}
		}

		return principalRepo.Create(ctx, principal)
	})
	if err != nil {
		if errors.Is(err, repository.ErrPrincipalAlreadyExists) {
			srv.log(ctx).Info("Registration rejected, email taken", slog.String("email", email))

			return nil, errors.Wrap(domainerrors.ErrPrincipalAlreadyExists, "register failed")
		}

		return nil, storeError(err, "register failed")
	}

	output, err := srv.issue(principal)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Principal registered", slog.String("email", email))
	srv.publish(ctx, service.EventPrincipalRegistered, email)

	return output, nil
}

// Login resolves the principal by email and checks the password.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email, srv.emailCaseSensitive)

	principal, err := srv.principalRepo.FindByEmail(ctx, srv.variant, email)
	if err != nil {
		if errors.Is(err, repository.ErrPrincipalNotFound) {
			srv.equalizeTiming(input.Password)
			srv.log(ctx).Warn("Login failed: unknown email", slog.String("email", email))

			return nil, errors.Wrap(domainerrors.ErrUnauthorized, "login failed")
		}

		return nil, storeError(err, "login failed")
	}

	return srv.LoginPrincipal(ctx, input, principal)
}

// LoginPrincipal checks the password against found and issues a fresh token.
func (srv *authService) LoginPrincipal(ctx context.Context, input *usecase.LoginInput, found *entity.Principal) (*usecase.AuthOutput, error) {
	if found == nil {
		srv.equalizeTiming(input.Password)

		return nil, errors.Wrap(domainerrors.ErrUnauthorized, "login failed")
	}

	ok, err := srv.hasher.Verify(input.Password, found.PasswordHash)
	if err != nil {
		srv.log(ctx).Error("Stored password digest is unusable", slog.String("email", found.Email), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrUnauthorized, "login failed")
	}
	if !ok {
		srv.log(ctx).Warn("Login failed: wrong password", slog.String("email", found.Email))

		return nil, errors.Wrap(domainerrors.ErrUnauthorized, "login failed")
	}

	return srv.issue(found)
}

// Verify decodes the token and checks it still designates a current principal of this variant.
func (srv *authService) Verify(ctx context.Context, token string) (*usecase.VerifyOutput, error) {
	claims, err := srv.tokenService.Decode(token)
	if err != nil {
		srv.log(ctx).Debug("Token rejected", slog.String("reason", err.Error()))

		return nil, errors.Wrap(domainerrors.ErrUnauthorized, "verify failed")
	}

	if claims.Variant != srv.variant {
		srv.log(ctx).Debug("Token rejected: variant mismatch", slog.String("token_variant", claims.Variant.String()))

		return nil, errors.Wrap(domainerrors.ErrUnauthorized, "verify failed")
	}

	principal, err := srv.principalRepo.FindByEmail(ctx, srv.variant, claims.Email)
	if err != nil {
		if errors.Is(err, repository.ErrPrincipalNotFound) {
			srv.log(ctx).Debug("Token rejected: principal no longer exists", slog.String("email", claims.Email))

			return nil, errors.Wrap(domainerrors.ErrUnauthorized, "verify failed")
		}

		return nil, storeError(err, "verify failed")
	}

	if principal.CredentialVersion != claims.CredentialVersion {
		srv.log(ctx).Debug("Token rejected: issued before the last password change",
			slog.String("email", claims.Email),
			slog.Int("token_version", claims.CredentialVersion),
			slog.Int("current_version", principal.CredentialVersion),
		)

		return nil, errors.Wrap(domainerrors.ErrUnauthorized, "verify failed")
	}

	return &usecase.VerifyOutput{
		Principal: usecase.NewPrincipalView(principal),
		Claims:    claims,
	}, nil
}

func (srv *authService) VerifyBoolean(ctx context.Context, token string) bool {
	_, err := srv.Verify(ctx, token)

	return err == nil
}

// UpdatePassword stores a new digest, sets the updated flag and bumps the
// credential version so that tokens issued earlier stop verifying.
func (srv *authService) UpdatePassword(ctx context.Context, email, newPassword string) error {
	email = normalizeEmail(email, srv.emailCaseSensitive)

	digest, err := srv.hasher.Hash(newPassword)
	if err != nil {
		return srv.hashError(err, "update password failed")
	}

	updated := true
	err = srv.principalRepo.UpdateFields(ctx, srv.variant, email, repository.PrincipalFields{
		PasswordHash:          &digest,
		PasswordUpdated:       &updated,
		BumpCredentialVersion: true,
	})
	if err != nil {
		if errors.Is(err, repository.ErrPrincipalNotFound) {
			return errors.Wrap(domainerrors.ErrPrincipalNotFound, "update password failed")
		}

		return storeError(err, "update password failed")
	}

	srv.log(ctx).Info("Password updated", slog.String("email", email))
	srv.publish(ctx, service.EventPasswordUpdated, email)

	return nil
}

func (srv *authService) ChangePassword(ctx context.Context, token, newPassword string) error {
	verified, err := srv.Verify(ctx, token)
	if err != nil {
		return err
	}

	return srv.UpdatePassword(ctx, verified.Principal.Email, newPassword)
}

func (srv *authService) WasPasswordUpdated(ctx context.Context, email string) (bool, error) {
	email = normalizeEmail(email, srv.emailCaseSensitive)

	principal, err := srv.principalRepo.FindByEmail(ctx, srv.variant, email)
	if err != nil && !errors.Is(err, repository.ErrPrincipalNotFound) {
		return false, storeError(err, "password status lookup failed")
	}

	return passwordUpdatedFlag(principal)
}

func (srv *authService) List(ctx context.Context) ([]*usecase.PrincipalView, error) {
	principals, err := srv.principalRepo.ListByVariant(ctx, srv.variant)
	if err != nil {
		return nil, storeError(err, "list principals failed")
	}

	views := make([]*usecase.PrincipalView, 0, len(principals))
	for _, principal := range principals {
		views = append(views, usecase.NewPrincipalView(principal))
	}

	return views, nil
}

// --- Helper methods ---

func (srv *authService) issue(principal *entity.Principal) (*usecase.AuthOutput, error) {
	token, err := srv.tokenService.Issue(service.TokenSubject{
		Email:             principal.Email,
		Variant:           principal.Variant,
		CredentialVersion: principal.CredentialVersion,
	}, srv.tokenLifetime)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrTokenIssueFailed, err.Error())
	}

	claims, err := srv.tokenService.Decode(token)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrTokenIssueFailed, err.Error())
	}

	return &usecase.AuthOutput{
		Principal: usecase.NewPrincipalView(principal),
		Token:     token,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// equalizeTiming spends one bcrypt comparison so unknown emails take as long as wrong passwords.
func (srv *authService) equalizeTiming(password string) {
	digest, err := srv.dummyDigest()
	if err != nil {
		return
	}

	_, _ = srv.hasher.Verify(password, digest)
}

func (srv *authService) hashError(err error, message string) error {
	if errors.Is(err, domainerrors.ErrInvalidInput) {
		return errors.Wrap(err, message)
	}

	return errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
}

// publish emits an account event. Failures are logged and never fail the caller.
func (srv *authService) publish(ctx context.Context, eventType service.AccountEventType, email string) {
	publishAccountEvent(ctx, srv.publisher, srv.log(ctx), eventType, srv.variant, email)
}

// passwordUpdatedFlag reads the flag of an already resolved principal.
func passwordUpdatedFlag(principal *entity.Principal) (bool, error) {
	if principal == nil {
		return false, errors.Wrap(domainerrors.ErrPrincipalNotFound, "password status lookup failed")
	}

	return principal.PasswordUpdated, nil
}

// normalizeEmail trims the address and, unless emails are case sensitive, lower-cases it.
func normalizeEmail(email string, caseSensitive bool) string {
	email = strings.TrimSpace(email)
	if caseSensitive {
		return email
	}

	return strings.ToLower(email)
}

// storeError keeps typed application errors and reports anything else as Unavailable.
func storeError(err error, message string) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return errors.Wrap(err, message)
	}

	return errors.Wrapf(domainerrors.ErrUnavailable, "%s: %v", message, err)
}

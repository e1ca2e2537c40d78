// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"surveyor/internal/domain/entity"
	"surveyor/internal/domain/service"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a principal.
type RegisterInput struct {
	Email    string
	Password string
	Profile  entity.Profile
}

// LoginInput defines the credentials presented at login.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// PrincipalView is the externally visible projection of a principal.
// It has no credential fields, so nothing built from it can leak a digest.
type PrincipalView struct {
	ID              uuid.UUID
	Variant         entity.Variant
	Email           string
	Profile         entity.Profile
	PasswordUpdated bool
	Validated       bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewPrincipalView strips credential material from a principal.
func NewPrincipalView(principal *entity.Principal) *PrincipalView {
	if principal == nil {
		return nil
	}

	return &PrincipalView{
		ID:              principal.ID,
		Variant:         principal.Variant,
		Email:           principal.Email,
		Profile:         principal.Profile,
		PasswordUpdated: principal.PasswordUpdated,
		Validated:       principal.Validated,
		CreatedAt:       principal.CreatedAt,
		UpdatedAt:       principal.UpdatedAt,
	}
}

// AuthOutput is returned by register and login.
type AuthOutput struct {
	Principal *PrincipalView
	Token     string
	ExpiresAt time.Time
}

// VerifyOutput is returned by a successful token verification.
type VerifyOutput struct {
	Principal *PrincipalView
	Claims    *service.Claims
}

// AuthUsecase authenticates principals of a single Variant.
type AuthUsecase interface {
	// Variant reports which principal kind this instance serves.
	Variant() entity.Variant

	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)

	// Login looks the principal up by email and delegates to LoginPrincipal.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// LoginPrincipal checks credentials against an already resolved principal.
	LoginPrincipal(ctx context.Context, input *LoginInput, found *entity.Principal) (*AuthOutput, error)

	Verify(ctx context.Context, token string) (*VerifyOutput, error)

	// VerifyBoolean never fails; any verification error yields false.
	VerifyBoolean(ctx context.Context, token string) bool

	// UpdatePassword re-hashes, marks the password as updated and invalidates earlier tokens.
	UpdatePassword(ctx context.Context, email, newPassword string) error

	// ChangePassword verifies the token and updates its bearer's password.
	ChangePassword(ctx context.Context, token, newPassword string) error

	WasPasswordUpdated(ctx context.Context, email string) (bool, error)

	// List returns every principal of the variant.
	List(ctx context.Context) ([]*PrincipalView, error)
}

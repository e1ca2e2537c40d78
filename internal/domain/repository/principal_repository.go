// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"surveyor/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrPrincipalNotFound is returned when no principal matches the lookup key.
	ErrPrincipalNotFound = errors.New("principal not found")

	// ErrPrincipalAlreadyExists is returned when the store rejects a duplicate (variant, email) pair.
	ErrPrincipalAlreadyExists = errors.New("principal already exists")
)

// PrincipalFields is a partial update. Nil pointers leave the column untouched.
type PrincipalFields struct {
	PasswordHash          *string
	PasswordUpdated       *bool
	Validated             *bool
	BumpCredentialVersion bool
}

// IsEmpty reports whether the update would change nothing.
func (f PrincipalFields) IsEmpty() bool {
	return f.PasswordHash == nil && f.PasswordUpdated == nil && f.Validated == nil && !f.BumpCredentialVersion
}

// PrincipalRepository defines persistence operations for principals of every variant.
type PrincipalRepository interface {
	// FindByEmail retrieves a principal by variant and email, without its answers.
	FindByEmail(ctx context.Context, variant entity.Variant, email string) (*entity.Principal, error)

	// FindWithAnswersByEmail is FindByEmail plus the ordered answers.
	FindWithAnswersByEmail(ctx context.Context, variant entity.Variant, email string) (*entity.Principal, error)

	// FindByEmailForUpdate is FindByEmail that also locks the row until the
	// surrounding transaction ends. Only meaningful inside TransactionManager.Execute.
	FindByEmailForUpdate(ctx context.Context, variant entity.Variant, email string) (*entity.Principal, error)

	// LockEmail serializes transactions that touch the same email across every
	// variant until the surrounding transaction ends.
	LockEmail(ctx context.Context, email string) error

	// ExistsByEmail reports whether the email is registered under any variant.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Create persists a new principal. Duplicate (variant, email) yields ErrPrincipalAlreadyExists.
	Create(ctx context.Context, principal *entity.Principal) error

	// UpdateFields applies a partial update. Missing principal yields ErrPrincipalNotFound.
	UpdateFields(ctx context.Context, variant entity.Variant, email string, fields PrincipalFields) error

	// ReplaceAnswers discards the principal's answers and stores the given ones in order.
	ReplaceAnswers(ctx context.Context, principalID uuid.UUID, answers []entity.QuestionAnswer) error

	// ListByVariant returns every principal of a variant, oldest first, without answers.
	ListByVariant(ctx context.Context, variant entity.Variant) ([]*entity.Principal, error)
}

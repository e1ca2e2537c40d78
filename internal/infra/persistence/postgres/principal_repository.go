package postgres

import (
	"context"

	"surveyor/internal/domain/entity"
	domainerrors "surveyor/internal/domain/errors"
	"surveyor/internal/domain/repository"
	"surveyor/internal/errors"
	"surveyor/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type principalRepository struct {
	db *gorm.DB
}

// NewPrincipalRepository creates a new principal repository
func NewPrincipalRepository(db *gorm.DB) repository.PrincipalRepository {
	return &principalRepository{db: db}
}

// FindByEmail retrieves a principal without its answers.
func (repo *principalRepository) FindByEmail(ctx context.Context, variant entity.Variant, email string) (*entity.Principal, error) {
	return repo.findByEmail(repo.db.WithContext(ctx), variant, email)
}

// FindWithAnswersByEmail retrieves a principal and its ordered answers.
func (repo *principalRepository) FindWithAnswersByEmail(ctx context.Context, variant entity.Variant, email string) (*entity.Principal, error) {
	db := repo.db.WithContext(ctx).Preload("Answers", func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	})

	return repo.findByEmail(db, variant, email)
}

// FindByEmailForUpdate locks the principal row so concurrent answer
// replacements for one principal run one after the other.
func (repo *principalRepository) FindByEmailForUpdate(ctx context.Context, variant entity.Variant, email string) (*entity.Principal, error) {
	db := repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"})

	return repo.findByEmail(db, variant, email)
}

func (repo *principalRepository) findByEmail(db *gorm.DB, variant entity.Variant, email string) (*entity.Principal, error) {
	var principal model.PrincipalModel
	err := db.Where("variant = ? AND email = ?", variant.String(), email).First(&principal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPrincipalNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find principal by email")
	}

	return toPrincipalDomain(&principal), nil
}

// LockEmail takes a transaction-scoped advisory lock keyed on the email. The
// unique index only covers (variant, email), so cross-variant uniqueness
// relies on this lock being held across the existence check and the insert.
func (repo *principalRepository) LockEmail(ctx context.Context, email string) error {
	if err := repo.db.WithContext(ctx).Exec("SELECT pg_advisory_xact_lock(hashtext(?))", email).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to lock principal email")
	}

	return nil
}

// ExistsByEmail reports whether any variant already uses the email
func (repo *principalRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.PrincipalModel{}).
		Where("email = ?", email).
		Count(&count).Error
	if err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to check principal email")
	}

	return count > 0, nil
}

// Create inserts a new principal
func (repo *principalRepository) Create(ctx context.Context, principal *entity.Principal) error {
	if principal.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "generate principal id")
		}
		principal.ID = id
	}

	principalModel := fromPrincipalDomain(principal)
	if err := repo.db.WithContext(ctx).Create(principalModel).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrPrincipalAlreadyExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create principal")
	}

	principal.CreatedAt = principalModel.CreatedAt
	principal.UpdatedAt = principalModel.UpdatedAt

	return nil
}

// UpdateFields applies a partial update addressed by (variant, email)
func (repo *principalRepository) UpdateFields(ctx context.Context, variant entity.Variant, email string, fields repository.PrincipalFields) error {
	if fields.IsEmpty() {
		return nil
	}

	updates := make(map[string]any, 4)
	if fields.PasswordHash != nil {
		updates["password_hash"] = *fields.PasswordHash
	}
	if fields.PasswordUpdated != nil {
		updates["password_updated"] = *fields.PasswordUpdated
	}
	if fields.Validated != nil {
		updates["validated"] = *fields.Validated
	}
	if fields.BumpCredentialVersion {
		updates["credential_version"] = gorm.Expr("credential_version + 1")
	}

	result := repo.db.WithContext(ctx).
		Model(&model.PrincipalModel{}).
		Where("variant = ? AND email = ?", variant.String(), email).
		Updates(updates)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update principal")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPrincipalNotFound
	}

	return nil
}

// ReplaceAnswers deletes the stored answers and inserts the new set in order.
// Callers that need atomicity run it inside TransactionManager.Execute.
func (repo *principalRepository) ReplaceAnswers(ctx context.Context, principalID uuid.UUID, answers []entity.QuestionAnswer) error {
	db := repo.db.WithContext(ctx)

	if err := db.Where("principal_id = ?", principalID).Delete(&model.AnswerModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete answers")
	}

	if len(answers) == 0 {
		return nil
	}

	answerModels := fromAnswersDomain(principalID, answers)
	if err := db.Create(&answerModels).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrPrincipalNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to insert answers")
	}

	return nil
}

// ListByVariant returns all principals of a variant, oldest first
func (repo *principalRepository) ListByVariant(ctx context.Context, variant entity.Variant) ([]*entity.Principal, error) {
	var principals []model.PrincipalModel
	err := repo.db.WithContext(ctx).
		Where("variant = ?", variant.String()).
		Order("created_at").
		Find(&principals).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list principals")
	}

	result := make([]*entity.Principal, 0, len(principals))
	for i := range principals {
		result = append(result, toPrincipalDomain(&principals[i]))
	}

	return result, nil
}

// --- Mapper functions ---

func toPrincipalDomain(data *model.PrincipalModel) *entity.Principal {
	answers := make([]entity.QuestionAnswer, 0, len(data.Answers))
	for _, answer := range data.Answers {
		answers = append(answers, entity.QuestionAnswer{
			QuestionID: answer.QuestionID,
			Value:      answer.Value,
		})
	}

	return &entity.Principal{
		ID:                data.ID,
		Variant:           entity.Variant(data.Variant),
		Email:             data.Email,
		PasswordHash:      data.PasswordHash,
		PasswordUpdated:   data.PasswordUpdated,
		CredentialVersion: data.CredentialVersion,
		Profile: entity.Profile{
			FirstName:   data.FirstName,
			LastName:    data.LastName,
			CompanyName: data.CompanyName,
			Phone:       data.Phone,
		},
		Answers:   answers,
		Validated: data.Validated,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromPrincipalDomain(data *entity.Principal) *model.PrincipalModel {
	return &model.PrincipalModel{
		ID:                data.ID,
		Variant:           data.Variant.String(),
		Email:             data.Email,
		PasswordHash:      data.PasswordHash,
		PasswordUpdated:   data.PasswordUpdated,
		CredentialVersion: data.CredentialVersion,
		FirstName:         data.Profile.FirstName,
		LastName:          data.Profile.LastName,
		CompanyName:       data.Profile.CompanyName,
		Phone:             data.Profile.Phone,
		Validated:         data.Validated,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

func fromAnswersDomain(principalID uuid.UUID, answers []entity.QuestionAnswer) []model.AnswerModel {
	result := make([]model.AnswerModel, 0, len(answers))
	for i, answer := range answers {
		result = append(result, model.AnswerModel{
			PrincipalID: principalID,
			Position:    i,
			QuestionID:  answer.QuestionID,
			Value:       answer.Value,
		})
	}

	return result
}

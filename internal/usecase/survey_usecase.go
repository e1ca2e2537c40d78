package usecase

import (
	"context"

	"surveyor/internal/domain/entity"
)

// SurveyUsecase manages survey answers behind token verification.
// Every operation verifies the caller's token before touching data.
type SurveyUsecase interface {
	GetAnswers(ctx context.Context, token, email string) ([]entity.QuestionAnswer, error)

	// PostAnswers replaces the stored answers wholesale and recomputes the validated flag.
	PostAnswers(ctx context.Context, token, email string, answers []entity.QuestionAnswer) error

	IsValidated(ctx context.Context, token, email string) (bool, error)
}

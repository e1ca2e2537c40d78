package service

import (
	"context"

	"surveyor/internal/domain/entity"
)

// AnswerValidationRule decides whether a set of survey answers completes the survey.
type AnswerValidationRule interface {
	IsComplete(ctx context.Context, answers []entity.QuestionAnswer) (bool, error)
}

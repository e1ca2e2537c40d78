// Package survey provides answer validation rules for the survey gate.
package survey

import (
	"context"
	"strings"

	"surveyor/config"
	"surveyor/internal/domain/entity"
	"surveyor/internal/domain/service"
)

// requiredQuestionsRule treats a survey as complete when every configured
// question has a non-blank answer. With nothing configured, any non-empty
// answer set completes it.
type requiredQuestionsRule struct {
	required []string
}

// NewRequiredQuestionsRule builds the rule from survey.requiredQuestions.
func NewRequiredQuestionsRule(cfg *config.Config) service.AnswerValidationRule {
	var required []string
	if cfg.Survey != nil {
		for _, id := range cfg.Survey.RequiredQuestions {
			if id = strings.TrimSpace(id); id != "" {
				required = append(required, id)
			}
		}
	}

	return &requiredQuestionsRule{required: required}
}

func (r *requiredQuestionsRule) IsComplete(_ context.Context, answers []entity.QuestionAnswer) (bool, error) {
	answered := make(map[string]struct{}, len(answers))
	for _, answer := range answers {
		if strings.TrimSpace(answer.Value) != "" {
			answered[answer.QuestionID] = struct{}{}
		}
	}

	if len(r.required) == 0 {
		return len(answered) > 0, nil
	}

	for _, id := range r.required {
		if _, ok := answered[id]; !ok {
			return false, nil
		}
	}

	return true, nil
}

package survey

import (
	"context"
	"testing"

	"surveyor/config"
	"surveyor/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequiredQuestionsRule(t *testing.T) {
	rule := NewRequiredQuestionsRule(&config.Config{
		Survey: &config.SurveyConfig{RequiredQuestions: []string{"q1", " q2 ", ""}},
	})

	tests := []struct {
		name    string
		answers []entity.QuestionAnswer
		want    bool
	}{
		{name: "no answers", answers: nil, want: false},
		{name: "missing one", answers: []entity.QuestionAnswer{{QuestionID: "q1", Value: "yes"}}, want: false},
		{name: "blank value", answers: []entity.QuestionAnswer{{QuestionID: "q1", Value: "yes"}, {QuestionID: "q2", Value: "  "}}, want: false},
		{name: "all answered", answers: []entity.QuestionAnswer{{QuestionID: "q2", Value: "no"}, {QuestionID: "q1", Value: "yes"}, {QuestionID: "q3", Value: "x"}}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := rule.IsComplete(context.Background(), tt.answers)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRequiredQuestionsRule_WithoutConfiguredQuestions(t *testing.T) {
	rule := NewRequiredQuestionsRule(&config.Config{})

	complete, err := rule.IsComplete(context.Background(), nil)
	require.NoError(t, err)
	assert.False(t, complete)

	complete, err = rule.IsComplete(context.Background(), []entity.QuestionAnswer{{QuestionID: "any", Value: "1"}})
	require.NoError(t, err)
	assert.True(t, complete)
}

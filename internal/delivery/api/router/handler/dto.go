package handler

import (
	"time"

	"surveyor/internal/domain/entity"
	"surveyor/internal/usecase"

	"github.com/google/uuid"
)

// RegisterRequest is the body of register-admin / register-company.
type RegisterRequest struct {
	Email       string `json:"email" validate:"required,email,max=254"`
	Password    string `json:"password" validate:"required,max=72"`
	FirstName   string `json:"first_name" validate:"max=100"`
	LastName    string `json:"last_name" validate:"max=100"`
	CompanyName string `json:"company_name" validate:"max=200"`
	Phone       string `json:"phone" validate:"max=32"`
}

// LoginRequest is the body of login-admin / login-company.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// EmailRequest carries a single email in the body.
type EmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// EmailQuery carries a single email in the query string.
type EmailQuery struct {
	Email string `query:"email" validate:"required,email"`
}

// UpdatePasswordRequest is the body of update-password.
type UpdatePasswordRequest struct {
	Password string `json:"password" validate:"required,max=72"`
}

// AnswerPayload is one answer as exchanged over HTTP.
type AnswerPayload struct {
	QuestionID string `json:"question_id" validate:"required,max=100"`
	Value      string `json:"value" validate:"max=4000"`
}

// PostAnswersRequest is the body of POST answerFormUser.
type PostAnswersRequest struct {
	Email   string          `json:"email" validate:"required,email"`
	Answers []AnswerPayload `json:"answers" validate:"dive"`
}

// PrincipalResponse is the public shape of a principal. It has no credential fields.
type PrincipalResponse struct {
	ID              uuid.UUID `json:"id"`
	Type            string    `json:"type"`
	Email           string    `json:"email"`
	FirstName       string    `json:"first_name,omitempty"`
	LastName        string    `json:"last_name,omitempty"`
	CompanyName     string    `json:"company_name,omitempty"`
	Phone           string    `json:"phone,omitempty"`
	PasswordUpdated bool      `json:"password_updated"`
	Validated       bool      `json:"validated"`
	CreatedAt       time.Time `json:"created_at"`
}

// SessionResponse is returned by register and login.
type SessionResponse struct {
	Principal *PrincipalResponse `json:"principal"`
	Token     string             `json:"token"`
	ExpiresAt time.Time          `json:"expires_at"`
}

// VerifyResponse is returned by verify-admin / verify-company.
type VerifyResponse struct {
	Principal *PrincipalResponse `json:"principal"`
	IssuedAt  time.Time          `json:"issued_at"`
	ExpiresAt time.Time          `json:"expires_at"`
}

// MessageResponse is the body of operations that return no resource.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func toPrincipalResponse(view *usecase.PrincipalView) *PrincipalResponse {
	if view == nil {
		return nil
	}

	return &PrincipalResponse{
		ID:              view.ID,
		Type:            view.Variant.String(),
		Email:           view.Email,
		FirstName:       view.Profile.FirstName,
		LastName:        view.Profile.LastName,
		CompanyName:     view.Profile.CompanyName,
		Phone:           view.Profile.Phone,
		PasswordUpdated: view.PasswordUpdated,
		Validated:       view.Validated,
		CreatedAt:       view.CreatedAt,
	}
}

func toSessionResponse(output *usecase.AuthOutput) *SessionResponse {
	return &SessionResponse{
		Principal: toPrincipalResponse(output.Principal),
		Token:     output.Token,
		ExpiresAt: output.ExpiresAt,
	}
}

func toAnswers(payload []AnswerPayload) []entity.QuestionAnswer {
	answers := make([]entity.QuestionAnswer, 0, len(payload))
	for _, p := range payload {
		answers = append(answers, entity.QuestionAnswer{QuestionID: p.QuestionID, Value: p.Value})
	}

	return answers
}

func toAnswerPayloads(answers []entity.QuestionAnswer) []AnswerPayload {
	payload := make([]AnswerPayload, 0, len(answers))
	for _, a := range answers {
		payload = append(payload, AnswerPayload{QuestionID: a.QuestionID, Value: a.Value})
	}

	return payload
}

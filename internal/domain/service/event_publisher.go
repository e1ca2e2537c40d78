package service

import (
	"context"
	"time"

	"surveyor/internal/domain/entity"
)

// AccountEventType names a change to a principal's account.
type AccountEventType string

const (
	EventPrincipalRegistered  AccountEventType = "principal.registered"
	EventPasswordUpdated      AccountEventType = "principal.password_updated"
	EventSurveyAnswersUpdated AccountEventType = "survey.answers_submitted"
)

// AccountEvent is published after an account change has been committed
type AccountEvent struct {
	EventID    string           `json:"event_id"`
	RequestID  string           `json:"request_id,omitempty"` // For distributed tracing
	Type       AccountEventType `json:"type"`
	Variant    entity.Variant   `json:"variant"`
	Email      string           `json:"email"`
	OccurredAt time.Time        `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAccountEvent publishes an account event for downstream consumers
	PublishAccountEvent(ctx context.Context, event *AccountEvent) error

	// Close releases any resources held by the publisher
	Close() error
}

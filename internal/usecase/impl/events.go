package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "surveyor/internal/delivery/context"
	"surveyor/internal/domain/entity"
	"surveyor/internal/domain/service"

	"github.com/google/uuid"
)

// publishAccountEvent is best effort: the account change is already committed.
func publishAccountEvent(
	ctx context.Context,
	publisher service.EventPublisher,
	logger *slog.Logger,
	eventType service.AccountEventType,
	variant entity.Variant,
	email string,
) {
	if publisher == nil {
		return
	}

	event := &service.AccountEvent{
		EventID:    uuid.NewString(),
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       eventType,
		Variant:    variant,
		Email:      email,
		OccurredAt: time.Now().UTC(),
	}

	if err := publisher.PublishAccountEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish account event",
			slog.String("type", string(eventType)),
			slog.String("event_id", event.EventID),
			slog.Any("error", err),
		)
	}
}

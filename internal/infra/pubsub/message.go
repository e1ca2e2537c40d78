package pubsub

import (
	"encoding/json"

	"surveyor/internal/domain/service"

	"github.com/pkg/errors"
)

// message is the transport-neutral form of an account event.
type message struct {
	data        []byte
	attributes  map[string]string
	orderingKey string
}

// encodeEvent serializes an event. Attributes allow subscriptions to filter by
// type or principal kind without decoding the payload; the ordering key keeps
// events of one principal in commit order.
func encodeEvent(event *service.AccountEvent) (*message, error) {
	if event == nil {
		return nil, errors.New("nil account event")
	}

	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrap(err, "marshal account event")
	}

	attributes := map[string]string{
		"event_id": event.EventID,
		"type":     string(event.Type),
		"variant":  event.Variant.String(),
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return &message{
		data:        data,
		attributes:  attributes,
		orderingKey: event.Variant.String() + ":" + event.Email,
	}, nil
}

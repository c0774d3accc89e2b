package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-apartment-listings/internal/logger"
	"github.com/sbilibin2017/gw-apartment-listings/internal/models"
)

//go:generate mockgen -source=events.go -destination=events_mock.go -package=services

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// publishEvent publishes a change event keyed by listing id. Publishing is
// best effort: failures are logged and never fail the request.
//
// Callers publish inside the request transaction, so an event can announce
// a change whose commit later fails. Consumers must tolerate such events.
func publishEvent(ctx context.Context, w KafkaWriter, eventType string, entityID, listingID, userID uuid.UUID) {
	evt := models.Event{
		EventID:   uuid.NewString(),
		Type:      eventType,
		EntityID:  entityID.String(),
		ListingID: listingID.String(),
		UserID:    userID.String(),
		Timestamp: time.Now().Unix(),
	}

	if w == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", evt.EventID, "type", evt.Type)
		return
	}

	data, err := json.Marshal(evt)
	if err != nil {
		logger.Log.Errorw("failed to marshal event", "event_id", evt.EventID, "err", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(evt.ListingID),
		Value: data,
	}

	if err := w.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish event", "event_id", evt.EventID, "type", evt.Type, "err", err)
		return
	}

	logger.Log.Infow("event published", "event_id", evt.EventID, "type", evt.Type)
}

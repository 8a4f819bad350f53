package services

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/lightbnb-gateway/internal/logger"
	"github.com/sbilibin2017/lightbnb-gateway/internal/models"
)

// eventPublisher publishes domain events. A nil writer disables publishing.
// Publishing failures are logged and never fail the originating write.
type eventPublisher struct {
	writer KafkaWriter
	now    func() time.Time
}

func newEventPublisher(writer KafkaWriter) eventPublisher {
	return eventPublisher{writer: writer, now: time.Now}
}

func (p eventPublisher) publish(ctx context.Context, eventType string, entityID int64) {
	event := models.Event{
		EventID:    uuid.NewString(),
		Type:       eventType,
		EntityID:   entityID,
		OccurredAt: p.now().Unix(),
	}

	if p.writer == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "event_type", eventType, "entity_id", entityID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(eventType + ":" + strconv.FormatInt(entityID, 10)),
		Value: data,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish event to Kafka", "event_id", event.EventID, "event_type", eventType, "error", err)
		return
	}
	logger.Log.Infow("Event published to Kafka", "event_id", event.EventID, "event_type", eventType, "entity_id", entityID)
}

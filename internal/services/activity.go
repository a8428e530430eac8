package services

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-bookshelf/internal/logger"
	"github.com/sbilibin2017/gw-bookshelf/internal/models"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=activity.go -destination=activity_mock.go -package=services

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// Publisher publishes activity events. Publishing never fails the caller.
type Publisher interface {
	Publish(ctx context.Context, event models.ActivityEvent)
}

// ActivityPublisher publishes activity events to Kafka.
type ActivityPublisher struct {
	kafkaWriter KafkaWriter
	now         func() time.Time
}

// NewActivityPublisher creates a publisher. A nil writer disables publishing.
func NewActivityPublisher(kafkaWriter KafkaWriter) *ActivityPublisher {
	return &ActivityPublisher{kafkaWriter: kafkaWriter, now: time.Now}
}

// Publish fills in the event id and timestamp and writes the event keyed by user.
func (p *ActivityPublisher) Publish(ctx context.Context, event models.ActivityEvent) {
	if event.EventID == "" {
		event.EventID = uuid.NewString()
	}
	if event.Timestamp == 0 {
		event.Timestamp = p.now().Unix()
	}

	if p.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID, "operation", event.Operation)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal activity event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(event.UserID, 10)),
		Value: data,
	}

	if err := p.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish activity event to Kafka", "event_id", event.EventID, "operation", event.Operation, "error", err)
	} else {
		logger.Log.Infow("Activity event published to Kafka", "event_id", event.EventID, "operation", event.Operation, "user_id", event.UserID)
	}
}

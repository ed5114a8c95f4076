package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gprawdzik/x10dev-zaliczenie/internal/telemetry/tracing"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const (
	TypeGoalCreated         = "goal.created"
	TypeGoalUpdated         = "goal.updated"
	TypeGoalDeleted         = "goal.deleted"
	TypeActivitiesGenerated = "activities.generated"
	TypeSportCreated        = "sport.created"
)

// Event is the JSON document written to the topic.
type Event struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	UserID     string    `json:"user_id,omitempty"`
	EntityID   string    `json:"entity_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload,omitempty"`
}

func NewEvent(eventType, userID, entityID string, payload any) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		UserID:     userID,
		EntityID:   entityID,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher writes domain events to kafka, keyed by user id so one user's events stay ordered.
type Publisher struct {
	writer       messageWriter
	writeTimeout time.Duration
}

func NewPublisher(brokers []string, topic string) *Publisher {
	return NewPublisherWithWriter(&kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: 50 * time.Millisecond,
	})
}

func NewPublisherWithWriter(writer messageWriter) *Publisher {
	return &Publisher{
		writer:       writer,
		writeTimeout: 3 * time.Second,
	}
}

func (p *Publisher) Publish(ctx context.Context, event Event) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "events.publish")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("event.type", event.Type))

	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event %s: %w", event.Type, err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.writeTimeout)
	defer cancel()

	if err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.UserID),
		Value: value,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(event.Type)},
		},
	}); err != nil {
		return fmt.Errorf("write event %s: %w", event.Type, err)
	}

	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

// Nop drops every event; used when no brokers are configured.
type Nop struct{}

func (Nop) Publish(_ context.Context, event Event) error {
	log.Tracef("events disabled, dropping %s", event.Type)
	return nil
}

func (Nop) Close() error {
	return nil
}

package kafka

//go:generate mockgen -destination=mocks/mock_reader.go -package=mocks github.com/honeynil/CreditLedgerService/internal/infrastructure/kafka MessageReader

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/honeynil/CreditLedgerService/internal/models"
	"github.com/segmentio/kafka-go"
)

const (
	defaultBackoff    = 200 * time.Millisecond
	defaultMaxBackoff = 30 * time.Second
)

// EventHandler receives every decoded ledger event.
type EventHandler interface {
	Handle(ctx context.Context, event models.Event) error
}

// MessageReader is the subset of *kafka.Reader the consumer needs.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Consumer struct {
	reader     MessageReader
	topic      string
	handler    EventHandler
	backoff    time.Duration
	maxBackoff time.Duration
}

func NewConsumer(brokers []string, topic, groupID string, handler EventHandler) *Consumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  brokers,
		Topic:    topic,
		GroupID:  groupID,
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})
	return NewConsumerWithReader(reader, topic, handler)
}

func NewConsumerWithReader(reader MessageReader, topic string, handler EventHandler) *Consumer {
	return &Consumer{
		reader:     reader,
		topic:      topic,
		handler:    handler,
		backoff:    defaultBackoff,
		maxBackoff: defaultMaxBackoff,
	}
}

// Consume blocks until ctx is cancelled. A message is committed only after the
// handler accepted it; a failing message is retried in place, so later offsets
// are never committed past it.
func (c *Consumer) Consume(ctx context.Context) {
	failures := 0
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				slog.Info("Kafka consumer stopped", "topic", c.topic)
				return
			}
			failures++
			slog.Error("failed to read Kafka message", "topic", c.topic, "attempt", failures, "error", err)
			if !c.wait(ctx, failures) {
				slog.Info("Kafka consumer stopped", "topic", c.topic)
				return
			}
			continue
		}
		failures = 0

		var event models.Event
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			slog.Error("failed to unmarshal ledger event", "topic", msg.Topic, "offset", msg.Offset, "error", err)
			c.commit(ctx, msg)
			continue
		}

		if !c.handle(ctx, event) {
			slog.Info("Kafka consumer stopped", "topic", c.topic, "pending_offset", msg.Offset)
			return
		}
		c.commit(ctx, msg)
	}
}

// handle retries the event until the handler accepts it. It returns false
// when ctx ends first.
func (c *Consumer) handle(ctx context.Context, event models.Event) bool {
	for attempt := 1; ; attempt++ {
		err := c.handler.Handle(ctx, event)
		if err == nil {
			return true
		}
		slog.Error("failed to handle ledger event", "event_id", event.ID, "type", event.Type, "attempt", attempt, "error", err)
		if !c.wait(ctx, attempt) {
			return false
		}
	}
}

func (c *Consumer) wait(ctx context.Context, attempt int) bool {
	if ctx.Err() != nil {
		return false
	}
	timer := time.NewTimer(c.delay(attempt))
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

// delay doubles the base backoff per attempt, capped at maxBackoff.
func (c *Consumer) delay(attempt int) time.Duration {
	d := c.backoff
	for i := 1; i < attempt && d > 0 && d < c.maxBackoff; i++ {
		d *= 2
	}
	if d > c.maxBackoff {
		d = c.maxBackoff
	}
	return d
}

func (c *Consumer) commit(ctx context.Context, msg kafka.Message) {
	if err := c.reader.CommitMessages(ctx, msg); err != nil {
		slog.Error("failed to commit Kafka offset", "topic", msg.Topic, "offset", msg.Offset, "error", err)
	}
}

func (c *Consumer) Close() error {
	return c.reader.Close()
}

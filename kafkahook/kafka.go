package kafkahook

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"
	"github.com/google/uuid"

	"github.com/mzeray/structlog"
)

// Hook publishes every matching entry to one Kafka topic.
type Hook struct {
	producer sarama.SyncProducer
	topic    string
	keyField string
	format   *structlog.JSONFormatter
}

// Option configures a Hook.
type Option func(*Hook)

// WithKeyField selects the field whose string value becomes the Kafka
// message key. Entries without that field (or with a non-string value)
// are published without a key.
func WithKeyField(name string) Option {
	return func(h *Hook) {
		h.keyField = name
	}
}

// New creates a hook that produces to the given brokers and topic.
func New(brokers []string, topic string, opts ...Option) (*Hook, error) {
	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}
	return NewFromProducer(producer, topic, opts...), nil
}

// NewFromProducer creates a hook around an existing producer. The hook
// takes ownership of the producer; Close closes it.
func NewFromProducer(producer sarama.SyncProducer, topic string, opts ...Option) *Hook {
	h := &Hook{
		producer: producer,
		topic:    topic,
		format:   structlog.NewJSONFormatter(structlog.JSONConfig{}),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Levels fires for every level.
func (h *Hook) Levels() []structlog.Level {
	return structlog.AllLevels
}

// Fire always refuses: publishing is a network round-trip, so only the
// asynchronous path is supported.
func (h *Hook) Fire(_ *structlog.Entry) error {
	return fmt.Errorf("kafka hook: %w", structlog.ErrAsyncOnly)
}

// FireAsync publishes the JSON-rendered entry and reports the outcome
// through the returned one-shot channel.
func (h *Hook) FireAsync(ctx context.Context, entry *structlog.Entry) <-chan error {
	result := make(chan error, 1)
	go func() {
		result <- h.publish(ctx, entry)
	}()
	return result
}

func (h *Hook) publish(ctx context.Context, entry *structlog.Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	payload, err := h.format.Format(entry)
	if err != nil {
		return fmt.Errorf("serialize log entry: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic: h.topic,
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte("message_id"), Value: []byte(uuid.NewString())},
		},
	}
	if key, ok := h.messageKey(entry.Fields); ok {
		message.Key = sarama.StringEncoder(key)
	}

	if _, _, err := h.producer.SendMessage(message); err != nil {
		return fmt.Errorf("publish to kafka: %w", err)
	}
	return nil
}

// messageKey extracts the routing key from the configured field.
func (h *Hook) messageKey(fields structlog.Fields) (string, bool) {
	if h.keyField == "" {
		return "", false
	}
	key, ok := fields[h.keyField].(string)
	return key, ok
}

// Close closes the underlying producer.
func (h *Hook) Close() error {
	return h.producer.Close()
}

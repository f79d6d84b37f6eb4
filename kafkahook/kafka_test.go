package kafkahook

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mzeray/structlog"
)

func mockConfig() *sarama.Config {
	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	return cfg
}

func testEntry() *structlog.Entry {
	return &structlog.Entry{
		Time:    time.Date(2026, 2, 18, 13, 0, 0, 0, time.UTC),
		Level:   structlog.WarnLevel,
		Message: "disk low",
		Fields:  structlog.Fields{"host": "node-1", "pct": "91"},
	}
}

func TestHook_FireRefusesSynchronousUse(t *testing.T) {
	producer := mocks.NewSyncProducer(t, mockConfig())
	hook := NewFromProducer(producer, "logs")

	err := hook.Fire(testEntry())
	require.Error(t, err)
	assert.ErrorIs(t, err, structlog.ErrAsyncOnly)
	require.NoError(t, hook.Close())
}

func TestHook_FireAsyncPublishesJSONEntry(t *testing.T) {
	producer := mocks.NewSyncProducer(t, mockConfig())
	producer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		assert.Equal(t, "logs", msg.Topic)

		payload, err := msg.Value.Encode()
		require.NoError(t, err)

		var parsed struct {
			Level   string         `json:"level"`
			Message string         `json:"message"`
			Fields  map[string]any `json:"fields"`
		}
		require.NoError(t, json.Unmarshal(payload, &parsed))
		assert.Equal(t, "warn", parsed.Level)
		assert.Equal(t, "disk low", parsed.Message)
		assert.Equal(t, "node-1", parsed.Fields["host"])

		require.Len(t, msg.Headers, 1)
		assert.Equal(t, "message_id", string(msg.Headers[0].Key))
		assert.NotEmpty(t, msg.Headers[0].Value)
		return nil
	})

	hook := NewFromProducer(producer, "logs")
	err := <-hook.FireAsync(context.Background(), testEntry())
	require.NoError(t, err)
	require.NoError(t, hook.Close())
}

func TestHook_RoutingKeyFromField(t *testing.T) {
	producer := mocks.NewSyncProducer(t, mockConfig())
	producer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		require.NotNil(t, msg.Key)
		key, err := msg.Key.Encode()
		require.NoError(t, err)
		assert.Equal(t, "node-1", string(key))
		return nil
	})

	hook := NewFromProducer(producer, "logs", WithKeyField("host"))
	err := <-hook.FireAsync(context.Background(), testEntry())
	require.NoError(t, err)
	require.NoError(t, hook.Close())
}

func TestHook_MissingRoutingKeyPublishesUnkeyed(t *testing.T) {
	producer := mocks.NewSyncProducer(t, mockConfig())
	producer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		assert.Nil(t, msg.Key)
		return nil
	})

	hook := NewFromProducer(producer, "logs", WithKeyField("absent"))
	err := <-hook.FireAsync(context.Background(), testEntry())
	require.NoError(t, err)
	require.NoError(t, hook.Close())
}

func TestHook_PublishFailureReportedThroughResult(t *testing.T) {
	producer := mocks.NewSyncProducer(t, mockConfig())
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	hook := NewFromProducer(producer, "logs")
	err := <-hook.FireAsync(context.Background(), testEntry())
	require.Error(t, err)
	assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
	require.NoError(t, hook.Close())
}

func TestHook_CancelledContext(t *testing.T) {
	producer := mocks.NewSyncProducer(t, mockConfig())
	hook := NewFromProducer(producer, "logs")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := <-hook.FireAsync(ctx, testEntry())
	assert.ErrorIs(t, err, context.Canceled)
	require.NoError(t, hook.Close())
}

func TestHook_Levels(t *testing.T) {
	producer := mocks.NewSyncProducer(t, mockConfig())
	hook := NewFromProducer(producer, "logs")

	assert.Equal(t, structlog.AllLevels, hook.Levels())
	require.NoError(t, hook.Close())
}

func TestHook_UnserializableEntry(t *testing.T) {
	producer := mocks.NewSyncProducer(t, mockConfig())
	hook := NewFromProducer(producer, "logs")

	entry := testEntry()
	entry.Fields = structlog.Fields{"ch": make(chan int)}

	err := <-hook.FireAsync(context.Background(), entry)
	require.Error(t, err)
	assert.False(t, errors.Is(err, structlog.ErrAsyncOnly))
	require.NoError(t, hook.Close())
}

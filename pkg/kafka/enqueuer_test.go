package kafka_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/Astemirdum/locallibrary/pkg/circuit_breaker"
	"github.com/Astemirdum/locallibrary/pkg/kafka"
	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestEnqueuer_Enqueue(t *testing.T) {
	cfg := mocks.NewTestConfig()
	cfg.Producer.Return.Successes = true
	producer := mocks.NewSyncProducer(t, cfg)
	defer func() { require.NoError(t, producer.Close()) }()

	event := kafka.CatalogEvent{
		Kind:      "genre",
		Action:    kafka.ActionCreated,
		ID:        uuid.MustParse("f7cdc58f-2caf-4b15-9727-f89dcc629b27"),
		Timestamp: time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC),
	}
	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var got kafka.CatalogEvent
		if err := json.Unmarshal(val, &got); err != nil {
			return err
		}
		require.Equal(t, event, got)
		return nil
	})

	q := kafka.NewEnqueuer(producer, circuit_breaker.New(circuit_breaker.Config{Window: 2, FailureRatio: 1, Timeout: time.Minute, Recovery: 1}))
	require.NoError(t, q.Enqueue(kafka.CatalogTopic, event.ID.String(), event))
}

func TestEnqueuer_EnqueueOpensBreaker(t *testing.T) {
	cfg := mocks.NewTestConfig()
	cfg.Producer.Return.Successes = true
	producer := mocks.NewSyncProducer(t, cfg)
	defer func() { _ = producer.Close() }()

	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	cb := circuit_breaker.New(circuit_breaker.Config{Window: 1, FailureRatio: 1, Timeout: time.Hour, Recovery: 1})
	q := kafka.NewEnqueuer(producer, cb)

	require.ErrorIs(t, q.Enqueue(kafka.CatalogTopic, "k", kafka.CatalogEvent{}), sarama.ErrOutOfBrokers)
	require.ErrorIs(t, q.Enqueue(kafka.CatalogTopic, "k", kafka.CatalogEvent{}), circuit_breaker.ErrOpen)
}

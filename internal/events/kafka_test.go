package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	ID   int64  `json:"id"`
	Code string `json:"code"`
}

func TestKafkaPublisher_Publish(t *testing.T) {
	t.Run("sends envelope keyed by code", func(t *testing.T) {
		producer := mocks.NewSyncProducer(t, NewProducerConfig())
		producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
			var msg Message
			if err := json.Unmarshal(val, &msg); err != nil {
				return err
			}
			if msg.Type != ServiceTypeCreated {
				return errors.New("unexpected type " + string(msg.Type))
			}
			if msg.Source != "catalog-test" {
				return errors.New("unexpected source " + msg.Source)
			}
			var p payload
			if err := json.Unmarshal(msg.Data, &p); err != nil {
				return err
			}
			if p.Code != "SWEDISH" || p.ID != 1 {
				return errors.New("unexpected payload")
			}
			return nil
		})

		pub := NewKafkaPublisherWithProducer(producer, "service-type-events", "catalog-test")
		err := pub.Publish(context.Background(), ServiceTypeCreated, "SWEDISH", payload{ID: 1, Code: "SWEDISH"})
		assert.NoError(t, err)
		require.NoError(t, pub.Close())
	})

	t.Run("wraps producer failure", func(t *testing.T) {
		producer := mocks.NewSyncProducer(t, NewProducerConfig())
		producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

		pub := NewKafkaPublisherWithProducer(producer, "service-type-events", "catalog-test")
		err := pub.Publish(context.Background(), ServiceTypeDeleted, "SWEDISH", payload{ID: 1})
		assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
		require.NoError(t, pub.Close())
	})

	t.Run("cancelled context sends nothing", func(t *testing.T) {
		producer := mocks.NewSyncProducer(t, NewProducerConfig())
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		pub := NewKafkaPublisherWithProducer(producer, "service-type-events", "catalog-test")
		err := pub.Publish(ctx, ServiceTypeUpdated, "SWEDISH", payload{ID: 1})
		assert.ErrorIs(t, err, context.Canceled)
		require.NoError(t, pub.Close())
	})

	t.Run("unmarshalable payload", func(t *testing.T) {
		producer := mocks.NewSyncProducer(t, NewProducerConfig())
		pub := NewKafkaPublisherWithProducer(producer, "service-type-events", "catalog-test")
		err := pub.Publish(context.Background(), ServiceTypeUpdated, "X", func() {})
		assert.Error(t, err)
		require.NoError(t, pub.Close())
	})
}

func TestNewMessage(t *testing.T) {
	msg, err := NewMessage(ServiceTypeStatusChanged, map[string]bool{"is_active": false}, "svc")
	require.NoError(t, err)
	assert.Equal(t, ServiceTypeStatusChanged, msg.Type)
	assert.JSONEq(t, `{"is_active":false}`, string(msg.Data))
	assert.Equal(t, "svc", msg.Source)
	assert.NotEmpty(t, msg.TraceID)
	assert.False(t, msg.Timestamp.IsZero())
}

func TestNew(t *testing.T) {
	pub, err := New(Config{Enabled: false})
	require.NoError(t, err)
	assert.IsType(t, NullPublisher{}, pub)
	assert.NoError(t, pub.Publish(context.Background(), ServiceTypeCreated, "A", nil))
	assert.NoError(t, pub.Close())

	_, err = New(Config{Enabled: true})
	assert.ErrorIs(t, err, ErrNoBrokers)
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, GetDefaultConfig().Validate())
	assert.NoError(t, Config{Enabled: true, Brokers: []string{"k:9092"}, Topic: "t"}.Validate())
	assert.ErrorIs(t, Config{Enabled: true}.Validate(), ErrNoBrokers)
	assert.Error(t, Config{Enabled: true, Brokers: []string{"k:9092"}}.Validate())
}

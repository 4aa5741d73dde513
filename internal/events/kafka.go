package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/IBM/sarama"
)

// KafkaPublisher writes events to a single topic through a sync producer.
type KafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
	source   string
}

var _ Publisher = (*KafkaPublisher)(nil)

// NewProducerConfig returns the producer settings used for change events.
func NewProducerConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Return.Successes = true
	return config
}

// NewKafkaPublisher dials the brokers in cfg.
func NewKafkaPublisher(cfg Config) (*KafkaPublisher, error) {
	if len(cfg.Brokers) == 0 {
		return nil, ErrNoBrokers
	}

	producer, err := sarama.NewSyncProducer(cfg.Brokers, NewProducerConfig())
	if err != nil {
		return nil, fmt.Errorf("events: create kafka producer: %w", err)
	}

	return NewKafkaPublisherWithProducer(producer, cfg.Topic, cfg.Source), nil
}

func NewKafkaPublisherWithProducer(producer sarama.SyncProducer, topic, source string) *KafkaPublisher {
	return &KafkaPublisher{producer: producer, topic: topic, source: source}
}

func (p *KafkaPublisher) Publish(ctx context.Context, eventType EventType, key string, data any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	message, err := NewMessage(eventType, data, p.source)
	if err != nil {
		return err
	}

	value, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("events: marshal envelope: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(value),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event-type"), Value: []byte(eventType)},
		},
	}

	if _, _, err := p.producer.SendMessage(msg); err != nil {
		return fmt.Errorf("events: send %s: %w", eventType, err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.producer.Close()
}

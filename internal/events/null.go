package events

import "context"

// NullPublisher drops every event. Used when publishing is disabled.
type NullPublisher struct{}

var _ Publisher = NullPublisher{}

func (NullPublisher) Publish(context.Context, EventType, string, any) error { return nil }

func (NullPublisher) Close() error { return nil }

// New returns a Kafka publisher when cfg enables events, otherwise a NullPublisher.
func New(cfg Config) (Publisher, error) {
	if !cfg.Enabled {
		return NullPublisher{}, nil
	}
	return NewKafkaPublisher(cfg)
}

package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// EventType names a change to a service type
type EventType string

const (
	ServiceTypeCreated       EventType = "service_type.created"
	ServiceTypeUpdated       EventType = "service_type.updated"
	ServiceTypeStatusChanged EventType = "service_type.status_changed"
	ServiceTypeDeleted       EventType = "service_type.deleted"
)

// Publisher sends change events to downstream consumers.
type Publisher interface {
	// Publish sends data as an event of the given type, partitioned by key.
	Publish(ctx context.Context, eventType EventType, key string, data any) error
	Close() error
}

// Message is the envelope written to the topic
type Message struct {
	Type      EventType       `json:"type"`
	Data      json.RawMessage `json:"data"`
	Timestamp time.Time       `json:"timestamp"`
	Source    string          `json:"source"`
	TraceID   string          `json:"trace_id"`
}

// NewMessage wraps data in an envelope stamped with the current time and a fresh trace id.
func NewMessage(eventType EventType, data any, source string) (*Message, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("events: marshal %s payload: %w", eventType, err)
	}

	return &Message{
		Type:      eventType,
		Data:      raw,
		Timestamp: time.Now().UTC(),
		Source:    source,
		TraceID:   uuid.NewString(),
	}, nil
}

package events

import "errors"

var ErrNoBrokers = errors.New("events: at least one kafka broker is required")

type Config struct {
	Enabled bool     `env:"EVENTS_ENABLED" env-default:"false"`
	Brokers []string `env:"KAFKA_BROKERS" env-separator:"," env-default:"localhost:9092"`
	Topic   string   `env:"SERVICE_TYPE_EVENTS_TOPIC" env-default:"service-type-events"`
	Source  string   `env:"EVENTS_SOURCE" env-default:"service-catalog"`
}

func (c Config) Validate() error {
	if !c.Enabled {
		return nil
	}
	if len(c.Brokers) == 0 {
		return ErrNoBrokers
	}
	if c.Topic == "" {
		return errors.New("events: topic is required")
	}
	return nil
}

func GetDefaultConfig() Config {
	return Config{
		Enabled: false,
		Brokers: []string{"localhost:9092"},
		Topic:   "service-type-events",
		Source:  "service-catalog",
	}
}

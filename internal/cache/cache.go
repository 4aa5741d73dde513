// Package cache is the shared key/value store behind the token revocation list.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"
)

const (
	RedisBackend  = "redis"
	MemoryBackend = "memory"
)

var ErrCacheMiss = errors.New("cache: key not found")

// Cache is the read/write surface callers depend on.
type Cache[V any] interface {
	// Get returns the value or ErrCacheMiss.
	Get(ctx context.Context, key string) (V, error)
	// Set stores value under key. A ttl <= 0 means no expiration.
	Set(ctx context.Context, key string, value V, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// Store is a Cache that owns connections or goroutines.
type Store[V any] interface {
	Cache[V]
	Ping(ctx context.Context) error
	Close() error
}

// Config selects and tunes a cache backend
type Config struct {
	Backend       string        `env:"CACHE_BACKEND" env-default:"memory" validate:"oneof=memory redis"`
	KeyPrefix     string        `env:"CACHE_KEY_PREFIX" env-default:"catalog:"`
	RedisAddr     string        `env:"REDIS_ADDR" env-default:"localhost:6379"`
	RedisPassword string        `env:"REDIS_PASSWORD" secret:"true"`
	RedisDB       int           `env:"REDIS_DB" env-default:"0"`
	RedisPoolSize int           `env:"REDIS_POOL_SIZE" env-default:"20"`
	OpTimeout     time.Duration `env:"CACHE_OP_TIMEOUT" env-default:"100ms"`
}

// New builds the backend named in cfg. An empty backend means memory.
func New[V any](cfg Config) (Store[V], error) {
	switch cfg.Backend {
	case RedisBackend:
		return NewRedisCache[V](RedisOptions{
			Addr:       cfg.RedisAddr,
			Password:   cfg.RedisPassword,
			DB:         cfg.RedisDB,
			PoolSize:   cfg.RedisPoolSize,
			MaxRetries: 2,
			OpTimeout:  cfg.OpTimeout,
			KeyPrefix:  cfg.KeyPrefix,
		}), nil
	case MemoryBackend, "":
		return NewMemoryCache[V](), nil
	default:
		return nil, fmt.Errorf("cache: unknown backend %q", cfg.Backend)
	}
}

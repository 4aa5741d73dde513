package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultOpTimeout = 50 * time.Millisecond

// RedisOptions configures the client and the per call deadline
type RedisOptions struct {
	Addr        string
	Password    string
	DB          int
	PoolSize    int
	MaxRetries  int
	DialTimeout time.Duration
	OpTimeout   time.Duration
	KeyPrefix   string
}

// RedisCache stores JSON encoded values under KeyPrefix so replicas share
// one revocation list.
type RedisCache[V any] struct {
	client    redis.UniversalClient
	prefix    string
	opTimeout time.Duration
}

var _ Store[string] = (*RedisCache[string])(nil)

func NewRedisCache[V any](opts RedisOptions) *RedisCache[V] {
	client := redis.NewClient(&redis.Options{
		Addr:        opts.Addr,
		Password:    opts.Password,
		DB:          opts.DB,
		PoolSize:    opts.PoolSize,
		MaxRetries:  opts.MaxRetries,
		DialTimeout: opts.DialTimeout,
	})
	return NewRedisCacheWithClient[V](client, opts.KeyPrefix, opts.OpTimeout)
}

// NewRedisCacheWithClient wraps an existing client, e.g. a cluster client.
func NewRedisCacheWithClient[V any](client redis.UniversalClient, prefix string, opTimeout time.Duration) *RedisCache[V] {
	if opTimeout <= 0 {
		opTimeout = defaultOpTimeout
	}
	return &RedisCache[V]{client: client, prefix: prefix, opTimeout: opTimeout}
}

func (r *RedisCache[V]) key(k string) string {
	return r.prefix + k
}

func (r *RedisCache[V]) Get(ctx context.Context, key string) (V, error) {
	var val V
	ctx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()

	data, err := r.client.Get(ctx, r.key(key)).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		return val, ErrCacheMiss
	case err != nil:
		return val, err
	}

	if err := json.Unmarshal(data, &val); err != nil {
		var zero V
		return zero, fmt.Errorf("cache: decode %q: %w", key, err)
	}
	return val, nil
}

func (r *RedisCache[V]) Set(ctx context.Context, key string, value V, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache: encode %q: %w", key, err)
	}
	if ttl < 0 {
		ttl = 0
	}

	ctx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()
	return r.client.Set(ctx, r.key(key), data, ttl).Err()
}

func (r *RedisCache[V]) Delete(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()
	return r.client.Del(ctx, r.key(key)).Err()
}

func (r *RedisCache[V]) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()
	return r.client.Ping(ctx).Err()
}

func (r *RedisCache[V]) Close() error {
	return r.client.Close()
}

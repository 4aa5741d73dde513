package cache

import (
	"context"
	"hash/maphash"
	"sync"
	"time"
)

type entry[V any] struct {
	value     V
	expiresAt time.Time // zero means no expiry
}

func (e entry[V]) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

type bucket[V any] struct {
	mu      sync.Mutex
	entries map[string]entry[V]
}

type memoryOptions struct {
	buckets    int
	sweepEvery time.Duration
	now        func() time.Time
}

// MemoryOption tunes a MemoryCache
type MemoryOption func(*memoryOptions)

// WithBuckets sets the number of independently locked buckets
func WithBuckets(n int) MemoryOption {
	return func(o *memoryOptions) { o.buckets = n }
}

// WithSweepInterval sets how often expired entries are dropped. Zero disables the sweeper.
func WithSweepInterval(d time.Duration) MemoryOption {
	return func(o *memoryOptions) { o.sweepEvery = d }
}

// WithClock replaces time.Now
func WithClock(now func() time.Time) MemoryOption {
	return func(o *memoryOptions) { o.now = now }
}

// MemoryCache keeps entries in process. It is the single replica fallback
// when no Redis is configured.
type MemoryCache[V any] struct {
	seed    maphash.Seed
	buckets []*bucket[V]
	now     func() time.Time

	done chan struct{}
	once sync.Once
	wg   sync.WaitGroup
}

var _ Store[string] = (*MemoryCache[string])(nil)

func NewMemoryCache[V any](opts ...MemoryOption) *MemoryCache[V] {
	o := memoryOptions{buckets: 64, sweepEvery: time.Second, now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	if o.buckets < 1 {
		o.buckets = 1
	}

	mc := &MemoryCache[V]{
		seed:    maphash.MakeSeed(),
		buckets: make([]*bucket[V], o.buckets),
		now:     o.now,
		done:    make(chan struct{}),
	}
	for i := range mc.buckets {
		mc.buckets[i] = &bucket[V]{entries: make(map[string]entry[V])}
	}

	if o.sweepEvery > 0 {
		mc.wg.Add(1)
		go mc.sweepLoop(o.sweepEvery)
	}
	return mc
}

func (mc *MemoryCache[V]) bucketFor(key string) *bucket[V] {
	return mc.buckets[maphash.String(mc.seed, key)%uint64(len(mc.buckets))]
}

func (mc *MemoryCache[V]) Get(_ context.Context, key string) (V, error) {
	b := mc.bucketFor(key)
	b.mu.Lock()
	defer b.mu.Unlock()

	e, ok := b.entries[key]
	if !ok {
		var zero V
		return zero, ErrCacheMiss
	}
	if e.expired(mc.now()) {
		delete(b.entries, key)
		var zero V
		return zero, ErrCacheMiss
	}
	return e.value, nil
}

func (mc *MemoryCache[V]) Set(_ context.Context, key string, value V, ttl time.Duration) error {
	e := entry[V]{value: value}
	if ttl > 0 {
		e.expiresAt = mc.now().Add(ttl)
	}

	b := mc.bucketFor(key)
	b.mu.Lock()
	b.entries[key] = e
	b.mu.Unlock()
	return nil
}

func (mc *MemoryCache[V]) Delete(_ context.Context, key string) error {
	b := mc.bucketFor(key)
	b.mu.Lock()
	delete(b.entries, key)
	b.mu.Unlock()
	return nil
}

// Len reports stored entries, including expired ones the sweeper has not dropped yet.
func (mc *MemoryCache[V]) Len() int {
	n := 0
	for _, b := range mc.buckets {
		b.mu.Lock()
		n += len(b.entries)
		b.mu.Unlock()
	}
	return n
}

func (mc *MemoryCache[V]) Ping(context.Context) error {
	return nil
}

// Close stops the sweeper. It is safe to call more than once.
func (mc *MemoryCache[V]) Close() error {
	mc.once.Do(func() { close(mc.done) })
	mc.wg.Wait()
	return nil
}

func (mc *MemoryCache[V]) sweepLoop(every time.Duration) {
	defer mc.wg.Done()
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			mc.sweep()
		case <-mc.done:
			return
		}
	}
}

func (mc *MemoryCache[V]) sweep() {
	now := mc.now()
	for _, b := range mc.buckets {
		b.mu.Lock()
		for k, e := range b.entries {
			if e.expired(now) {
				delete(b.entries, k)
			}
		}
		b.mu.Unlock()
	}
}

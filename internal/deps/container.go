// Package deps holds the dependencies shared by every feature module.
package deps

import (
	"errors"
	"fmt"
	"sync"

	"gorm.io/gorm"

	"github.com/rubhub/catalog/internal/cache"
	"github.com/rubhub/catalog/internal/events"
	"github.com/rubhub/catalog/internal/logger"
	"github.com/rubhub/catalog/internal/sanitizer"
	"github.com/rubhub/catalog/internal/security"
)

var ErrNotProvided = errors.New("deps: nothing provided under key")

// Container is built once in main and handed to each module's mount and
// init functions. Modules publish their repositories and services in the
// registry so other modules can resolve them without importing each other.
type Container struct {
	DB         *gorm.DB
	TokenMaker security.Maker
	Sanitizer  sanitizer.HTMLStripperer
	Logger     logger.Logger
	Cache      cache.Cache[string]
	Publisher  events.Publisher

	mu       sync.RWMutex
	registry map[string]any
}

type Option func(*Container)

func WithDB(db *gorm.DB) Option {
	return func(c *Container) { c.DB = db }
}

func WithTokenMaker(m security.Maker) Option {
	return func(c *Container) { c.TokenMaker = m }
}

func WithSanitizer(s sanitizer.HTMLStripperer) Option {
	return func(c *Container) { c.Sanitizer = s }
}

func WithLogger(l logger.Logger) Option {
	return func(c *Container) { c.Logger = l }
}

func WithCache(store cache.Cache[string]) Option {
	return func(c *Container) { c.Cache = store }
}

func WithPublisher(p events.Publisher) Option {
	return func(c *Container) { c.Publisher = p }
}

// New applies opts over a container whose logger discards, whose publisher
// drops events and whose sanitizer strips all markup.
func New(opts ...Option) *Container {
	c := &Container{registry: make(map[string]any)}
	for _, opt := range opts {
		opt(c)
	}

	if c.Logger == nil {
		c.Logger = logger.NewNullLogger()
	}
	if c.Publisher == nil {
		c.Publisher = events.NullPublisher{}
	}
	if c.Sanitizer == nil {
		c.Sanitizer = sanitizer.NewHTMLStripper()
	}
	return c
}

// Provide stores v under key, replacing any earlier value.
func (c *Container) Provide(key string, v any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.registry[key] = v
}

func (c *Container) lookup(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.registry[key]
	return v, ok
}

// Resolve returns the value stored under key as a T.
func Resolve[T any](c *Container, key string) (T, error) {
	var zero T
	v, ok := c.lookup(key)
	if !ok {
		return zero, fmt.Errorf("%w %q", ErrNotProvided, key)
	}
	typed, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("deps: %q holds %T, want %T", key, v, (*T)(nil))
	}
	return typed, nil
}

// MustResolve is Resolve for wiring code, where a missing entry is a startup bug.
func MustResolve[T any](c *Container, key string) T {
	v, err := Resolve[T](c, key)
	if err != nil {
		panic(err)
	}
	return v
}

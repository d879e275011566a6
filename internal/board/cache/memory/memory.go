// Package memory provides an in-process Cache implementation. It is the
// default when no redis address is configured and is what the tests run
// against. Entries expire lazily on read and eagerly via a background
// janitor.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/driftlab/driftboard/internal/board/cache"
)

const defaultJanitorInterval = time.Minute

type entry struct {
	value     []byte
	expiresAt time.Time // zero means no expiry
}

func (e entry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

type Cache struct {
	mu      sync.RWMutex
	entries map[string]entry

	stopCh chan struct{}
	doneCh chan struct{}
}

// New returns a started in-memory cache. Call Close to stop the janitor.
func New() *Cache {
	return NewWithInterval(defaultJanitorInterval)
}

// NewWithInterval is New with a configurable janitor sweep interval,
// useful in tests.
func NewWithInterval(interval time.Duration) *Cache {
	if interval <= 0 {
		interval = defaultJanitorInterval
	}

	c := &Cache{
		entries: make(map[string]entry),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
	go c.run(interval)
	return c
}

func (c *Cache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	e := entry{value: append([]byte(nil), value...)}
	if ttl > 0 {
		e.expiresAt = time.Now().Add(ttl)
	}

	c.mu.Lock()
	c.entries[key] = e
	c.mu.Unlock()
	return nil
}

func (c *Cache) Get(ctx context.Context, key string) ([]byte, error) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || e.expired(time.Now()) {
		return nil, cache.ErrCacheMiss
	}
	return append([]byte(nil), e.value...), nil
}

func (c *Cache) Del(ctx context.Context, key string) error {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
	return nil
}

func (c *Cache) Ping(ctx context.Context) error { return nil }

// Close stops the janitor. Blocks until the sweep loop has exited.
func (c *Cache) Close() error {
	close(c.stopCh)
	<-c.doneCh
	return nil
}

// run is the janitor loop evicting expired entries so the map does not grow
// without bound between reads.
func (c *Cache) run(interval time.Duration) {
	defer close(c.doneCh)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.sweep()
		case <-c.stopCh:
			return
		}
	}
}

func (c *Cache) sweep() {
	now := time.Now()

	c.mu.Lock()
	for k, e := range c.entries {
		if e.expired(now) {
			delete(c.entries, k)
		}
	}
	c.mu.Unlock()
}

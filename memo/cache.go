// Package memo provides time-bounded memoization with background pre-fetch
// and de-duplication of concurrent computations for the same key.
package memo

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Default cache settings.
const (
	DefaultMaxAge   = time.Hour
	DefaultPreFetch = 0.333
)

// Func computes the value for a key.
type Func[V any] func(ctx context.Context) (V, error)

// Cache memoizes values by key for MaxAge. When a value is read while less
// than PreFetch*MaxAge of its lifetime remains, it is returned as is and a
// refresh starts in the background. At most one computation per key runs
// at a time; concurrent callers for that key share its result.
//
// Failed computations are not cached. A failed background refresh leaves the
// previous value in place until it expires.
type Cache[V any] struct {
	MaxAge   time.Duration
	PreFetch float64 // Fraction of MaxAge; zero disables pre-fetch

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time

	mu      sync.Mutex
	entries map[string]entry[V]
	group   singleflight.Group
}

type entry[V any] struct {
	value     V
	createdAt time.Time
}

// New creates a Cache with the given lifetime and pre-fetch fraction.
func New[V any](maxAge time.Duration, preFetch float64) *Cache[V] {
	return &Cache[V]{
		MaxAge:   maxAge,
		PreFetch: preFetch,
		entries:  make(map[string]entry[V]),
	}
}

func (c *Cache[V]) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

// Get returns the value for key, computing it with fn on a miss.
// The computation is detached from ctx's cancellation so that other callers
// waiting on it are unaffected; Get itself returns early with ctx.Err() if
// ctx is done first.
func (c *Cache[V]) Get(ctx context.Context, key string, fn Func[V]) (V, error) {
	if v, ok := c.lookup(ctx, key, fn); ok {
		return v, nil
	}

	ch := c.group.DoChan(key, c.compute(ctx, key, fn))
	select {
	case res := <-ch:
		if res.Err != nil {
			var zero V
			return zero, res.Err
		}
		return res.Val.(V), nil
	case <-ctx.Done():
		var zero V
		return zero, ctx.Err()
	}
}

// lookup returns a live entry, starting a background refresh when the entry
// is inside the pre-fetch window. Expired entries are evicted.
func (c *Cache[V]) lookup(ctx context.Context, key string, fn Func[V]) (V, bool) {
	now := c.now()

	c.mu.Lock()
	e, ok := c.entries[key]
	if ok && now.Sub(e.createdAt) >= c.MaxAge {
		delete(c.entries, key)
		ok = false
	}
	c.mu.Unlock()

	if !ok {
		var zero V
		return zero, false
	}

	remaining := c.MaxAge - now.Sub(e.createdAt)
	if c.PreFetch > 0 && remaining <= time.Duration(float64(c.MaxAge)*c.PreFetch) {
		// Result channel is buffered; nobody needs to read it.
		c.group.DoChan(key, c.compute(ctx, key, fn))
	}
	return e.value, true
}

func (c *Cache[V]) compute(ctx context.Context, key string, fn Func[V]) func() (any, error) {
	ctx = context.WithoutCancel(ctx)
	return func() (any, error) {
		v, err := fn(ctx)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.entries[key] = entry[V]{value: v, createdAt: c.now()}
		c.mu.Unlock()
		return v, nil
	}
}

// Len returns the number of entries, including expired ones not yet evicted.
func (c *Cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

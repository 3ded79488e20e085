package memo_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fwojciec/chromemarks/memo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock is a manually advanced clock.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newCache(clock *fakeClock, preFetch float64) *memo.Cache[int] {
	c := memo.New[int](time.Hour, preFetch)
	c.Now = clock.Now
	return c
}

// counter returns a Func that yields 1, 2, 3, ... and counts its calls.
func counter(calls *atomic.Int32) memo.Func[int] {
	return func(context.Context) (int, error) {
		return int(calls.Add(1)), nil
	}
}

func TestCache_Get(t *testing.T) {
	t.Parallel()

	t.Run("returns cached value within max age", func(t *testing.T) {
		t.Parallel()

		clock := newFakeClock()
		cache := newCache(clock, 0)
		var calls atomic.Int32

		first, err := cache.Get(context.Background(), "k", counter(&calls))
		require.NoError(t, err)
		clock.Advance(59 * time.Minute)
		second, err := cache.Get(context.Background(), "k", counter(&calls))
		require.NoError(t, err)

		assert.Equal(t, 1, first)
		assert.Equal(t, 1, second)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("keys are independent", func(t *testing.T) {
		t.Parallel()

		cache := newCache(newFakeClock(), 0)
		var calls atomic.Int32

		a, err := cache.Get(context.Background(), "a", counter(&calls))
		require.NoError(t, err)
		b, err := cache.Get(context.Background(), "b", counter(&calls))
		require.NoError(t, err)

		assert.Equal(t, 1, a)
		assert.Equal(t, 2, b)
		assert.Equal(t, 2, cache.Len())
	})

	t.Run("recomputes after max age", func(t *testing.T) {
		t.Parallel()

		clock := newFakeClock()
		cache := newCache(clock, 0)
		var calls atomic.Int32

		_, err := cache.Get(context.Background(), "k", counter(&calls))
		require.NoError(t, err)
		clock.Advance(time.Hour)
		v, err := cache.Get(context.Background(), "k", counter(&calls))

		require.NoError(t, err)
		assert.Equal(t, 2, v)
		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("does not cache failures", func(t *testing.T) {
		t.Parallel()

		cache := newCache(newFakeClock(), 0)
		fail := true
		fn := func(context.Context) (int, error) {
			if fail {
				return 0, errors.New("read failed")
			}
			return 7, nil
		}

		_, err := cache.Get(context.Background(), "k", fn)
		require.EqualError(t, err, "read failed")
		assert.Zero(t, cache.Len())

		fail = false
		v, err := cache.Get(context.Background(), "k", fn)

		require.NoError(t, err)
		assert.Equal(t, 7, v)
	})

	t.Run("concurrent callers share one computation", func(t *testing.T) {
		t.Parallel()

		cache := newCache(newFakeClock(), 0)
		var calls atomic.Int32
		release := make(chan struct{})
		fn := func(context.Context) (int, error) {
			calls.Add(1)
			<-release
			return 42, nil
		}

		var wg sync.WaitGroup
		results := make([]int, 10)
		for i := range results {
			wg.Add(1)
			go func() {
				defer wg.Done()
				v, err := cache.Get(context.Background(), "k", fn)
				assert.NoError(t, err)
				results[i] = v
			}()
		}

		require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, time.Millisecond)
		close(release)
		wg.Wait()

		assert.Equal(t, int32(1), calls.Load())
		for _, v := range results {
			assert.Equal(t, 42, v)
		}
	})

	t.Run("refreshes in background inside pre-fetch window", func(t *testing.T) {
		t.Parallel()

		clock := newFakeClock()
		cache := newCache(clock, memo.DefaultPreFetch)
		var calls atomic.Int32
		release := make(chan struct{})
		fn := func(context.Context) (int, error) {
			n := calls.Add(1)
			if n > 1 {
				<-release
			}
			return int(n), nil
		}

		_, err := cache.Get(context.Background(), "k", fn)
		require.NoError(t, err)
		clock.Advance(50 * time.Minute)

		// The stale value comes back without waiting for the refresh.
		v, err := cache.Get(context.Background(), "k", fn)
		require.NoError(t, err)
		assert.Equal(t, 1, v)
		require.Eventually(t, func() bool { return calls.Load() == 2 }, time.Second, time.Millisecond)

		close(release)
		require.Eventually(t, func() bool {
			v, err := cache.Get(context.Background(), "k", fn)
			return err == nil && v == 2
		}, time.Second, time.Millisecond)
		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("does not refresh outside pre-fetch window", func(t *testing.T) {
		t.Parallel()

		clock := newFakeClock()
		cache := newCache(clock, memo.DefaultPreFetch)
		var calls atomic.Int32

		_, err := cache.Get(context.Background(), "k", counter(&calls))
		require.NoError(t, err)
		clock.Advance(30 * time.Minute)
		_, err = cache.Get(context.Background(), "k", counter(&calls))
		require.NoError(t, err)

		assert.Never(t, func() bool { return calls.Load() > 1 }, 50*time.Millisecond, 5*time.Millisecond)
	})

	t.Run("failed refresh keeps previous value", func(t *testing.T) {
		t.Parallel()

		clock := newFakeClock()
		cache := newCache(clock, memo.DefaultPreFetch)
		var calls atomic.Int32
		fn := func(context.Context) (int, error) {
			if calls.Add(1) > 1 {
				return 0, errors.New("refresh failed")
			}
			return 1, nil
		}

		_, err := cache.Get(context.Background(), "k", fn)
		require.NoError(t, err)
		clock.Advance(55 * time.Minute)
		_, err = cache.Get(context.Background(), "k", fn)
		require.NoError(t, err)
		require.Eventually(t, func() bool { return calls.Load() >= 2 }, time.Second, time.Millisecond)

		v, err := cache.Get(context.Background(), "k", fn)

		require.NoError(t, err)
		assert.Equal(t, 1, v)
	})

	t.Run("canceled caller does not cancel the computation", func(t *testing.T) {
		t.Parallel()

		cache := newCache(newFakeClock(), 0)
		release := make(chan struct{})
		var sawCancel atomic.Bool
		fn := func(ctx context.Context) (int, error) {
			<-release
			sawCancel.Store(ctx.Err() != nil)
			return 9, nil
		}

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() {
			_, err := cache.Get(ctx, "k", fn)
			done <- err
		}()
		cancel()
		assert.ErrorIs(t, <-done, context.Canceled)

		close(release)
		require.Eventually(t, func() bool { return cache.Len() == 1 }, time.Second, time.Millisecond)
		assert.False(t, sawCancel.Load())

		v, err := cache.Get(context.Background(), "k", fn)
		require.NoError(t, err)
		assert.Equal(t, 9, v)
	})
}

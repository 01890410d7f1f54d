package github

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenCache(t *testing.T) {
	t.Run("second call hits the cache", func(t *testing.T) {
		cache := newTokenCache()
		var mints atomic.Int32
		mint := func(_ context.Context, id int64) (string, time.Time, error) {
			mints.Add(1)
			return fmt.Sprintf("tok-%d", id), time.Now().Add(time.Hour), nil
		}

		first, err := cache.token(context.Background(), 1, mint)
		require.NoError(t, err)
		second, err := cache.token(context.Background(), 1, mint)
		require.NoError(t, err)

		assert.Equal(t, "tok-1", first)
		assert.Equal(t, first, second)
		assert.Equal(t, int32(1), mints.Load())
	})

	t.Run("installations are cached independently", func(t *testing.T) {
		cache := newTokenCache()
		mint := func(_ context.Context, id int64) (string, time.Time, error) {
			return fmt.Sprintf("tok-%d", id), time.Now().Add(time.Hour), nil
		}

		a, err := cache.token(context.Background(), 1, mint)
		require.NoError(t, err)
		b, err := cache.token(context.Background(), 2, mint)
		require.NoError(t, err)
		assert.NotEqual(t, a, b)
	})

	t.Run("token inside the safety buffer is re-minted", func(t *testing.T) {
		cache := newTokenCache()
		var mints atomic.Int32
		mint := func(_ context.Context, _ int64) (string, time.Time, error) {
			n := mints.Add(1)
			// expires in 1 minute, well inside the 5 minute buffer
			return fmt.Sprintf("tok-gen-%d", n), time.Now().Add(time.Minute), nil
		}

		first, err := cache.token(context.Background(), 1, mint)
		require.NoError(t, err)
		second, err := cache.token(context.Background(), 1, mint)
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
		assert.Equal(t, int32(2), mints.Load())
	})

	t.Run("mint failure is returned and not cached", func(t *testing.T) {
		cache := newTokenCache()
		calls := 0
		mint := func(_ context.Context, _ int64) (string, time.Time, error) {
			calls++
			if calls == 1 {
				return "", time.Time{}, errors.New("github unavailable")
			}
			return "tok-recovered", time.Now().Add(time.Hour), nil
		}

		_, err := cache.token(context.Background(), 1, mint)
		assert.Error(t, err)

		tok, err := cache.token(context.Background(), 1, mint)
		require.NoError(t, err)
		assert.Equal(t, "tok-recovered", tok)
	})

	t.Run("concurrent refreshes collapse into one mint", func(t *testing.T) {
		cache := newTokenCache()
		var mints atomic.Int32
		release := make(chan struct{})
		mint := func(_ context.Context, _ int64) (string, time.Time, error) {
			mints.Add(1)
			<-release
			return "tok-shared", time.Now().Add(time.Hour), nil
		}

		const callers = 8
		var wg sync.WaitGroup
		results := make([]string, callers)
		for i := range callers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				tok, err := cache.token(context.Background(), 1, mint)
				assert.NoError(t, err)
				results[i] = tok
			}()
		}

		// give every goroutine a chance to join the flight before releasing it
		time.Sleep(50 * time.Millisecond)
		close(release)
		wg.Wait()

		assert.Equal(t, int32(1), mints.Load())
		for _, tok := range results {
			assert.Equal(t, "tok-shared", tok)
		}
	})
}

func TestCachedTokenFresh(t *testing.T) {
	now := time.Now()

	assert.False(t, cachedToken{}.fresh(now), "zero value is never fresh")
	assert.True(t, cachedToken{value: "t", expiresAt: now.Add(time.Hour)}.fresh(now))
	assert.False(t, cachedToken{value: "t", expiresAt: now.Add(time.Minute)}.fresh(now),
		"expiry inside the safety buffer counts as stale")
	assert.False(t, cachedToken{value: "t", expiresAt: now.Add(-time.Minute)}.fresh(now))
}

package github

import (
	"context"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// expirySafetyBuffer is subtracted from a token's expiry when deciding
// whether it is still usable, so a token is never handed out moments before
// GitHub rejects it.
const expirySafetyBuffer = 5 * time.Minute

type mintFunc func(ctx context.Context, installationID int64) (string, time.Time, error)

type cachedToken struct {
	value     string
	expiresAt time.Time
}

func (t cachedToken) fresh(now time.Time) bool {
	return t.value != "" && now.Before(t.expiresAt.Add(-expirySafetyBuffer))
}

// tokenCache caches installation tokens keyed by installation ID. Concurrent
// refreshes of the same installation are collapsed into a single mint call
// through singleflight; concurrent reads are lock-free beyond an RWMutex.
type tokenCache struct {
	mu     sync.RWMutex
	tokens map[int64]cachedToken
	group  singleflight.Group
}

func newTokenCache() *tokenCache {
	return &tokenCache{tokens: make(map[int64]cachedToken)}
}

func (c *tokenCache) token(ctx context.Context, installationID int64, mint mintFunc) (string, error) {
	c.mu.RLock()
	cached := c.tokens[installationID]
	c.mu.RUnlock()
	if cached.fresh(time.Now()) {
		return cached.value, nil
	}

	key := strconv.FormatInt(installationID, 10)
	v, err, _ := c.group.Do(key, func() (any, error) {
		// A concurrent caller may have refreshed while we waited for the flight.
		c.mu.RLock()
		cached := c.tokens[installationID]
		c.mu.RUnlock()
		if cached.fresh(time.Now()) {
			return cached.value, nil
		}

		value, expiresAt, err := mint(ctx, installationID)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.tokens[installationID] = cachedToken{value: value, expiresAt: expiresAt}
		c.mu.Unlock()
		return value, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

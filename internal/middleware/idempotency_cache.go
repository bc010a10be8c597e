package middleware

import (
	"net/http"
	"sync"
	"time"
)

// idempotencyKey identifies one client retry series. The same Idempotency-Key sent by another
// household member, or for another inventory action, is a different series.
type idempotencyKey struct {
	HouseholdID string
	UserID      string
	Action      string
	Key         string
}

// cachedResponse is the stored outcome of a completed inventory mutation.
type cachedResponse struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

type idempotencyEntry struct {
	fingerprint [32]byte
	// response is nil while the first request is still running.
	response *cachedResponse
	storedAt time.Time
}

type reservation int

const (
	reserved reservation = iota
	replay
	inProgress
	keyReused
)

// idempotencyCache holds in-flight and completed mutations per key.
// Expired entries are swept while reserving, so the cache needs no background goroutine.
type idempotencyCache struct {
	mu        sync.Mutex
	items     map[idempotencyKey]*idempotencyEntry
	ttl       time.Duration
	lastSweep time.Time
	now       func() time.Time
}

func newIdempotencyCache(ttl time.Duration) *idempotencyCache {
	return &idempotencyCache{
		items: make(map[idempotencyKey]*idempotencyEntry),
		ttl:   ttl,
		now:   time.Now,
	}
}

// reserve claims key for a request with the given body fingerprint.
// A completed entry with the same fingerprint is returned for replay.
func (c *idempotencyCache) reserve(key idempotencyKey, fingerprint [32]byte) (*cachedResponse, reservation) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	c.sweepLocked(now)

	entry, ok := c.items[key]
	if ok && now.Sub(entry.storedAt) > c.ttl {
		delete(c.items, key)
		ok = false
	}
	switch {
	case !ok:
		c.items[key] = &idempotencyEntry{fingerprint: fingerprint, storedAt: now}
		return nil, reserved
	case entry.fingerprint != fingerprint:
		return nil, keyReused
	case entry.response == nil:
		return nil, inProgress
	default:
		return entry.response, replay
	}
}

// complete stores the response of a reserved key.
func (c *idempotencyCache) complete(key idempotencyKey, resp *cachedResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.items[key]; ok {
		entry.response = resp
		entry.storedAt = c.now()
	}
}

// release forgets a reservation whose request did not succeed, so the client may retry.
func (c *idempotencyCache) release(key idempotencyKey) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.items[key]; ok && entry.response == nil {
		delete(c.items, key)
	}
}

func (c *idempotencyCache) sweepLocked(now time.Time) {
	interval := c.ttl
	if interval > time.Minute {
		interval = time.Minute
	}
	if now.Sub(c.lastSweep) < interval {
		return
	}
	c.lastSweep = now
	for key, entry := range c.items {
		if now.Sub(entry.storedAt) > c.ttl {
			delete(c.items, key)
		}
	}
}

func (c *idempotencyCache) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

package services

import (
	"time"

	"github.com/emjayi/price_converter/internal/core/domain"
	"github.com/patrickmn/go-cache"
)

const (
	latestRatesKey = "latest_rates"
	fetchLockKey   = "latest_rates_fetch"

	// DefaultRateCacheTTL is how long a remote snapshot is reused.
	DefaultRateCacheTTL = 5 * time.Minute
	// DefaultFetchLockTTL bounds how long a crashed fetch can block others.
	DefaultFetchLockTTL = 30 * time.Second
)

// RateCache holds the latest remote snapshot for a limited time.
type RateCache struct {
	store *cache.Cache
	ttl   time.Duration
}

// NewRateCache creates a cache whose entries expire after ttl.
func NewRateCache(ttl time.Duration) *RateCache {
	if ttl <= 0 {
		ttl = DefaultRateCacheTTL
	}
	return &RateCache{store: cache.New(ttl, ttl*2), ttl: ttl}
}

// Get returns the cached snapshot and its expiry if it has not expired.
func (c *RateCache) Get() (*domain.RemoteRateSnapshot, time.Time, bool) {
	v, expiresAt, found := c.store.GetWithExpiration(latestRatesKey)
	if !found {
		return nil, time.Time{}, false
	}
	snap, ok := v.(*domain.RemoteRateSnapshot)
	if !ok {
		return nil, time.Time{}, false
	}
	return snap, expiresAt, true
}

// Set replaces the cached snapshot.
func (c *RateCache) Set(snap *domain.RemoteRateSnapshot) {
	c.store.Set(latestRatesKey, snap, c.ttl)
}

// Invalidate drops the cached snapshot.
func (c *RateCache) Invalidate() {
	c.store.Delete(latestRatesKey)
}

// FetchLock is a soft, self-expiring mutex around the remote fetch. Holders
// that never release it lose it after the TTL.
type FetchLock struct {
	store *cache.Cache
	ttl   time.Duration
}

// NewFetchLock creates a lock that expires ttl after acquisition.
func NewFetchLock(ttl time.Duration) *FetchLock {
	if ttl <= 0 {
		ttl = DefaultFetchLockTTL
	}
	return &FetchLock{store: cache.New(ttl, ttl), ttl: ttl}
}

// TryAcquire takes the lock without waiting. Add is atomic and treats an
// expired entry as absent.
func (l *FetchLock) TryAcquire() bool {
	return l.store.Add(fetchLockKey, time.Now(), l.ttl) == nil
}

// Held reports whether an unexpired holder exists.
func (l *FetchLock) Held() bool {
	_, found := l.store.Get(fetchLockKey)
	return found
}

// Release frees the lock.
func (l *FetchLock) Release() {
	l.store.Delete(fetchLockKey)
}

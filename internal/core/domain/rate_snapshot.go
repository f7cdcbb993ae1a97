package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RemoteRateSnapshot is one successful response of the remote rate service:
// item key to the reported value, as received.
type RemoteRateSnapshot struct {
	Values    map[string]string
	FetchedAt time.Time
}

// Lookup parses the value reported under key. Values that are missing,
// unparsable or not positive are not found.
func (s *RemoteRateSnapshot) Lookup(key string) (decimal.Decimal, bool) {
	if s == nil {
		return decimal.Zero, false
	}
	raw, ok := s.Values[key]
	if !ok {
		return decimal.Zero, false
	}
	value, ok := ParseLooseDecimal(raw)
	if !ok || !value.IsPositive() {
		return decimal.Zero, false
	}
	return value, true
}

// RateCacheStatus describes the shared remote rate cache for health checks.
type RateCacheStatus struct {
	FetchInProgress bool      `json:"fetchInProgress"`
	Cached          bool      `json:"cached"`
	CachedItems     int       `json:"cachedItems"`
	FetchedAt       time.Time `json:"fetchedAt,omitempty"`
	ExpiresAt       time.Time `json:"expiresAt,omitempty"`
}

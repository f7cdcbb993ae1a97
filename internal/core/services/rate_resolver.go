package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/emjayi/price_converter/internal/core/domain"
	"github.com/emjayi/price_converter/internal/middleware"
	"github.com/shopspring/decimal"
)

// RemoteRateSource fetches the full rate table from the remote service.
type RemoteRateSource interface {
	FetchLatest(ctx context.Context, apiKey string) (*domain.RemoteRateSnapshot, error)
}

// remoteItemAliases lists the item keys tried for well-known currencies, in order.
// Other currencies try only their lowercased code.
var remoteItemAliases = map[string][]string{
	"USD": {"usd_sell", "usd"},
	"EUR": {"eur_sell", "eur"},
	"GBP": {"gbp_sell", "gbp"},
	"AED": {"aed_sell", "aed"},
	"TRY": {"try_sell", "try"},
	"CNY": {"cny_sell", "cny"},
	"CAD": {"cad_sell", "cad"},
	"AUD": {"aud_sell", "aud"},
	"CHF": {"chf_sell", "chf"},
	"JPY": {"jpy_sell", "jpy"},
	"RUB": {"rub_sell", "rub"},
}

// candidateKeys returns the remote item keys to try for code. For USD the
// configured item comes first.
func candidateKeys(code, remoteItem string) []string {
	aliases, known := remoteItemAliases[code]
	if !known {
		return []string{strings.ToLower(code)}
	}
	keys := make([]string, 0, len(aliases)+1)
	if code == domain.DefaultBaseCurrency && remoteItem != "" {
		keys = append(keys, remoteItem)
	}
	for _, alias := range aliases {
		if alias != remoteItem || code != domain.DefaultBaseCurrency {
			keys = append(keys, alias)
		}
	}
	return keys
}

// RateResolverOption configures a RateResolver.
type RateResolverOption func(*RateResolver)

// WithFetchTimeout bounds a single remote fetch.
func WithFetchTimeout(d time.Duration) RateResolverOption {
	return func(r *RateResolver) {
		if d > 0 {
			r.fetchTimeout = d
		}
	}
}

// RateResolver turns a currency code into Toman per unit. The order is:
// Toman and Rial constants, the remote service, the static table, the flat rate.
type RateResolver struct {
	remote       RemoteRateSource
	cache        *RateCache
	lock         *FetchLock
	fetchTimeout time.Duration
}

// NewRateResolver creates a resolver sharing cache and lock with every lookup.
func NewRateResolver(remote RemoteRateSource, cache *RateCache, lock *FetchLock, opts ...RateResolverOption) *RateResolver {
	r := &RateResolver{
		remote:       remote,
		cache:        cache,
		lock:         lock,
		fetchTimeout: 10 * time.Second,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ResolveRate never fails. Anything unexpected degrades to the flat rate.
func (r *RateResolver) ResolveRate(ctx context.Context, currencyCode string, settings domain.RateSettings) (rate decimal.Decimal) {
	defer func() {
		if rec := recover(); rec != nil {
			middleware.GetLoggerFromCtx(ctx).Error("Rate resolution panicked, using flat rate",
				slog.Any("panic", rec), slog.String("currency", currencyCode))
			rate = settings.FlatRate()
		}
	}()
	return r.NewLookup(settings).Rate(ctx, currencyCode)
}

// CacheStatus reports the shared snapshot cache and fetch lock.
func (r *RateResolver) CacheStatus() domain.RateCacheStatus {
	status := domain.RateCacheStatus{FetchInProgress: r.lock.Held()}
	if snap, expiresAt, ok := r.cache.Get(); ok {
		status.Cached = true
		status.CachedItems = len(snap.Values)
		status.FetchedAt = snap.FetchedAt
		status.ExpiresAt = expiresAt
	}
	return status
}

// NewLookup starts a resolution session. The remote snapshot is loaded at
// most once per session.
func (r *RateResolver) NewLookup(settings domain.RateSettings) *RateLookup {
	return &RateLookup{resolver: r, settings: settings}
}

// RateLookup memoizes the remote snapshot for one resolution.
type RateLookup struct {
	resolver *RateResolver
	settings domain.RateSettings
	snapshot *domain.RemoteRateSnapshot
	loaded   bool
}

// Rate returns a positive Toman rate for code.
func (l *RateLookup) Rate(ctx context.Context, currencyCode string) decimal.Decimal {
	code := domain.NormalizeCurrency(currencyCode)
	if code == "" {
		code = domain.DefaultBaseCurrency
	}

	switch code {
	case domain.TargetCurrency:
		return decimal.NewFromInt(1)
	case domain.SubunitCurrency:
		return domain.SubunitRate
	}

	if l.settings.APIKey != "" {
		if snap := l.remoteSnapshot(ctx); snap != nil {
			for _, key := range candidateKeys(code, l.settings.RemoteItem) {
				if rate, ok := snap.Lookup(key); ok {
					return rate
				}
			}
		}
	}

	if rate, ok := l.settings.StaticRate(code); ok {
		return rate
	}

	return l.settings.FlatRate()
}

func (l *RateLookup) remoteSnapshot(ctx context.Context) *domain.RemoteRateSnapshot {
	if !l.loaded {
		l.snapshot = l.resolver.loadSnapshot(ctx, l.settings.APIKey)
		l.loaded = true
	}
	return l.snapshot
}

// loadSnapshot returns the cached snapshot or fetches a new one. While another
// caller holds the fetch lock it returns nil immediately instead of waiting.
func (r *RateResolver) loadSnapshot(ctx context.Context, apiKey string) *domain.RemoteRateSnapshot {
	logger := middleware.GetLoggerFromCtx(ctx)

	if r.lock.Held() {
		logger.Debug("Remote rate fetch in progress elsewhere, skipping remote source")
		return nil
	}
	if snap, _, ok := r.cache.Get(); ok {
		return snap
	}
	if r.remote == nil || !r.lock.TryAcquire() {
		return nil
	}
	defer r.lock.Release()

	fetchCtx, cancel := context.WithTimeout(ctx, r.fetchTimeout)
	defer cancel()

	snap, err := r.remote.FetchLatest(fetchCtx, apiKey)
	if err != nil {
		logger.Warn("Remote rate fetch failed", slog.String("error", err.Error()))
		return nil
	}
	r.cache.Set(snap)
	logger.Info("Remote rates refreshed", slog.Int("items", len(snap.Values)))
	return snap
}

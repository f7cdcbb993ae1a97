package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/emjayi/price_converter/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPublicHealth(t *testing.T) {
	r := newTestRouter(t, newTestMocks(), nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestPricingHealth(t *testing.T) {
	tm := newTestMocks()
	r := newTestRouter(t, tm, nil)

	snapshot := testSnapshot()
	snapshot.APIKey = "key"
	tm.settings.On("Snapshot", mock.Anything).Return(snapshot).Once()
	tm.rates.On("CacheStatus").Return(domain.RateCacheStatus{
		Cached:      true,
		CachedItems: 12,
		FetchedAt:   time.Now().Add(-90 * time.Second),
	}).Once()
	tm.rates.On("ResolveRate", mock.Anything, "USD", snapshot).Return(d("61250")).Once()

	w := doRequest(t, r, http.MethodGet, "/api/v1/health/pricing", "")

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["priceOverrideEnabled"])
	assert.Equal(t, true, resp["apiKeyConfigured"])
	assert.Equal(t, true, resp["snapshotCached"])
	assert.Equal(t, float64(12), resp["snapshotItems"])
	assert.Equal(t, float64(1), resp["staticRateCount"])
	assert.Equal(t, "61250", resp["usdRate"])
	assert.InDelta(t, 90, resp["snapshotAgeSeconds"], 5)
}

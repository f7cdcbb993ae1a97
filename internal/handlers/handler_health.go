package handlers

import (
	"net/http"
	"time"

	"github.com/emjayi/price_converter/internal/core/domain"
	portssvc "github.com/emjayi/price_converter/internal/core/ports/services"
	"github.com/emjayi/price_converter/internal/dto"
	"github.com/gin-gonic/gin"
)

type healthHandler struct {
	settings portssvc.SettingsReaderSvc
	rates    portssvc.RateResolverSvc
	now      func() time.Time
}

func registerHealthRoutes(rg *gin.RouterGroup, settings portssvc.SettingsReaderSvc, rates portssvc.RateResolverSvc) {
	h := &healthHandler{settings: settings, rates: rates, now: time.Now}
	rg.GET("/health/pricing", h.pricingHealth)
}

// pricingHealth godoc
// @Summary Report the state of the pricing pipeline
// @Description Kill switch, API key presence, remote fetch lock and cached snapshot, plus the current USD rate
// @Tags health
// @Produce  json
// @Success 200 {object} dto.PricingHealthResponse
// @Security BearerAuth
// @Router /health/pricing [get]
func (h *healthHandler) pricingHealth(c *gin.Context) {
	ctx := c.Request.Context()
	settings := h.settings.Snapshot(ctx)
	status := h.rates.CacheStatus()

	resp := dto.PricingHealthResponse{
		PriceOverrideEnabled: settings.PriceOverrideEnabled(),
		APIKeyConfigured:     settings.APIKey != "",
		RemoteItem:           settings.RemoteItem,
		StaticRateCount:      len(settings.StaticRates),
		MarkupMode:           string(settings.Markup.Mode),
		FetchInProgress:      status.FetchInProgress,
		SnapshotCached:       status.Cached,
		SnapshotItems:        status.CachedItems,
		USDRate:              h.rates.ResolveRate(ctx, domain.DefaultBaseCurrency, settings).String(),
	}
	if status.Cached && !status.FetchedAt.IsZero() {
		resp.SnapshotAgeSeconds = int64(h.now().Sub(status.FetchedAt).Seconds())
	}

	c.JSON(http.StatusOK, resp)
}

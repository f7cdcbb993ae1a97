package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/emjayi/price_converter/internal/apperrors"
	"github.com/emjayi/price_converter/internal/core/domain"
	portssvc "github.com/emjayi/price_converter/internal/core/ports/services"
	"github.com/emjayi/price_converter/internal/dto"
	"github.com/emjayi/price_converter/internal/middleware"
	"github.com/emjayi/price_converter/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
)

// priceHandler serves the fetch and convert calls of the admin screen.
type priceHandler struct {
	fetchService   portssvc.PriceFetchSvc
	conversion     portssvc.ConversionSvc
	settings       portssvc.SettingsReaderSvc
	productPricing portssvc.ProductPricingWriterSvc
}

func newPriceHandler(
	fetchService portssvc.PriceFetchSvc,
	conversion portssvc.ConversionSvc,
	settings portssvc.SettingsReaderSvc,
	productPricing portssvc.ProductPricingWriterSvc,
) *priceHandler {
	return &priceHandler{
		fetchService:   fetchService,
		conversion:     conversion,
		settings:       settings,
		productPricing: productPricing,
	}
}

// registerPriceRoutes registers the price fetch and conversion routes.
// Fetching is rate limited per client since each call loads a third-party page.
func registerPriceRoutes(
	rg *gin.RouterGroup,
	fetchService portssvc.PriceFetchSvc,
	conversion portssvc.ConversionSvc,
	settings portssvc.SettingsReaderSvc,
	productPricing portssvc.ProductPricingWriterSvc,
	fetchLimiter *limiter.Limiter,
) {
	h := newPriceHandler(fetchService, conversion, settings, productPricing)

	prices := rg.Group("/prices")
	{
		fetchHandlers := []gin.HandlerFunc{h.fetchPrice}
		if fetchLimiter != nil {
			fetchHandlers = append([]gin.HandlerFunc{middleware.RateLimit(fetchLimiter)}, fetchHandlers...)
		}
		prices.POST("/fetch", fetchHandlers...)
		prices.POST("/convert", h.convertPrice)
	}
}

// fetchPrice godoc
// @Summary Fetch a price from a product page
// @Description Downloads the page and extracts the first price, preferring the element matched by the selector hint
// @Tags prices
// @Accept  json
// @Produce  json
// @Param   request body dto.FetchPriceRequest true "Page URL and optional selector"
// @Success 200 {object} dto.FetchPriceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 422 {object} map[string]string "No price found"
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 502 {object} map[string]string "Page could not be fetched"
// @Security BearerAuth
// @Router /prices/fetch [post]
func (h *priceHandler) fetchPrice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.FetchPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for FetchPrice", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("url", req.URL))
	logger.Info("Received request to fetch price")

	price, err := h.fetchService.FetchPrice(c.Request.Context(), req.URL, req.Selector)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, apperrors.ErrInvalidURL):
			status = http.StatusBadRequest
		case errors.Is(err, apperrors.ErrNetwork), errors.Is(err, apperrors.ErrEmptyBody):
			status = http.StatusBadGateway
		case errors.Is(err, apperrors.ErrPriceNotFound):
			status = http.StatusUnprocessableEntity
		}
		logger.Warn("Price fetch failed", slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": apperrors.UserMessage(err)})
		return
	}

	if req.ProductID != nil {
		if _, err := h.productPricing.RecordFetchedPrice(c.Request.Context(), *req.ProductID, price, req.URL); err != nil {
			// the fetched price is still returned
			logger.Error("Failed to record price history", slog.Int64("product_id", *req.ProductID), slog.String("error", err.Error()))
		}
	}

	logger.Info("Price fetched successfully", slog.String("price", price.String()))
	c.JSON(http.StatusOK, dto.FetchPriceResponse{Price: price, Currency: domain.DefaultBaseCurrency})
}

// convertPrice godoc
// @Summary Convert a price to Toman
// @Description Converts an amount using the configured rates and markup. A markup mode in the request replaces the global markup.
// @Tags prices
// @Accept  json
// @Produce  json
// @Param   request body dto.ConvertPriceRequest true "Amount, currency and optional markup"
// @Success 200 {object} dto.ConvertPriceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /prices/convert [post]
func (h *priceHandler) convertPrice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ConvertPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ConvertPrice", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	if !req.Price.IsPositive() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
		return
	}

	currency := domain.NormalizeCurrency(req.Currency)
	if currency == "" {
		currency = domain.DefaultBaseCurrency
	}

	var override *domain.MarkupRule
	if req.MarkupMode != "" {
		mode, _ := domain.ParseMarkupMode(req.MarkupMode)
		override = &domain.MarkupRule{Mode: mode}
		if req.MarkupValue != nil {
			override.Value = *req.MarkupValue
		}
	}

	settings := h.settings.Snapshot(c.Request.Context())
	converted := h.conversion.Convert(c.Request.Context(), *req.Price, currency, settings, override)

	logger.Info("Price converted",
		slog.String("currency", currency),
		slog.String("original_price", req.Price.String()),
		slog.String("converted_price", converted.String()))
	c.JSON(http.StatusOK, dto.ConvertPriceResponse{
		OriginalPrice:  *req.Price,
		ConvertedPrice: converted,
		FormattedPrice: utils.FormatToman(converted),
		Currency:       domain.TargetCurrency,
	})
}

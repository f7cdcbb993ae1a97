package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/emjayi/price_converter/internal/apperrors"
	portssvc "github.com/emjayi/price_converter/internal/core/ports/services"
	"github.com/emjayi/price_converter/internal/dto"
	"github.com/emjayi/price_converter/internal/middleware"
	"github.com/gin-gonic/gin"
)

// productHandler handles per-product pricing requests.
type productHandler struct {
	productPricing portssvc.ProductPricingSvcFacade
}

func newProductHandler(productPricing portssvc.ProductPricingSvcFacade) *productHandler {
	return &productHandler{productPricing: productPricing}
}

// registerProductRoutes registers routes related to product pricing.
func registerProductRoutes(rg *gin.RouterGroup, productPricing portssvc.ProductPricingSvcFacade) {
	h := newProductHandler(productPricing)

	products := rg.Group("/products/:productID")
	{
		products.GET("/display-price", h.getDisplayPrice)
		products.GET("/price-source", h.getPriceSource)
		products.PUT("/price-source", h.savePriceSource)
		products.GET("/price-history", h.listPriceHistory)
	}
}

// productIDParam parses the productID path parameter and writes a 400 on failure.
func productIDParam(c *gin.Context) (int64, bool) {
	productID, err := strconv.ParseInt(c.Param("productID"), 10, 64)
	if err != nil || productID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return 0, false
	}
	return productID, true
}

// getDisplayPrice godoc
// @Summary Get the storefront price of a product
// @Description Runs the price override for a product or variation. override=false means the platform price stays in effect.
// @Tags products
// @Produce  json
// @Param   productID path int true "Product ID"
// @Success 200 {object} dto.DisplayPriceResponse
// @Failure 400 {object} map[string]string "Invalid product ID"
// @Failure 500 {object} map[string]string "Failed to resolve price"
// @Security BearerAuth
// @Router /products/{productID}/display-price [get]
func (h *productHandler) getDisplayPrice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	productID, ok := productIDParam(c)
	if !ok {
		return
	}
	logger = logger.With(slog.Int64("product_id", productID))

	resp, err := h.productPricing.DisplayPrice(c.Request.Context(), productID)
	if err != nil {
		logger.Error("Failed to resolve display price", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve price"})
		return
	}

	logger.Debug("Display price resolved", slog.Bool("override", resp.Override))
	c.JSON(http.StatusOK, resp)
}

// getPriceSource godoc
// @Summary Get the price source of a product
// @Tags products
// @Produce  json
// @Param   productID path int true "Product ID"
// @Success 200 {object} dto.PriceSourceResponse
// @Failure 400 {object} map[string]string "Invalid product ID"
// @Failure 404 {object} map[string]string "No price source for this product"
// @Failure 500 {object} map[string]string "Failed to retrieve price source"
// @Security BearerAuth
// @Router /products/{productID}/price-source [get]
func (h *productHandler) getPriceSource(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	productID, ok := productIDParam(c)
	if !ok {
		return
	}
	logger = logger.With(slog.Int64("product_id", productID))

	source, err := h.productPricing.GetPriceSource(c.Request.Context(), productID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No price source for this product"})
		} else {
			logger.Error("Failed to get price source", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve price source"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPriceSourceResponse(source))
}

// savePriceSource godoc
// @Summary Create or update the price source of a product
// @Description Sets the base amount, currency, source page and markup override of a product or variation
// @Tags products
// @Accept  json
// @Produce  json
// @Param   productID path int true "Product ID"
// @Param   source body dto.SavePriceSourceRequest true "Price source"
// @Success 200 {object} dto.PriceSourceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to save price source"
// @Security BearerAuth
// @Router /products/{productID}/price-source [put]
func (h *productHandler) savePriceSource(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	productID, ok := productIDParam(c)
	if !ok {
		return
	}

	var req dto.SavePriceSourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SavePriceSource", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	logger = logger.With(slog.Int64("product_id", productID), slog.String("user_id", userID))

	saved, err := h.productPricing.SavePriceSource(c.Request.Context(), productID, req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error saving price source", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to save price source", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save price source"})
		}
		return
	}

	logger.Info("Price source saved")
	c.JSON(http.StatusOK, dto.ToPriceSourceResponse(saved))
}

// listPriceHistory godoc
// @Summary List fetched prices of a product
// @Tags products
// @Produce  json
// @Param   productID path int true "Product ID"
// @Param   limit query int false "Number of entries (default 20, max 100)"
// @Success 200 {array} dto.PriceHistoryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to list price history"
// @Security BearerAuth
// @Router /products/{productID}/price-history [get]
func (h *productHandler) listPriceHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	productID, ok := productIDParam(c)
	if !ok {
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		limit = parsed
	}

	rows, err := h.productPricing.ListPriceHistory(c.Request.Context(), productID, limit)
	if err != nil {
		logger.Error("Failed to list price history", slog.Int64("product_id", productID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list price history"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPriceHistoryResponses(rows))
}

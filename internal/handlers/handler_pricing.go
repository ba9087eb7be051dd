package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SwiftEdgeIT/swiftedge_portal/internal/core/ports/services"
	"github.com/SwiftEdgeIT/swiftedge_portal/internal/dto"
	"github.com/SwiftEdgeIT/swiftedge_portal/internal/middleware"
	"github.com/gin-gonic/gin"
)

// pricingHandler handles HTTP requests for currency detection, conversion
// and formatting. All reads are public and never fail: degraded lookups
// return defaults, not errors.
type pricingHandler struct {
	pricingService portssvc.PricingSvcFacade
}

func newPricingHandler(ps portssvc.PricingSvcFacade) *pricingHandler {
	return &pricingHandler{pricingService: ps}
}

// registerPricingRoutes registers the public pricing routes.
func registerPricingRoutes(rg *gin.RouterGroup, pricingService portssvc.PricingSvcFacade) {
	h := newPricingHandler(pricingService)

	pricing := rg.Group("/pricing")
	{
		pricing.GET("/currency", h.getPreferredCurrency)
		pricing.GET("/convert", h.convert)
		pricing.GET("/currencies", h.listCurrencies)
		pricing.GET("/rates", h.getRates)
	}
}

// getPreferredCurrency godoc
// @Summary Resolve the caller's display currency
// @Description Resolves the display currency: saved preference for signed-in clients, then geo-IP detection, then USD
// @Tags pricing
// @Produce json
// @Success 200 {object} dto.PreferredCurrencyResponse
// @Router /pricing/currency [get]
func (h *pricingHandler) getPreferredCurrency(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)
	resolved := h.pricingService.PreferredCurrency(c.Request.Context(), userID, c.ClientIP())

	c.JSON(http.StatusOK, dto.PreferredCurrencyResponse{
		Currency:    resolved.Currency,
		CountryCode: resolved.CountryCode,
		Source:      resolved.Source,
	})
}

// convert godoc
// @Summary Convert an amount between currencies
// @Description Converts an amount, rounded to 2 decimal places, and renders it for display
// @Tags pricing
// @Produce json
// @Param amount query number true "Amount to convert"
// @Param from query string true "Source currency code"
// @Param to query string true "Target currency code"
// @Success 200 {object} dto.ConvertResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Router /pricing/convert [get]
func (h *pricingHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ConvertRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		logger.Warn("Failed to bind query for convert", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	converted := h.pricingService.Convert(c.Request.Context(), req.Amount, req.From, req.To)
	_, fallback := h.pricingService.FetchAllRates(c.Request.Context())

	c.JSON(http.StatusOK, dto.ConvertResponse{
		Amount:        req.Amount,
		From:          req.From,
		To:            req.To,
		Converted:     converted,
		DisplayText:   h.pricingService.FormatAmount(converted, req.To),
		FallbackRates: fallback,
	})
}

// listCurrencies godoc
// @Summary List supported display currencies
// @Tags pricing
// @Produce json
// @Success 200 {object} map[string][]string
// @Router /pricing/currencies [get]
func (h *pricingHandler) listCurrencies(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"currencies": h.pricingService.SupportedCurrencies()})
}

// getRates godoc
// @Summary Get the current exchange-rate table
// @Description Returns all rates as units per 1 USD; fallbackRates is true when the static table is being served
// @Tags pricing
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /pricing/rates [get]
func (h *pricingHandler) getRates(c *gin.Context) {
	rates, fallback := h.pricingService.FetchAllRates(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"base":          "USD",
		"rates":         rates,
		"fallbackRates": fallback,
	})
}

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SwiftEdgeIT/swiftedge_portal/internal/apperrors"
	portssvc "github.com/SwiftEdgeIT/swiftedge_portal/internal/core/ports/services"
	"github.com/SwiftEdgeIT/swiftedge_portal/internal/dto"
	"github.com/SwiftEdgeIT/swiftedge_portal/internal/middleware"
	"github.com/gin-gonic/gin"
)

// offeringHandler serves the public service catalog with prices converted
// to the caller's resolved display currency.
type offeringHandler struct {
	offeringService portssvc.OfferingSvcFacade
	pricingService  portssvc.PricingReaderSvc
}

func newOfferingHandler(os portssvc.OfferingSvcFacade, ps portssvc.PricingReaderSvc) *offeringHandler {
	return &offeringHandler{
		offeringService: os,
		pricingService:  ps,
	}
}

// registerPublicOfferingRoutes registers the public catalog routes.
func registerPublicOfferingRoutes(rg *gin.RouterGroup, offeringService portssvc.OfferingSvcFacade, pricingService portssvc.PricingReaderSvc) {
	h := newOfferingHandler(offeringService, pricingService)

	services := rg.Group("/services")
	{
		services.GET("", h.listOfferings)
		services.GET("/:slug", h.getOfferingBySlug)
	}
}

// listOfferings godoc
// @Summary List the service catalog
// @Description Lists active offerings with prices converted to the caller's resolved display currency
// @Tags services
// @Produce json
// @Success 200 {array} dto.OfferingResponse
// @Failure 500 {object} map[string]string "Failed to list services"
// @Router /services [get]
func (h *offeringHandler) listOfferings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	offerings, err := h.offeringService.ListOfferings(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list offerings", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list services"})
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)
	resolved := h.pricingService.PreferredCurrency(c.Request.Context(), userID, c.ClientIP())

	responses := make([]dto.OfferingResponse, len(offerings))
	for i := range offerings {
		price := h.pricingService.Convert(c.Request.Context(), offerings[i].BasePriceUSD, "USD", resolved.Currency)
		text := h.pricingService.FormatAmount(price, resolved.Currency)
		responses[i] = dto.ToOfferingResponse(&offerings[i], resolved.Currency, price, text, false)
	}
	c.JSON(http.StatusOK, responses)
}

// getOfferingBySlug godoc
// @Summary Get one offering
// @Description Retrieves an active offering by slug with its converted display price
// @Tags services
// @Produce json
// @Param slug path string true "Offering slug"
// @Success 200 {object} dto.OfferingResponse
// @Failure 404 {object} map[string]string "Service not found"
// @Failure 500 {object} map[string]string "Failed to retrieve service"
// @Router /services/{slug} [get]
func (h *offeringHandler) getOfferingBySlug(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	slug := c.Param("slug")

	offering, err := h.offeringService.GetOfferingBySlug(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
			return
		}
		logger.Error("Failed to get offering", slog.String("slug", slug), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve service"})
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)
	resolved := h.pricingService.PreferredCurrency(c.Request.Context(), userID, c.ClientIP())
	price := h.pricingService.Convert(c.Request.Context(), offering.BasePriceUSD, "USD", resolved.Currency)
	text := h.pricingService.FormatAmount(price, resolved.Currency)

	c.JSON(http.StatusOK, dto.ToOfferingResponse(offering, resolved.Currency, price, text, true))
}

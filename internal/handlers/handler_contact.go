package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SwiftEdgeIT/swiftedge_portal/internal/core/ports/services"
	"github.com/SwiftEdgeIT/swiftedge_portal/internal/dto"
	"github.com/SwiftEdgeIT/swiftedge_portal/internal/middleware"
	"github.com/gin-gonic/gin"
)

// contactHandler handles contact-form and quote-request submissions from
// the marketing site.
type contactHandler struct {
	quoteService portssvc.QuoteSvcFacade
}

func newContactHandler(qs portssvc.QuoteSvcFacade) *contactHandler {
	return &contactHandler{quoteService: qs}
}

// registerContactRoutes registers the public submission routes. Quote
// requests from signed-in clients are attached to their account.
func registerContactRoutes(rg *gin.RouterGroup, quoteService portssvc.QuoteSvcFacade) {
	h := newContactHandler(quoteService)

	rg.POST("/contact", h.submitContact)
	rg.POST("/quotes", h.submitQuote)
}

// registerQuoteRoutes registers the authenticated quote-history route.
func registerQuoteRoutes(rg *gin.RouterGroup, quoteService portssvc.QuoteSvcFacade) {
	h := newContactHandler(quoteService)

	rg.GET("/quotes/mine", h.listMyQuotes)
}

// submitContact godoc
// @Summary Submit the contact form
// @Tags contact
// @Accept json
// @Produce json
// @Param body body dto.ContactRequest true "Message"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /contact [post]
func (h *contactHandler) submitContact(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	msg, err := h.quoteService.SubmitContact(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to store contact message", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit message"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"messageID": msg.MessageID})
}

// submitQuote godoc
// @Summary Request a project quote
// @Description Stores the request and notifies the sales team; signed-in clients see it in their quote history
// @Tags contact
// @Accept json
// @Produce json
// @Param body body dto.QuoteRequestBody true "Quote request"
// @Success 201 {object} dto.QuoteResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /quotes [post]
func (h *contactHandler) submitQuote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.QuoteRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	// empty for anonymous prospects
	userID, _ := middleware.GetUserIDFromContext(c)

	quote, err := h.quoteService.SubmitQuote(c.Request.Context(), req, userID)
	if err != nil {
		logger.Error("Failed to store quote request", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit quote request"})
		return
	}

	logger.Info("Quote request submitted", slog.String("quote_id", quote.QuoteID))
	c.JSON(http.StatusCreated, dto.ToQuoteResponse(quote))
}

// listMyQuotes godoc
// @Summary List the client's quote requests
// @Tags contact
// @Produce json
// @Success 200 {array} dto.QuoteResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /quotes/mine [get]
func (h *contactHandler) listMyQuotes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	quotes, err := h.quoteService.ListMyQuotes(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to list quote requests", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list quote requests"})
		return
	}

	responses := make([]dto.QuoteResponse, len(quotes))
	for i := range quotes {
		responses[i] = dto.ToQuoteResponse(&quotes[i])
	}
	c.JSON(http.StatusOK, responses)
}

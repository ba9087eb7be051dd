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

// invoiceHandler surfaces provider invoices to signed-in clients.
type invoiceHandler struct {
	invoicingService portssvc.InvoicingSvcFacade
}

func newInvoiceHandler(is portssvc.InvoicingSvcFacade) *invoiceHandler {
	return &invoiceHandler{invoicingService: is}
}

// registerInvoiceRoutes registers the authenticated invoice routes.
func registerInvoiceRoutes(rg *gin.RouterGroup, invoicingService portssvc.InvoicingSvcFacade) {
	h := newInvoiceHandler(invoicingService)

	invoices := rg.Group("/invoices")
	{
		invoices.GET("", h.listInvoices)
		invoices.GET("/:invoiceID", h.getInvoice)
	}
}

// listInvoices godoc
// @Summary List the client's invoices
// @Description Fetches all invoices from the invoicing provider for the client's contact
// @Tags invoices
// @Produce json
// @Success 200 {array} dto.InvoiceResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 502 {object} map[string]string "Invoicing provider unavailable"
// @Security BearerAuth
// @Router /invoices [get]
func (h *invoiceHandler) listInvoices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	invoices, err := h.invoicingService.ListInvoicesForUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUpstream) {
			logger.Error("Invoicing provider failed", slog.String("error", err.Error()))
			c.JSON(http.StatusBadGateway, gin.H{"error": "Invoicing provider unavailable"})
			return
		}
		logger.Error("Failed to list invoices", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list invoices"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListInvoiceResponse(invoices))
}

// getInvoice godoc
// @Summary Get one invoice
// @Tags invoices
// @Produce json
// @Param invoiceID path string true "Invoice ID"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 403 {object} map[string]string "Not your invoice"
// @Failure 404 {object} map[string]string "Invoice not found"
// @Failure 502 {object} map[string]string "Invoicing provider unavailable"
// @Security BearerAuth
// @Router /invoices/{invoiceID} [get]
func (h *invoiceHandler) getInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	invoice, err := h.invoicingService.GetInvoiceForUser(c.Request.Context(), userID, c.Param("invoiceID"))
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "Not your invoice"})
		case errors.Is(err, apperrors.ErrUpstream):
			logger.Error("Invoicing provider failed", slog.String("error", err.Error()))
			c.JSON(http.StatusBadGateway, gin.H{"error": "Invoicing provider unavailable"})
		default:
			logger.Error("Failed to get invoice", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve invoice"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice))
}

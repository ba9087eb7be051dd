package dto

import (
	"time"

	"github.com/SwiftEdgeIT/swiftedge_portal/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateOrderRequest defines the data needed to open an order for a client.
type CreateOrderRequest struct {
	UserID      string          `json:"userID" binding:"required"`
	OfferingID  string          `json:"offeringID" binding:"required"`
	Description string          `json:"description" binding:"required"`
	AmountUSD   decimal.Decimal `json:"amountUSD" binding:"required"`
}

// OrderResponse defines the data returned for an order.
type OrderResponse struct {
	OrderID     string          `json:"orderID"`
	OfferingID  string          `json:"offeringID"`
	Description string          `json:"description"`
	AmountUSD   decimal.Decimal `json:"amountUSD"`
	Status      string          `json:"status"`
	InvoiceID   string          `json:"invoiceID,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ListOrdersResponse is a cursor-paginated page of orders.
type ListOrdersResponse struct {
	Orders    []OrderResponse `json:"orders"`
	NextToken string          `json:"nextToken,omitempty"`
}

// ToOrderResponse converts a domain.Order to an OrderResponse DTO.
func ToOrderResponse(o *domain.Order) OrderResponse {
	return OrderResponse{
		OrderID:     o.OrderID,
		OfferingID:  o.OfferingID,
		Description: o.Description,
		AmountUSD:   o.AmountUSD,
		Status:      string(o.Status),
		InvoiceID:   o.InvoiceID,
		CreatedAt:   o.CreatedAt,
	}
}

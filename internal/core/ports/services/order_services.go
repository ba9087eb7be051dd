package services

import (
	"context"

	"github.com/SwiftEdgeIT/swiftedge_portal/internal/core/domain"
	"github.com/SwiftEdgeIT/swiftedge_portal/internal/dto"
)

// OrderReaderSvc defines read operations on client orders.
type OrderReaderSvc interface {
	// GetOrder retrieves an order, enforcing that it belongs to
	// requestingUserID (apperrors.ErrForbidden otherwise).
	GetOrder(ctx context.Context, orderID, requestingUserID string) (*domain.Order, error)

	// ListOrders retrieves a page of the user's orders, newest first.
	ListOrders(ctx context.Context, userID string, limit int, nextToken string) ([]domain.Order, string, error)
}

// OrderWriterSvc defines write operations on client orders.
type OrderWriterSvc interface {
	// CreateOrder opens a new order for a client.
	CreateOrder(ctx context.Context, req dto.CreateOrderRequest, creatorUserID string) (*domain.Order, error)

	// InvoiceOrder creates a provider invoice for a pending order and
	// records the invoice id on it.
	InvoiceOrder(ctx context.Context, orderID, actorUserID string) (*domain.Invoice, error)
}

// OrderSvcFacade combines the order service interfaces.
type OrderSvcFacade interface {
	OrderReaderSvc
	OrderWriterSvc
}

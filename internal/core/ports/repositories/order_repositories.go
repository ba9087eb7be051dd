package repositories

import (
	"context"

	"github.com/SwiftEdgeIT/swiftedge_portal/internal/core/domain"
)

// OrderRepository defines persistence operations for client orders.
type OrderRepository interface {
	// SaveOrder inserts a new order.
	SaveOrder(ctx context.Context, order domain.Order) error

	// FindOrderByID retrieves an order by id.
	FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error)

	// ListOrdersByUser retrieves a page of the user's orders, newest first.
	// nextToken is an opaque cursor; empty fetches the first page. The
	// returned token is empty on the last page.
	ListOrdersByUser(ctx context.Context, userID string, limit int, nextToken string) ([]domain.Order, string, error)

	// MarkInvoiced records the provider invoice id and moves the order to
	// INVOICED.
	MarkInvoiced(ctx context.Context, orderID, invoiceID, updaterUserID string) error

	// UpdateStatus moves the order to the given status.
	UpdateStatus(ctx context.Context, orderID string, status domain.OrderStatus, updaterUserID string) error
}

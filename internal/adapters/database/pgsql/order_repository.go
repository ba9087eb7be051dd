package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SwiftEdgeIT/swiftedge_portal/internal/apperrors"
	"github.com/SwiftEdgeIT/swiftedge_portal/internal/core/domain"
	portsrepo "github.com/SwiftEdgeIT/swiftedge_portal/internal/core/ports/repositories"
	"github.com/SwiftEdgeIT/swiftedge_portal/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxOrderRepository struct {
	pool *pgxpool.Pool
}

// NewPgxOrderRepository creates a new repository for client orders.
func NewPgxOrderRepository(pool *pgxpool.Pool) portsrepo.OrderRepository {
	return &PgxOrderRepository{pool: pool}
}

const orderColumns = `order_id, user_id, offering_id, description, amount_usd, status, invoice_id,
	created_at, created_by, last_updated_at, last_updated_by`

func scanOrder(row pgx.CollectableRow) (domain.Order, error) {
	var o domain.Order
	err := row.Scan(
		&o.OrderID,
		&o.UserID,
		&o.OfferingID,
		&o.Description,
		&o.AmountUSD,
		&o.Status,
		&o.InvoiceID,
		&o.CreatedAt,
		&o.CreatedBy,
		&o.LastUpdatedAt,
		&o.LastUpdatedBy,
	)
	return o, err
}

// SaveOrder inserts a new order.
func (r *PgxOrderRepository) SaveOrder(ctx context.Context, order domain.Order) error {
	query := `
		INSERT INTO orders (order_id, user_id, offering_id, description, amount_usd, status, invoice_id,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.pool.Exec(ctx, query,
		order.OrderID,
		order.UserID,
		order.OfferingID,
		order.Description,
		order.AmountUSD,
		order.Status,
		order.InvoiceID,
		order.CreatedAt,
		order.CreatedBy,
		order.LastUpdatedAt,
		order.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save order %s: %w", order.OrderID, err)
	}
	return nil
}

// FindOrderByID retrieves an order by id.
func (r *PgxOrderRepository) FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE order_id = $1;`
	rows, err := r.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to query order %s: %w", orderID, err)
	}
	order, err := pgx.CollectOneRow(rows, scanOrder)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find order %s: %w", orderID, err)
	}
	return &order, nil
}

// ListOrdersByUser retrieves a page of the user's orders, newest first,
// using (created_at, order_id) keyset pagination.
func (r *PgxOrderRepository) ListOrdersByUser(ctx context.Context, userID string, limit int, nextToken string) ([]domain.Order, string, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE user_id = $1`
	args := []any{userID}

	if nextToken != "" {
		cursorTime, cursorID, err := pagination.DecodeCursor(nextToken)
		if err != nil {
			return nil, "", fmt.Errorf("invalid order page token: %w", apperrors.ErrValidation)
		}
		query += ` AND (created_at, order_id) < ($2, $3)`
		args = append(args, cursorTime, cursorID)
	}

	// Fetch one extra row to know whether another page exists.
	query += fmt.Sprintf(` ORDER BY created_at DESC, order_id DESC LIMIT %d;`, limit+1)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, "", fmt.Errorf("failed to list orders for user %s: %w", userID, err)
	}
	orders, err := pgx.CollectRows(rows, scanOrder)
	if err != nil {
		return nil, "", fmt.Errorf("failed to collect orders: %w", err)
	}

	var token string
	if len(orders) > limit {
		orders = orders[:limit]
		last := orders[len(orders)-1]
		token = pagination.EncodeCursor(last.CreatedAt, last.OrderID)
	}
	return orders, token, nil
}

// MarkInvoiced records the provider invoice id and moves the order to INVOICED.
func (r *PgxOrderRepository) MarkInvoiced(ctx context.Context, orderID, invoiceID, updaterUserID string) error {
	query := `
		UPDATE orders
		SET status = $2, invoice_id = $3, last_updated_at = now(), last_updated_by = $4
		WHERE order_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query, orderID, domain.OrderInvoiced, invoiceID, updaterUserID)
	if err != nil {
		return fmt.Errorf("failed to mark order %s invoiced: %w", orderID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateStatus moves the order to the given status.
func (r *PgxOrderRepository) UpdateStatus(ctx context.Context, orderID string, status domain.OrderStatus, updaterUserID string) error {
	query := `
		UPDATE orders
		SET status = $2, last_updated_at = now(), last_updated_by = $3
		WHERE order_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query, orderID, status, updaterUserID)
	if err != nil {
		return fmt.Errorf("failed to update status of order %s: %w", orderID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

package pgsql

import (
	"context"
	"fmt"

	"github.com/SwiftEdgeIT/swiftedge_portal/internal/core/domain"
	portsrepo "github.com/SwiftEdgeIT/swiftedge_portal/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxQuoteRepository struct {
	pool *pgxpool.Pool
}

// NewPgxQuoteRepository creates a new repository for quote requests and
// contact messages.
func NewPgxQuoteRepository(pool *pgxpool.Pool) portsrepo.QuoteRepository {
	return &PgxQuoteRepository{pool: pool}
}

// SaveQuoteRequest inserts a new quote request. user_id is NULL for
// anonymous prospects.
func (r *PgxQuoteRepository) SaveQuoteRequest(ctx context.Context, quote domain.QuoteRequest) error {
	query := `
		INSERT INTO quote_requests (quote_id, user_id, name, email, company, offering_slug, details, budget_usd, created_at)
		VALUES ($1, NULLIF($2, ''), $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.pool.Exec(ctx, query,
		quote.QuoteID,
		quote.UserID,
		quote.Name,
		quote.Email,
		quote.Company,
		quote.OfferingSlug,
		quote.Details,
		quote.BudgetUSD,
		quote.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save quote request %s: %w", quote.QuoteID, err)
	}
	return nil
}

// ListQuotesByUser retrieves a signed-in client's quote requests, newest first.
func (r *PgxQuoteRepository) ListQuotesByUser(ctx context.Context, userID string) ([]domain.QuoteRequest, error) {
	query := `
		SELECT quote_id, COALESCE(user_id, ''), name, email, company, offering_slug, details, budget_usd, created_at
		FROM quote_requests
		WHERE user_id = $1
		ORDER BY created_at DESC;
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list quote requests for user %s: %w", userID, err)
	}
	quotes, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.QuoteRequest, error) {
		var q domain.QuoteRequest
		err := row.Scan(
			&q.QuoteID,
			&q.UserID,
			&q.Name,
			&q.Email,
			&q.Company,
			&q.OfferingSlug,
			&q.Details,
			&q.BudgetUSD,
			&q.CreatedAt,
		)
		return q, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect quote requests: %w", err)
	}
	return quotes, nil
}

// SaveContactMessage inserts a contact-form submission.
func (r *PgxQuoteRepository) SaveContactMessage(ctx context.Context, msg domain.ContactMessage) error {
	query := `
		INSERT INTO contact_messages (message_id, name, email, subject, body, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.pool.Exec(ctx, query,
		msg.MessageID,
		msg.Name,
		msg.Email,
		msg.Subject,
		msg.Body,
		msg.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save contact message %s: %w", msg.MessageID, err)
	}
	return nil
}

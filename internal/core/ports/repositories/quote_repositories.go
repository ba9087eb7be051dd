package repositories

import (
	"context"

	"github.com/SwiftEdgeIT/swiftedge_portal/internal/core/domain"
)

// QuoteRepository defines persistence for quote requests and contact
// messages submitted from the marketing site.
type QuoteRepository interface {
	// SaveQuoteRequest inserts a new quote request.
	SaveQuoteRequest(ctx context.Context, quote domain.QuoteRequest) error

	// ListQuotesByUser retrieves a signed-in client's quote requests, newest first.
	ListQuotesByUser(ctx context.Context, userID string) ([]domain.QuoteRequest, error)

	// SaveContactMessage inserts a contact-form submission.
	SaveContactMessage(ctx context.Context, msg domain.ContactMessage) error
}

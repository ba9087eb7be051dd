package services

import (
	"context"

	"github.com/SwiftEdgeIT/swiftedge_portal/internal/core/domain"
	"github.com/SwiftEdgeIT/swiftedge_portal/internal/dto"
)

// QuoteSvcFacade handles contact-form and quote-request submissions.
type QuoteSvcFacade interface {
	// SubmitContact stores a contact message and notifies the sales inbox
	// asynchronously.
	SubmitContact(ctx context.Context, req dto.ContactRequest) (*domain.ContactMessage, error)

	// SubmitQuote stores a quote request and notifies the sales inbox
	// asynchronously. userID may be empty for anonymous prospects.
	SubmitQuote(ctx context.Context, req dto.QuoteRequestBody, userID string) (*domain.QuoteRequest, error)

	// ListMyQuotes retrieves the signed-in client's quote requests.
	ListMyQuotes(ctx context.Context, userID string) ([]domain.QuoteRequest, error)
}

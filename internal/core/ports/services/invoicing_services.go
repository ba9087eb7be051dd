package services

import (
	"context"

	"github.com/SwiftEdgeIT/swiftedge_portal/internal/core/domain"
)

// InvoicingSvcFacade surfaces provider invoices to signed-in clients. The
// provider is authoritative; these are pass-through reads with ownership
// resolution via the client's provider contact.
type InvoicingSvcFacade interface {
	// ListInvoicesForUser fetches all provider invoices for the user.
	ListInvoicesForUser(ctx context.Context, userID string) ([]domain.Invoice, error)

	// GetInvoiceForUser fetches one invoice, verifying it belongs to the
	// user's provider contact.
	GetInvoiceForUser(ctx context.Context, userID, invoiceID string) (*domain.Invoice, error)
}

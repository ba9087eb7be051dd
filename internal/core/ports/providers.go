// Package ports defines the interfaces the core services depend on for
// reaching the outside world: storage, the geo-IP and exchange-rate lookups,
// the invoicing provider and the mail sender. Adapters implement these.
package ports

import (
	"context"

	"github.com/SwiftEdgeIT/swiftedge_portal/internal/core/domain"
	"github.com/shopspring/decimal"
)

// GeoLocator resolves a network origin to a location. Implementations may
// fail; the pricing service owns the degrade-to-default policy.
type GeoLocator interface {
	Locate(ctx context.Context, ip string) (domain.Location, error)
}

// RateSource fetches the full exchange-rate table, expressed as foreign
// units per 1 USD.
type RateSource interface {
	FetchRates(ctx context.Context) (map[string]decimal.Decimal, error)
}

// InvoicingProvider is the external REST service that owns customer
// contacts, invoices and payment collection.
type InvoicingProvider interface {
	// EnsureContact finds a provider contact by email or creates one, and
	// returns the provider contact id.
	EnsureContact(ctx context.Context, name, email, company string) (string, error)

	// CreateInvoice creates an invoice for the contact and returns it,
	// including the hosted payment URL.
	CreateInvoice(ctx context.Context, contactID, currency string, items []domain.InvoiceLineItem) (*domain.Invoice, error)

	// GetInvoice fetches a single invoice with current status and balance.
	GetInvoice(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// ListInvoices fetches all invoices for the contact.
	ListInvoices(ctx context.Context, contactID string) ([]domain.Invoice, error)
}

// Mailer sends notification mail. Implementations must be safe to call from
// a goroutine; form submission never waits on delivery.
type Mailer interface {
	Send(to, subject, body string) error
}

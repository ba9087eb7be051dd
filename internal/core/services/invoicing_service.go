package services

import (
	"context"
	"fmt"

	"github.com/SwiftEdgeIT/swiftedge_portal/internal/apperrors"
	"github.com/SwiftEdgeIT/swiftedge_portal/internal/core/domain"
	"github.com/SwiftEdgeIT/swiftedge_portal/internal/core/ports"
	portsrepo "github.com/SwiftEdgeIT/swiftedge_portal/internal/core/ports/repositories"
	portssvc "github.com/SwiftEdgeIT/swiftedge_portal/internal/core/ports/services"
)

// invoicingService surfaces provider invoices to signed-in clients. The
// provider owns the records; ownership is resolved through the client's
// provider contact (looked up by email).
type invoicingService struct {
	userRepo  portsrepo.UserRepository
	invoicing ports.InvoicingProvider
}

// NewInvoicingService creates a new invoicing read service.
func NewInvoicingService(userRepo portsrepo.UserRepository, invoicing ports.InvoicingProvider) portssvc.InvoicingSvcFacade {
	return &invoicingService{
		userRepo:  userRepo,
		invoicing: invoicing,
	}
}

// ListInvoicesForUser fetches all provider invoices for the user.
func (s *invoicingService) ListInvoicesForUser(ctx context.Context, userID string) ([]domain.Invoice, error) {
	contactID, err := s.contactFor(ctx, userID)
	if err != nil {
		return nil, err
	}
	invoices, err := s.invoicing.ListInvoices(ctx, contactID)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	return invoices, nil
}

// GetInvoiceForUser fetches one invoice, verifying it belongs to the user's
// provider contact.
func (s *invoicingService) GetInvoiceForUser(ctx context.Context, userID, invoiceID string) (*domain.Invoice, error) {
	contactID, err := s.contactFor(ctx, userID)
	if err != nil {
		return nil, err
	}
	invoice, err := s.invoicing.GetInvoice(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get invoice %s: %w", invoiceID, err)
	}
	if invoice.ContactID != contactID {
		return nil, apperrors.ErrForbidden
	}
	return invoice, nil
}

func (s *invoicingService) contactFor(ctx context.Context, userID string) (string, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("failed to load user %s: %w", userID, err)
	}
	contactID, err := s.invoicing.EnsureContact(ctx, user.Name, user.Email, user.Company)
	if err != nil {
		return "", fmt.Errorf("failed to resolve invoicing contact: %w", err)
	}
	return contactID, nil
}

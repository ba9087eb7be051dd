package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SwiftEdgeIT/swiftedge_portal/internal/apperrors"
	"github.com/SwiftEdgeIT/swiftedge_portal/internal/core/domain"
	"github.com/SwiftEdgeIT/swiftedge_portal/internal/core/ports"
	portsrepo "github.com/SwiftEdgeIT/swiftedge_portal/internal/core/ports/repositories"
	portssvc "github.com/SwiftEdgeIT/swiftedge_portal/internal/core/ports/services"
	"github.com/SwiftEdgeIT/swiftedge_portal/internal/dto"
	"github.com/SwiftEdgeIT/swiftedge_portal/internal/middleware"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const defaultOrderPageSize = 20

// orderService implements the order lifecycle. Settlement is delegated to
// the invoicing provider; InvoiceOrder bridges the two.
type orderService struct {
	orderRepo    portsrepo.OrderRepository
	offeringRepo portsrepo.OfferingRepository
	userRepo     portsrepo.UserRepository
	invoicing    ports.InvoicingProvider
	pricing      portssvc.PricingReaderSvc
}

// NewOrderService creates a new order service.
func NewOrderService(
	orderRepo portsrepo.OrderRepository,
	offeringRepo portsrepo.OfferingRepository,
	userRepo portsrepo.UserRepository,
	invoicing ports.InvoicingProvider,
	pricing portssvc.PricingReaderSvc,
) portssvc.OrderSvcFacade {
	return &orderService{
		orderRepo:    orderRepo,
		offeringRepo: offeringRepo,
		userRepo:     userRepo,
		invoicing:    invoicing,
		pricing:      pricing,
	}
}

// CreateOrder opens a new order for a client.
func (s *orderService) CreateOrder(ctx context.Context, req dto.CreateOrderRequest, creatorUserID string) (*domain.Order, error) {
	if !req.AmountUSD.IsPositive() {
		return nil, fmt.Errorf("order amount must be positive: %w", apperrors.ErrValidation)
	}
	if _, err := s.offeringRepo.FindOfferingByID(ctx, req.OfferingID); err != nil {
		return nil, fmt.Errorf("offering %s not available: %w", req.OfferingID, err)
	}

	now := time.Now()
	order := domain.Order{
		OrderID:     uuid.NewString(),
		UserID:      req.UserID,
		OfferingID:  req.OfferingID,
		Description: req.Description,
		AmountUSD:   req.AmountUSD,
		Status:      domain.OrderPending,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.orderRepo.SaveOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	return &order, nil
}

// GetOrder retrieves an order, enforcing ownership.
func (s *orderService) GetOrder(ctx context.Context, orderID, requestingUserID string) (*domain.Order, error) {
	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get order %s: %w", orderID, err)
	}
	if order.UserID != requestingUserID {
		return nil, apperrors.ErrForbidden
	}
	return order, nil
}

// ListOrders retrieves a page of the user's orders, newest first.
func (s *orderService) ListOrders(ctx context.Context, userID string, limit int, nextToken string) ([]domain.Order, string, error) {
	if limit <= 0 || limit > 100 {
		limit = defaultOrderPageSize
	}
	orders, token, err := s.orderRepo.ListOrdersByUser(ctx, userID, limit, nextToken)
	if err != nil {
		return nil, "", fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, token, nil
}

// InvoiceOrder creates a provider invoice for a pending order. The invoice
// is issued in the client's resolved display currency; the provider owns
// collection from here on.
func (s *orderService) InvoiceOrder(ctx context.Context, orderID, actorUserID string) (*domain.Invoice, error) {
	order, err := s.GetOrder(ctx, orderID, actorUserID)
	if err != nil {
		return nil, err
	}
	if order.Status != domain.OrderPending {
		return nil, fmt.Errorf("order %s is %s, only pending orders can be invoiced: %w",
			orderID, order.Status, apperrors.ErrValidation)
	}

	user, err := s.userRepo.FindUserByID(ctx, order.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load order owner: %w", err)
	}

	contactID, err := s.invoicing.EnsureContact(ctx, user.Name, user.Email, user.Company)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve invoicing contact: %w", err)
	}

	resolved := s.pricing.PreferredCurrency(ctx, user.UserID, "")
	amount := s.pricing.Convert(ctx, order.AmountUSD, "USD", resolved.Currency)

	invoice, err := s.invoicing.CreateInvoice(ctx, contactID, resolved.Currency, []domain.InvoiceLineItem{
		{
			Name:      order.Description,
			Quantity:  decimal.NewFromInt(1),
			UnitPrice: amount,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create provider invoice: %w", err)
	}

	if err := s.orderRepo.MarkInvoiced(ctx, order.OrderID, invoice.InvoiceID, actorUserID); err != nil {
		// The provider invoice exists but the order still says PENDING.
		// Surface the invoice id so it can be reconciled by hand.
		middleware.GetLoggerFromCtx(ctx).Error("invoice created but order update failed",
			slog.String("order_id", order.OrderID),
			slog.String("invoice_id", invoice.InvoiceID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("invoice %s created but order update failed: %w", invoice.InvoiceID, err)
	}

	return invoice, nil
}

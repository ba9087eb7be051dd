package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SwiftEdgeIT/swiftedge_portal/internal/core/domain"
	"github.com/SwiftEdgeIT/swiftedge_portal/internal/core/ports"
	portsrepo "github.com/SwiftEdgeIT/swiftedge_portal/internal/core/ports/repositories"
	portssvc "github.com/SwiftEdgeIT/swiftedge_portal/internal/core/ports/services"
	"github.com/SwiftEdgeIT/swiftedge_portal/internal/dto"
	"github.com/google/uuid"
)

// quoteService stores contact and quote submissions and notifies the sales
// inbox. Mail is fire-and-forget: a submission never fails because SMTP did.
type quoteService struct {
	quoteRepo  portsrepo.QuoteRepository
	mailer     ports.Mailer
	salesInbox string
	logger     *slog.Logger
}

// NewQuoteService creates a new quote service.
func NewQuoteService(quoteRepo portsrepo.QuoteRepository, mailer ports.Mailer, salesInbox string, logger *slog.Logger) portssvc.QuoteSvcFacade {
	if logger == nil {
		logger = slog.Default()
	}
	return &quoteService{
		quoteRepo:  quoteRepo,
		mailer:     mailer,
		salesInbox: salesInbox,
		logger:     logger,
	}
}

// SubmitContact stores a contact message and notifies the sales inbox.
func (s *quoteService) SubmitContact(ctx context.Context, req dto.ContactRequest) (*domain.ContactMessage, error) {
	msg := domain.ContactMessage{
		MessageID: uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Body:      req.Message,
		CreatedAt: time.Now(),
	}

	if err := s.quoteRepo.SaveContactMessage(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to save contact message: %w", err)
	}

	s.notify(
		fmt.Sprintf("Contact form: %s", req.Subject),
		fmt.Sprintf("From: %s <%s>\n\n%s", req.Name, req.Email, req.Message),
	)
	return &msg, nil
}

// SubmitQuote stores a quote request and notifies the sales inbox. userID is
// empty for anonymous prospects.
func (s *quoteService) SubmitQuote(ctx context.Context, req dto.QuoteRequestBody, userID string) (*domain.QuoteRequest, error) {
	quote := domain.QuoteRequest{
		QuoteID:      uuid.NewString(),
		UserID:       userID,
		Name:         req.Name,
		Email:        req.Email,
		Company:      req.Company,
		OfferingSlug: req.OfferingSlug,
		Details:      req.Details,
		BudgetUSD:    req.BudgetUSD,
		CreatedAt:    time.Now(),
	}

	if err := s.quoteRepo.SaveQuoteRequest(ctx, quote); err != nil {
		return nil, fmt.Errorf("failed to save quote request: %w", err)
	}

	body := fmt.Sprintf("From: %s <%s>\nCompany: %s\nService: %s\n\n%s",
		req.Name, req.Email, req.Company, req.OfferingSlug, req.Details)
	if req.BudgetUSD != nil {
		body += fmt.Sprintf("\n\nIndicated budget: USD %s", req.BudgetUSD.StringFixed(2))
	}
	s.notify("New quote request", body)
	return &quote, nil
}

// ListMyQuotes retrieves the signed-in client's quote requests.
func (s *quoteService) ListMyQuotes(ctx context.Context, userID string) ([]domain.QuoteRequest, error) {
	quotes, err := s.quoteRepo.ListQuotesByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list quote requests: %w", err)
	}
	return quotes, nil
}

// notify sends mail to the sales inbox without blocking the caller.
func (s *quoteService) notify(subject, body string) {
	if s.salesInbox == "" {
		return
	}
	go func() {
		if err := s.mailer.Send(s.salesInbox, subject, body); err != nil {
			s.logger.Warn("sales notification mail failed",
				slog.String("subject", subject),
				slog.String("error", err.Error()),
			)
		}
	}()
}

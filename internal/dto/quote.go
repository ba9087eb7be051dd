package dto

import (
	"time"

	"github.com/SwiftEdgeIT/swiftedge_portal/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ContactRequest is a contact-form submission from the marketing site.
type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required,max=200"`
	Message string `json:"message" binding:"required,max=5000"`
}

// QuoteRequestBody is a project-quote submission.
type QuoteRequestBody struct {
	Name         string           `json:"name" binding:"required"`
	Email        string           `json:"email" binding:"required,email"`
	Company      string           `json:"company"`
	OfferingSlug string           `json:"offeringSlug"`
	Details      string           `json:"details" binding:"required,max=5000"`
	BudgetUSD    *decimal.Decimal `json:"budgetUSD,omitempty"`
}

// QuoteResponse defines the data returned for a stored quote request.
type QuoteResponse struct {
	QuoteID      string           `json:"quoteID"`
	Name         string           `json:"name"`
	Email        string           `json:"email"`
	Company      string           `json:"company,omitempty"`
	OfferingSlug string           `json:"offeringSlug,omitempty"`
	Details      string           `json:"details"`
	BudgetUSD    *decimal.Decimal `json:"budgetUSD,omitempty"`
	CreatedAt    time.Time        `json:"createdAt"`
}

// ToQuoteResponse converts a domain.QuoteRequest to a QuoteResponse DTO.
func ToQuoteResponse(q *domain.QuoteRequest) QuoteResponse {
	return QuoteResponse{
		QuoteID:      q.QuoteID,
		Name:         q.Name,
		Email:        q.Email,
		Company:      q.Company,
		OfferingSlug: q.OfferingSlug,
		Details:      q.Details,
		BudgetUSD:    q.BudgetUSD,
		CreatedAt:    q.CreatedAt,
	}
}

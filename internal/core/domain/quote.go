package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuoteRequest is a prospect's request for a project quote, submitted from
// the marketing site. Email notification is a fire-and-forget side effect.
type QuoteRequest struct {
	QuoteID      string           `json:"quoteID"` // Primary Key (UUID)
	UserID       string           `json:"userID,omitempty"` // Set when submitted by a signed-in client
	Name         string           `json:"name"`
	Email        string           `json:"email"`
	Company      string           `json:"company,omitempty"`
	OfferingSlug string           `json:"offeringSlug,omitempty"`
	Details      string           `json:"details"`
	BudgetUSD    *decimal.Decimal `json:"budgetUSD,omitempty"`
	CreatedAt    time.Time        `json:"createdAt"`
}

// ContactMessage is a plain contact-form submission.
type ContactMessage struct {
	MessageID string    `json:"messageID"` // Primary Key (UUID)
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
}

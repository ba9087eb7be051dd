package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus mirrors the invoicing provider's status vocabulary.
type InvoiceStatus string

const (
	InvoiceDraft   InvoiceStatus = "draft"
	InvoiceSent    InvoiceStatus = "sent"
	InvoicePaid    InvoiceStatus = "paid"
	InvoiceOverdue InvoiceStatus = "overdue"
	InvoiceVoid    InvoiceStatus = "void"
)

// Invoice is the provider-owned invoice record as we surface it to clients.
// The provider is the source of truth; nothing here is persisted locally
// beyond the id stored on the order.
type Invoice struct {
	InvoiceID     string          `json:"invoiceID"`
	InvoiceNumber string          `json:"invoiceNumber"`
	ContactID     string          `json:"contactID"`
	Status        InvoiceStatus   `json:"status"`
	CurrencyCode  string          `json:"currencyCode"`
	Total         decimal.Decimal `json:"total"`
	Balance       decimal.Decimal `json:"balance"`
	DueDate       time.Time       `json:"dueDate"`
	PaymentURL    string          `json:"paymentURL,omitempty"` // Hosted payment page for unpaid invoices
}

// InvoiceLineItem is a single line on a provider invoice.
type InvoiceLineItem struct {
	Name      string          `json:"name"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

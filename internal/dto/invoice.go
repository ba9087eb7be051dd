package dto

import (
	"time"

	"github.com/SwiftEdgeIT/swiftedge_portal/internal/core/domain"
	"github.com/shopspring/decimal"
)

// InvoiceResponse defines the data returned for a provider invoice.
type InvoiceResponse struct {
	InvoiceID     string          `json:"invoiceID"`
	InvoiceNumber string          `json:"invoiceNumber"`
	Status        string          `json:"status"`
	CurrencyCode  string          `json:"currencyCode"`
	Total         decimal.Decimal `json:"total"`
	Balance       decimal.Decimal `json:"balance"`
	DueDate       time.Time       `json:"dueDate"`
	PaymentURL    string          `json:"paymentURL,omitempty"`
}

// ToInvoiceResponse converts a domain.Invoice to an InvoiceResponse DTO.
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	return InvoiceResponse{
		InvoiceID:     inv.InvoiceID,
		InvoiceNumber: inv.InvoiceNumber,
		Status:        string(inv.Status),
		CurrencyCode:  inv.CurrencyCode,
		Total:         inv.Total,
		Balance:       inv.Balance,
		DueDate:       inv.DueDate,
		PaymentURL:    inv.PaymentURL,
	}
}

// ToListInvoiceResponse converts a slice of domain invoices.
func ToListInvoiceResponse(invoices []domain.Invoice) []InvoiceResponse {
	res := make([]InvoiceResponse, len(invoices))
	for i := range invoices {
		res[i] = ToInvoiceResponse(&invoices[i])
	}
	return res
}

package domain

import "github.com/shopspring/decimal"

// OrderStatus is the lifecycle state of a client order.
type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDING"
	OrderInvoiced  OrderStatus = "INVOICED"
	OrderPaid      OrderStatus = "PAID"
	OrderCancelled OrderStatus = "CANCELLED"
)

// Order is a unit of work sold to a client. Settlement is delegated to the
// external invoicing provider; InvoiceID references the provider's record.
type Order struct {
	OrderID     string          `json:"orderID"` // Primary Key (UUID)
	UserID      string          `json:"userID"`
	OfferingID  string          `json:"offeringID"`
	Description string          `json:"description"`
	AmountUSD   decimal.Decimal `json:"amountUSD"`
	Status      OrderStatus     `json:"status"`
	InvoiceID   string          `json:"invoiceID,omitempty"` // Provider invoice id once invoiced
	AuditFields
}

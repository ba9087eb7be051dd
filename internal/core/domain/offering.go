package domain

import "github.com/shopspring/decimal"

// BillingPeriod describes how an offering's price recurs.
type BillingPeriod string

const (
	BillingOneTime BillingPeriod = "ONE_TIME"
	BillingMonthly BillingPeriod = "MONTHLY"
	BillingYearly  BillingPeriod = "YEARLY"
)

// ServiceOffering is a sellable IT service rendered on the marketing pages.
// Base prices are stored in USD; display conversion happens per request.
type ServiceOffering struct {
	OfferingID   string          `json:"offeringID"` // Primary Key (UUID)
	Slug         string          `json:"slug"`       // URL identifier, unique
	Name         string          `json:"name"`
	Summary      string          `json:"summary"`
	Description  string          `json:"description"`
	BasePriceUSD decimal.Decimal `json:"basePriceUSD"`
	Period       BillingPeriod   `json:"billingPeriod"`
	Active       bool            `json:"active"`
	AuditFields
}

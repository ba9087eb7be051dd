package dto

import (
	"github.com/SwiftEdgeIT/swiftedge_portal/internal/core/domain"
	"github.com/shopspring/decimal"
)

// OfferingResponse is a service offering as rendered on the marketing pages.
// DisplayPrice/DisplayCurrency carry the converted price for the caller's
// resolved currency; BasePriceUSD is always present for reference.
type OfferingResponse struct {
	OfferingID      string          `json:"offeringID"`
	Slug            string          `json:"slug"`
	Name            string          `json:"name"`
	Summary         string          `json:"summary"`
	Description     string          `json:"description,omitempty"`
	BasePriceUSD    decimal.Decimal `json:"basePriceUSD"`
	BillingPeriod   string          `json:"billingPeriod"`
	DisplayCurrency string          `json:"displayCurrency"`
	DisplayPrice    decimal.Decimal `json:"displayPrice"`
	DisplayText     string          `json:"displayText"` // e.g. "₹41.625,00" per locale rules
}

// ToOfferingResponse converts a domain offering plus its resolved display
// price into the response DTO. Description is included only when full=true
// (list endpoints keep payloads lean).
func ToOfferingResponse(o *domain.ServiceOffering, currency string, price decimal.Decimal, text string, full bool) OfferingResponse {
	resp := OfferingResponse{
		OfferingID:      o.OfferingID,
		Slug:            o.Slug,
		Name:            o.Name,
		Summary:         o.Summary,
		BasePriceUSD:    o.BasePriceUSD,
		BillingPeriod:   string(o.Period),
		DisplayCurrency: currency,
		DisplayPrice:    price,
		DisplayText:     text,
	}
	if full {
		resp.Description = o.Description
	}
	return resp
}

// CreateOfferingRequest defines the data needed to add a new offering.
type CreateOfferingRequest struct {
	Slug         string          `json:"slug" binding:"required"`
	Name         string          `json:"name" binding:"required"`
	Summary      string          `json:"summary" binding:"required"`
	Description  string          `json:"description"`
	BasePriceUSD decimal.Decimal `json:"basePriceUSD" binding:"required"`
	Period       string          `json:"billingPeriod" binding:"required,oneof=ONE_TIME MONTHLY YEARLY"`
}

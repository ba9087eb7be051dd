package repositories

import (
	"context"

	"github.com/SwiftEdgeIT/swiftedge_portal/internal/core/domain"
)

// OfferingRepository defines persistence operations for service offerings.
type OfferingRepository interface {
	// SaveOffering inserts a new offering.
	SaveOffering(ctx context.Context, offering domain.ServiceOffering) error

	// FindOfferingBySlug retrieves an offering by its URL slug.
	FindOfferingBySlug(ctx context.Context, slug string) (*domain.ServiceOffering, error)

	// FindOfferingByID retrieves an offering by id.
	FindOfferingByID(ctx context.Context, offeringID string) (*domain.ServiceOffering, error)

	// ListOfferings retrieves offerings, optionally only active ones,
	// ordered by name.
	ListOfferings(ctx context.Context, activeOnly bool) ([]domain.ServiceOffering, error)
}

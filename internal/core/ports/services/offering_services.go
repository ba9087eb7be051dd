package services

import (
	"context"

	"github.com/SwiftEdgeIT/swiftedge_portal/internal/core/domain"
	"github.com/SwiftEdgeIT/swiftedge_portal/internal/dto"
)

// OfferingReaderSvc defines read operations for the service catalog.
type OfferingReaderSvc interface {
	// GetOfferingBySlug retrieves an active offering by slug.
	GetOfferingBySlug(ctx context.Context, slug string) (*domain.ServiceOffering, error)

	// ListOfferings retrieves the active catalog ordered by name.
	ListOfferings(ctx context.Context) ([]domain.ServiceOffering, error)
}

// OfferingWriterSvc defines write operations for the service catalog.
type OfferingWriterSvc interface {
	// CreateOffering adds a new offering to the catalog.
	CreateOffering(ctx context.Context, req dto.CreateOfferingRequest, creatorUserID string) (*domain.ServiceOffering, error)
}

// OfferingSvcFacade combines the catalog service interfaces.
type OfferingSvcFacade interface {
	OfferingReaderSvc
	OfferingWriterSvc
}

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/SwiftEdgeIT/swiftedge_portal/internal/apperrors"
	"github.com/SwiftEdgeIT/swiftedge_portal/internal/core/domain"
	portsrepo "github.com/SwiftEdgeIT/swiftedge_portal/internal/core/ports/repositories"
	portssvc "github.com/SwiftEdgeIT/swiftedge_portal/internal/core/ports/services"
	"github.com/SwiftEdgeIT/swiftedge_portal/internal/dto"
	"github.com/google/uuid"
)

// offeringService implements the service catalog.
type offeringService struct {
	offeringRepo portsrepo.OfferingRepository
}

// NewOfferingService creates a new catalog service.
func NewOfferingService(offeringRepo portsrepo.OfferingRepository) portssvc.OfferingSvcFacade {
	return &offeringService{offeringRepo: offeringRepo}
}

// GetOfferingBySlug retrieves an active offering by slug. Deactivated
// offerings are indistinguishable from missing ones.
func (s *offeringService) GetOfferingBySlug(ctx context.Context, slug string) (*domain.ServiceOffering, error) {
	offering, err := s.offeringRepo.FindOfferingBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to get offering by slug %s: %w", slug, err)
	}
	if !offering.Active {
		return nil, apperrors.ErrNotFound
	}
	return offering, nil
}

// ListOfferings retrieves the active catalog ordered by name.
func (s *offeringService) ListOfferings(ctx context.Context) ([]domain.ServiceOffering, error) {
	offerings, err := s.offeringRepo.ListOfferings(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list offerings: %w", err)
	}
	return offerings, nil
}

// CreateOffering adds a new offering to the catalog.
func (s *offeringService) CreateOffering(ctx context.Context, req dto.CreateOfferingRequest, creatorUserID string) (*domain.ServiceOffering, error) {
	if !req.BasePriceUSD.IsPositive() {
		return nil, fmt.Errorf("base price must be positive: %w", apperrors.ErrValidation)
	}

	now := time.Now()
	offering := domain.ServiceOffering{
		OfferingID:   uuid.NewString(),
		Slug:         req.Slug,
		Name:         req.Name,
		Summary:      req.Summary,
		Description:  req.Description,
		BasePriceUSD: req.BasePriceUSD,
		Period:       domain.BillingPeriod(req.Period),
		Active:       true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.offeringRepo.SaveOffering(ctx, offering); err != nil {
		return nil, fmt.Errorf("failed to create offering: %w", err)
	}
	return &offering, nil
}

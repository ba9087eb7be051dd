package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SwiftEdgeIT/swiftedge_portal/internal/apperrors"
	"github.com/SwiftEdgeIT/swiftedge_portal/internal/core/domain"
	portsrepo "github.com/SwiftEdgeIT/swiftedge_portal/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxOfferingRepository struct {
	pool *pgxpool.Pool
}

// NewPgxOfferingRepository creates a new repository for service offerings.
func NewPgxOfferingRepository(pool *pgxpool.Pool) portsrepo.OfferingRepository {
	return &PgxOfferingRepository{pool: pool}
}

const offeringColumns = `offering_id, slug, name, summary, description, base_price_usd, billing_period, active,
	created_at, created_by, last_updated_at, last_updated_by`

func scanOffering(row pgx.CollectableRow) (domain.ServiceOffering, error) {
	var o domain.ServiceOffering
	err := row.Scan(
		&o.OfferingID,
		&o.Slug,
		&o.Name,
		&o.Summary,
		&o.Description,
		&o.BasePriceUSD,
		&o.Period,
		&o.Active,
		&o.CreatedAt,
		&o.CreatedBy,
		&o.LastUpdatedAt,
		&o.LastUpdatedBy,
	)
	return o, err
}

// SaveOffering inserts a new offering.
func (r *PgxOfferingRepository) SaveOffering(ctx context.Context, offering domain.ServiceOffering) error {
	query := `
		INSERT INTO service_offerings (offering_id, slug, name, summary, description, base_price_usd, billing_period, active,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.pool.Exec(ctx, query,
		offering.OfferingID,
		offering.Slug,
		offering.Name,
		offering.Summary,
		offering.Description,
		offering.BasePriceUSD,
		offering.Period,
		offering.Active,
		offering.CreatedAt,
		offering.CreatedBy,
		offering.LastUpdatedAt,
		offering.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("offering slug %s taken: %w", offering.Slug, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save offering %s: %w", offering.OfferingID, err)
	}
	return nil
}

// FindOfferingBySlug retrieves an offering by its URL slug.
func (r *PgxOfferingRepository) FindOfferingBySlug(ctx context.Context, slug string) (*domain.ServiceOffering, error) {
	query := `SELECT ` + offeringColumns + ` FROM service_offerings WHERE slug = $1;`
	rows, err := r.pool.Query(ctx, query, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to query offering by slug %s: %w", slug, err)
	}
	offering, err := pgx.CollectOneRow(rows, scanOffering)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find offering by slug %s: %w", slug, err)
	}
	return &offering, nil
}

// FindOfferingByID retrieves an offering by id.
func (r *PgxOfferingRepository) FindOfferingByID(ctx context.Context, offeringID string) (*domain.ServiceOffering, error) {
	query := `SELECT ` + offeringColumns + ` FROM service_offerings WHERE offering_id = $1;`
	rows, err := r.pool.Query(ctx, query, offeringID)
	if err != nil {
		return nil, fmt.Errorf("failed to query offering %s: %w", offeringID, err)
	}
	offering, err := pgx.CollectOneRow(rows, scanOffering)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find offering %s: %w", offeringID, err)
	}
	return &offering, nil
}

// ListOfferings retrieves offerings ordered by name.
func (r *PgxOfferingRepository) ListOfferings(ctx context.Context, activeOnly bool) ([]domain.ServiceOffering, error) {
	query := `SELECT ` + offeringColumns + ` FROM service_offerings`
	if activeOnly {
		query += ` WHERE active = TRUE`
	}
	query += ` ORDER BY name;`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list offerings: %w", err)
	}
	offerings, err := pgx.CollectRows(rows, scanOffering)
	if err != nil {
		return nil, fmt.Errorf("failed to collect offerings: %w", err)
	}
	return offerings, nil
}

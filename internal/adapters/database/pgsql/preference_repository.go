package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SwiftEdgeIT/swiftedge_portal/internal/apperrors"
	"github.com/SwiftEdgeIT/swiftedge_portal/internal/core/domain"
	portsrepo "github.com/SwiftEdgeIT/swiftedge_portal/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPreferenceRepository struct {
	pool *pgxpool.Pool
}

// NewPgxPreferenceRepository creates a new repository for display-currency
// preferences.
func NewPgxPreferenceRepository(pool *pgxpool.Pool) portsrepo.PreferenceRepository {
	return &PgxPreferenceRepository{pool: pool}
}

// FindPreference retrieves the stored preference for a user.
func (r *PgxPreferenceRepository) FindPreference(ctx context.Context, userID string) (*domain.CurrencyPreference, error) {
	query := `
		SELECT user_id, preferred_currency, country_code, auto_detect, updated_at
		FROM currency_preferences
		WHERE user_id = $1;
	`
	var pref domain.CurrencyPreference
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&pref.UserID,
		&pref.PreferredCurrency,
		&pref.CountryCode,
		&pref.AutoDetect,
		&pref.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find currency preference for user %s: %w", userID, err)
	}
	return &pref, nil
}

// SavePreference upserts the preference row.
func (r *PgxPreferenceRepository) SavePreference(ctx context.Context, pref domain.CurrencyPreference) error {
	query := `
		INSERT INTO currency_preferences (user_id, preferred_currency, country_code, auto_detect, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE
		SET preferred_currency = EXCLUDED.preferred_currency,
			country_code = EXCLUDED.country_code,
			auto_detect = EXCLUDED.auto_detect,
			updated_at = EXCLUDED.updated_at;
	`
	_, err := r.pool.Exec(ctx, query,
		pref.UserID,
		pref.PreferredCurrency,
		pref.CountryCode,
		pref.AutoDetect,
		pref.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save currency preference for user %s: %w", pref.UserID, err)
	}
	return nil
}

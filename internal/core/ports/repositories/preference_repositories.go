package repositories

import (
	"context"

	"github.com/SwiftEdgeIT/swiftedge_portal/internal/core/domain"
)

// PreferenceRepository defines persistence for display-currency preferences,
// keyed by user id.
type PreferenceRepository interface {
	// FindPreference retrieves the preference for userID, or
	// apperrors.ErrNotFound when none is stored.
	FindPreference(ctx context.Context, userID string) (*domain.CurrencyPreference, error)

	// SavePreference upserts the preference. The caller decides whether the
	// user exists; this only writes the preference row.
	SavePreference(ctx context.Context, pref domain.CurrencyPreference) error
}

package repositories

import (
	"context"
	"time"

	"github.com/SwiftEdgeIT/swiftedge_portal/internal/core/domain"
)

// UserRepository defines persistence operations for client accounts.
type UserRepository interface {
	// SaveUser inserts a new user.
	SaveUser(ctx context.Context, user domain.User) error

	// FindUserByID retrieves a user by their id.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByUsername retrieves a user by username.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// FindUserByGoogleID retrieves a user linked to a Google account.
	FindUserByGoogleID(ctx context.Context, googleID string) (*domain.User, error)

	// UpdateUser persists profile changes.
	UpdateUser(ctx context.Context, user domain.User) error

	// UpdateRefreshToken stores the hashed refresh token and its expiry.
	// An empty hash clears the stored token (logout).
	UpdateRefreshToken(ctx context.Context, userID string, tokenHash string, expiresAt *time.Time) error
}

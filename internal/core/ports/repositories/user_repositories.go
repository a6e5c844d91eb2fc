package repositories

import (
	"context"
	"time"

	"github.com/DKMApps/masjid_kas_app/internal/core/domain"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	SaveUser(ctx context.Context, user domain.User) error

	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	FindUserByProviderID(ctx context.Context, provider domain.AuthProvider, providerUserID string) (*domain.User, error)

	FindUsers(ctx context.Context, limit int, offset int) ([]domain.User, error)

	UpdateUser(ctx context.Context, user domain.User) error

	// DeleteUser removes the user row. Transactions created by the user keep
	// existing with their creator reference cleared (ON DELETE SET NULL).
	DeleteUser(ctx context.Context, userID string) error

	// UpdateRefreshToken stores the hash and expiry of the user's refresh
	// token; empty hash and nil expiry clear it.
	UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, expiryTime *time.Time) error
}

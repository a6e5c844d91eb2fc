package services

import (
	"context"
	"time"

	"github.com/DKMApps/masjid_kas_app/internal/core/domain"
	"github.com/DKMApps/masjid_kas_app/internal/dto"
)

// UserSvcFacade defines operations on back-office user accounts.
type UserSvcFacade interface {
	CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error)

	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)

	ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error)

	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, updaterUserID string) (*domain.User, error)

	// DeleteUser removes a user account. A user may never delete their own
	// account: that returns apperrors.ErrForbidden.
	DeleteUser(ctx context.Context, userID string, deleterUserID string) error

	// AuthenticateUser verifies email+password against the stored bcrypt hash
	// and returns the user when valid and active.
	AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error)

	// FindOAuthUser resolves an existing active account for an external
	// identity. There is no self-signup: unknown identities are rejected.
	FindOAuthUser(ctx context.Context, provider domain.AuthProvider, providerUserID, email string) (*domain.User, error)

	// UpdateRefreshTokenDetails stores (or clears) the user's refresh token hash.
	UpdateRefreshTokenDetails(ctx context.Context, userID string, refreshTokenHash string, expiryTime *time.Time) error
}

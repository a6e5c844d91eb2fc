package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/DKMApps/masjid_kas_app/internal/apperrors"
	"github.com/DKMApps/masjid_kas_app/internal/core/domain"
	portsrepo "github.com/DKMApps/masjid_kas_app/internal/core/ports/repositories"
	portssvc "github.com/DKMApps/masjid_kas_app/internal/core/ports/services"
	"github.com/DKMApps/masjid_kas_app/internal/dto"
	"github.com/DKMApps/masjid_kas_app/internal/utils"
	"github.com/google/uuid"
)

// userService manages back-office user accounts and credential checks.
type userService struct {
	BaseService
	userRepo portsrepo.UserRepository
	audit    portssvc.AuditSvcFacade
}

// NewUserService creates a new user service.
func NewUserService(userRepo portsrepo.UserRepository, audit portssvc.AuditSvcFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo, audit: audit}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error) {
	role := domain.Role(req.Role)
	if !role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", apperrors.ErrValidation, req.Role)
	}

	existing, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check email uniqueness: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: email %s is already registered", apperrors.ErrDuplicate, req.Email)
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Email:        req.Email,
		FullName:     req.FullName,
		Role:         role,
		Permissions:  req.Permissions,
		PasswordHash: passwordHash,
		IsActive:     true,
		AuthProvider: domain.ProviderLocal,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to save user", slog.String("email", req.Email))
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	s.audit.Record(ctx, domain.EntityAction("CREATE", "USER"), creatorUserID, "user", user.UserID, nil, dto.ToUserResponse(&user))

	s.LogInfo(ctx, "User created",
		slog.String("user_id", user.UserID),
		slog.String("role", string(user.Role)))
	return &user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user %s: %w", userID, err)
	}
	return user, nil
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	users, err := s.userRepo.FindUsers(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *userService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, updaterUserID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user %s for update: %w", userID, err)
	}

	before := dto.ToUserResponse(user)

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Role != nil {
		role := domain.Role(*req.Role)
		if !role.Valid() {
			return nil, fmt.Errorf("%w: unknown role %q", apperrors.ErrValidation, *req.Role)
		}
		user.Role = role
	}
	if req.Permissions != nil {
		user.Permissions = *req.Permissions
	}
	if req.Password != nil {
		passwordHash, err := utils.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = passwordHash
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	user.LastUpdatedAt = time.Now()
	user.LastUpdatedBy = updaterUserID

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		s.LogError(ctx, err, "Failed to update user", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	after := dto.ToUserResponse(user)
	s.audit.Record(ctx, domain.EntityAction("UPDATE", "USER"), updaterUserID, "user", userID, before, after)

	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, userID string, deleterUserID string) error {
	// Locking yourself out of the only admin account is unrecoverable from
	// inside the application, so self-deletion is always refused.
	if userID == deleterUserID {
		return fmt.Errorf("%w: users cannot delete their own account", apperrors.ErrForbidden)
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to find user %s for deletion: %w", userID, err)
	}

	if err := s.userRepo.DeleteUser(ctx, userID); err != nil {
		s.LogError(ctx, err, "Failed to delete user", slog.String("user_id", userID))
		return fmt.Errorf("failed to delete user: %w", err)
	}

	s.audit.Record(ctx, domain.EntityAction("DELETE", "USER"), deleterUserID, "user", userID, dto.ToUserResponse(user), nil)

	s.LogInfo(ctx, "User deleted", slog.String("user_id", userID))
	return nil
}

func (s *userService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Same error as a bad password so the response does not reveal
			// which emails exist.
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to find user for authentication: %w", err)
	}

	if !user.IsActive {
		return nil, apperrors.ErrUnauthorized
	}
	if user.PasswordHash == "" || !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}

	s.audit.Record(ctx, domain.AuditLogin, user.UserID, "user", user.UserID, nil, nil)

	return user, nil
}

func (s *userService) FindOAuthUser(ctx context.Context, provider domain.AuthProvider, providerUserID, email string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByProviderID(ctx, provider, providerUserID)
	if err == nil {
		if !user.IsActive {
			return nil, apperrors.ErrUnauthorized
		}
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to find user by provider ID: %w", err)
	}

	// First login through the provider: link it to an existing account by
	// email. There is no self-signup, unknown identities are rejected.
	user, err = s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to find user by email for provider link: %w", err)
	}
	if !user.IsActive {
		return nil, apperrors.ErrUnauthorized
	}

	user.AuthProvider = provider
	user.ProviderUserID = providerUserID
	user.LastUpdatedAt = time.Now()
	user.LastUpdatedBy = user.UserID
	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		return nil, fmt.Errorf("failed to link provider identity: %w", err)
	}

	s.LogInfo(ctx, "Linked external identity to existing account",
		slog.String("user_id", user.UserID),
		slog.String("provider", string(provider)))
	return user, nil
}

func (s *userService) UpdateRefreshTokenDetails(ctx context.Context, userID string, refreshTokenHash string, expiryTime *time.Time) error {
	if err := s.userRepo.UpdateRefreshToken(ctx, userID, refreshTokenHash, expiryTime); err != nil {
		return fmt.Errorf("failed to update refresh token details: %w", err)
	}
	return nil
}

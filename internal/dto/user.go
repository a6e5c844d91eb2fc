package dto

import (
	"github.com/DKMApps/masjid_kas_app/internal/core/domain"
)

// CreateUserRequest defines the data needed to create a back-office user.
type CreateUserRequest struct {
	Email       string               `json:"email" binding:"required,email"`
	FullName    string               `json:"fullName" binding:"required,min=3"`
	Password    string               `json:"password" binding:"required,min=8"`
	Role        string               `json:"role" binding:"required,oneof=ADMIN BENDAHARA KETUA_DKM VIEWER"`
	Permissions domain.PermissionMap `json:"permissions"`
}

// UpdateUserRequest defines the updatable user fields. Pointers distinguish
// omitted fields from zero values.
type UpdateUserRequest struct {
	FullName    *string               `json:"fullName" binding:"omitempty,min=3"`
	Role        *string               `json:"role" binding:"omitempty,oneof=ADMIN BENDAHARA KETUA_DKM VIEWER"`
	Permissions *domain.PermissionMap `json:"permissions"`
	Password    *string               `json:"password" binding:"omitempty,min=8"`
	IsActive    *bool                 `json:"isActive"`
}

// ListUsersParams defines query parameters for listing users.
type ListUsersParams struct {
	Limit  int `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	Offset int `form:"offset,default=0" binding:"omitempty,min=0"`
}

// UserResponse defines the data returned for a user.
type UserResponse struct {
	UserID      string               `json:"userID"`
	Email       string               `json:"email"`
	FullName    string               `json:"fullName"`
	Role        string               `json:"role"`
	Permissions domain.PermissionMap `json:"permissions,omitempty"`
	IsActive    bool                 `json:"isActive"`
}

// ListUsersResponse wraps the list of users.
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

// ToUserResponse converts a domain.User to its DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:      u.UserID,
		Email:       u.Email,
		FullName:    u.FullName,
		Role:        string(u.Role),
		Permissions: u.Permissions,
		IsActive:    u.IsActive,
	}
}

// ToListUsersResponse converts a slice of domain.User to the list DTO.
func ToListUsersResponse(users []domain.User) ListUsersResponse {
	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = ToUserResponse(&users[i])
	}
	return ListUsersResponse{Users: responses}
}

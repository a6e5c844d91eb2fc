package domain

import "time"

// Role is a hierarchical capability tier for back-office users.
type Role string

const (
	RoleAdmin     Role = "ADMIN"
	RoleBendahara Role = "BENDAHARA"
	RoleKetuaDKM  Role = "KETUA_DKM"
	RoleViewer    Role = "VIEWER"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleBendahara, RoleKetuaDKM, RoleViewer:
		return true
	}
	return false
}

// AuthProvider identifies how a user account authenticates.
type AuthProvider string

const (
	ProviderLocal  AuthProvider = "LOCAL"
	ProviderGoogle AuthProvider = "GOOGLE"
)

// GoogleUserInfo holds the subset of the Google userinfo payload we consume.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

// User represents a back-office user of the application.
type User struct {
	UserID       string        `json:"userID"`
	Email        string        `json:"email"`
	FullName     string        `json:"fullName"`
	Role         Role          `json:"role"`
	Permissions  PermissionMap `json:"permissions,omitempty"` // overrides merged over role defaults
	PasswordHash string        `json:"-"`
	IsActive     bool          `json:"isActive"`

	AuthProvider   AuthProvider `json:"authProvider"`
	ProviderUserID string       `json:"-"`

	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`

	AuditFields
}

// Can reports whether the user may perform action on page. Explicit per-page
// overrides win over role defaults; ADMIN always passes.
func (u *User) Can(page Page, action Action) bool {
	if u.Role == RoleAdmin {
		return true
	}
	caps := RoleDefaultPermissions(u.Role)
	if override, ok := u.Permissions[page]; ok {
		return override.Allows(action)
	}
	if c, ok := caps[page]; ok {
		return c.Allows(action)
	}
	return false
}

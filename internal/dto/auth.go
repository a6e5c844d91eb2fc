package dto

// LoginRequest carries the login form.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse returns the access token; the refresh token travels in an
// HTTP-only cookie.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt string       `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

// RefreshResponse returns the rotated access token.
type RefreshResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expiresAt"`
}

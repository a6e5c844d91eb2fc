package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/DKMApps/masjid_kas_app/internal/apperrors"
	"github.com/DKMApps/masjid_kas_app/internal/core/domain"
	portssvc "github.com/DKMApps/masjid_kas_app/internal/core/ports/services"
	"github.com/DKMApps/masjid_kas_app/internal/dto"
	"github.com/DKMApps/masjid_kas_app/internal/middleware"
	"github.com/DKMApps/masjid_kas_app/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// googleOAuthHandler handles the Google sign-in code exchange flow.
type googleOAuthHandler struct {
	authHandler  *AuthHandler
	userService  portssvc.UserSvcFacade
	oauthService portssvc.GoogleOAuthHandlerSvcFacade
}

func newGoogleOAuthHandler(services *portssvc.ServiceContainer, cfg *config.Config) *googleOAuthHandler {
	return &googleOAuthHandler{
		authHandler:  NewAuthHandler(services, cfg),
		userService:  services.User,
		oauthService: services.GoogleOAuthHandler,
	}
}

type exchangeCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

// ExchangeCode godoc
// @Summary Exchange Google authorization code
// @Description Exchanges a Google OAuth authorization code for application tokens. Only pre-registered accounts may sign in.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body exchangeCodeRequest true "Authorization code"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/google/exchange-code [post]
func (h *googleOAuthHandler) ExchangeCode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req exchangeCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	token, err := h.oauthService.ExchangeCodeForToken(c.Request.Context(), req.Code)
	if err != nil {
		logger.Warn("Failed to exchange Google authorization code", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid authorization code"})
		return
	}

	userInfo, err := h.oauthService.GetUserInfo(c.Request.Context(), token)
	if err != nil {
		logger.Error("Failed to fetch Google user info", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch user info"})
		return
	}
	if !userInfo.VerifiedEmail {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Google account email is not verified"})
		return
	}

	user, err := h.userService.FindOAuthUser(c.Request.Context(), domain.ProviderGoogle, userInfo.ID, userInfo.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			// No self-signup: the account must be provisioned first.
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "No account is registered for this Google identity"})
			return
		}
		logger.Error("Failed to resolve Google account", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to process sign-in"})
		return
	}

	accessToken, expiresAt, err := h.authHandler.issueTokens(c, user)
	if err != nil {
		logger.Error("Failed to issue tokens for Google sign-in", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:     accessToken,
		ExpiresAt: expiresAt.Format(time.RFC3339),
		User:      dto.ToUserResponse(user),
	})
}

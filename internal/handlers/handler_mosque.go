package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/DKMApps/masjid_kas_app/internal/apperrors"
	"github.com/DKMApps/masjid_kas_app/internal/core/domain"
	portssvc "github.com/DKMApps/masjid_kas_app/internal/core/ports/services"
	"github.com/DKMApps/masjid_kas_app/internal/dto"
	"github.com/DKMApps/masjid_kas_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// mosqueHandler handles HTTP requests for the mosque settings.
type mosqueHandler struct {
	mosqueService portssvc.MosqueSvcFacade
}

func newMosqueHandler(ms portssvc.MosqueSvcFacade) *mosqueHandler {
	return &mosqueHandler{mosqueService: ms}
}

// registerMosqueRoutes registers routes for the mosque settings.
func registerMosqueRoutes(rg *gin.RouterGroup, mosqueService portssvc.MosqueSvcFacade, userService portssvc.UserSvcFacade) {
	h := newMosqueHandler(mosqueService)

	mosqueGroup := rg.Group("/mosque")
	{
		mosqueGroup.GET("", middleware.RequirePermission(userService, domain.PageSettings, domain.ActionView), h.getMosque)
		mosqueGroup.PUT("", middleware.RequirePermission(userService, domain.PageSettings, domain.ActionUpdate), h.updateMosque)
	}
}

// getMosque godoc
// @Summary Get mosque settings
// @Description Returns the mosque profile including opening balance and date.
// @Tags mosque
// @Produce json
// @Success 200 {object} dto.MosqueResponse
// @Failure 404 {object} ErrorResponse "Mosque not configured yet"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /mosque [get]
func (h *mosqueHandler) getMosque(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	mosque, err := h.mosqueService.ActiveMosque(c.Request.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrNotConfigured) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Mosque has not been configured yet"})
			return
		}
		logger.Error("Failed to load mosque settings", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to load mosque settings"})
		return
	}

	c.JSON(http.StatusOK, dto.ToMosqueResponse(mosque))
}

// updateMosque godoc
// @Summary Update mosque settings
// @Description Saves the mosque profile. The first save creates the profile.
// @Tags mosque
// @Accept json
// @Produce json
// @Param mosque body dto.UpdateMosqueRequest true "Mosque settings"
// @Success 200 {object} dto.MosqueResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /mosque [put]
func (h *mosqueHandler) updateMosque(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdateMosqueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	mosque, err := h.mosqueService.UpdateMosque(c.Request.Context(), req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to update mosque settings", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update mosque settings"})
		return
	}

	logger.Info("Mosque settings updated", slog.String("mosque_id", mosque.MosqueID))
	c.JSON(http.StatusOK, dto.ToMosqueResponse(mosque))
}

// getPublicMosque godoc
// @Summary Get public mosque profile
// @Description Returns the mosque identity fields for the public landing page. No authentication required.
// @Tags public
// @Produce json
// @Success 200 {object} dto.PublicMosqueResponse
// @Failure 404 {object} ErrorResponse "Mosque not configured yet"
// @Failure 500 {object} ErrorResponse
// @Router /public/mosque [get]
func (h *mosqueHandler) getPublicMosque(c *gin.Context) {
	mosque, err := h.mosqueService.ActiveMosque(c.Request.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrNotConfigured) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Mosque has not been configured yet"})
			return
		}
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to load public mosque profile", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to load mosque profile"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPublicMosqueResponse(mosque))
}

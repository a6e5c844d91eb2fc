package handlers

import (
	"log/slog"
	"net/http"

	"github.com/DKMApps/masjid_kas_app/internal/core/domain"
	portssvc "github.com/DKMApps/masjid_kas_app/internal/core/ports/services"
	"github.com/DKMApps/masjid_kas_app/internal/dto"
	"github.com/DKMApps/masjid_kas_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// auditHandler handles HTTP requests for the audit trail.
type auditHandler struct {
	auditService portssvc.AuditSvcFacade
}

func newAuditHandler(as portssvc.AuditSvcFacade) *auditHandler {
	return &auditHandler{auditService: as}
}

// registerAuditRoutes registers the audit trail routes.
func registerAuditRoutes(rg *gin.RouterGroup, auditService portssvc.AuditSvcFacade, userService portssvc.UserSvcFacade) {
	h := newAuditHandler(auditService)

	rg.GET("/audit-logs", middleware.RequirePermission(userService, domain.PageAuditLogs, domain.ActionView), h.listAuditLogs)
}

// listAuditLogs godoc
// @Summary List audit entries
// @Description Lists audit trail entries newest first.
// @Tags audit
// @Produce json
// @Param limit query int false "Page size (default 50, max 200)"
// @Param offset query int false "Offset (default 0)"
// @Success 200 {object} dto.ListAuditLogsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /audit-logs [get]
func (h *auditHandler) listAuditLogs(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListAuditLogsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	logs, err := h.auditService.ListAuditLogs(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list audit logs", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list audit logs"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListAuditLogsResponse(logs))
}

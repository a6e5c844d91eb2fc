package middleware

import (
	"log/slog"
	"net/http"

	"github.com/DKMApps/masjid_kas_app/internal/core/domain"
	portssvc "github.com/DKMApps/masjid_kas_app/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// RequirePermission creates a Gin middleware that loads the authenticated user
// and verifies they hold the given capability. It must run after AuthMiddleware.
func RequirePermission(userService portssvc.UserSvcFacade, page domain.Page, action domain.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		userID, ok := GetUserIDFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		user, err := userService.GetUserByID(c.Request.Context(), userID)
		if err != nil {
			logger.Error("Failed to load user for permission check", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		if !user.IsActive {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Account is deactivated"})
			return
		}

		if !user.Can(page, action) {
			logger.Warn("Permission denied",
				slog.String("page", string(page)),
				slog.String("action", string(action)),
				slog.String("role", string(user.Role)))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "You do not have permission to perform this action"})
			return
		}

		c.Next()
	}
}

// RequireRole creates a Gin middleware that restricts a route to a single
// role. Used for destructive operations where per-page capabilities are not
// strict enough, like the ledger reset. It must run after AuthMiddleware.
func RequireRole(userService portssvc.UserSvcFacade, role domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		userID, ok := GetUserIDFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		user, err := userService.GetUserByID(c.Request.Context(), userID)
		if err != nil {
			logger.Error("Failed to load user for role check", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		if !user.IsActive {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Account is deactivated"})
			return
		}

		if user.Role != role {
			logger.Warn("Role denied",
				slog.String("required_role", string(role)),
				slog.String("role", string(user.Role)))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "You do not have permission to perform this action"})
			return
		}

		c.Next()
	}
}

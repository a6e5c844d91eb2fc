package handlers

import (
	"github.com/DKMApps/masjid_kas_app/cmd/docs"
	portssvc "github.com/DKMApps/masjid_kas_app/internal/core/ports/services"
	"github.com/DKMApps/masjid_kas_app/internal/middleware"
	"github.com/DKMApps/masjid_kas_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Register public authentication routes
	registerAuthRoutes(r, cfg, services)

	// Public landing page routes need no token
	registerPublicRoutes(r, services)

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// registerPublicRoutes configures the unauthenticated read-only routes used by
// the public landing page.
func registerPublicRoutes(r *gin.Engine, services *portssvc.ServiceContainer) {
	public := r.Group("/api/v1/public")
	{
		public.GET("/mosque", newMosqueHandler(services.Mosque).getPublicMosque)
		public.GET("/events", newEventHandler(services.Event).listPublishedEvents)
	}
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Apply AuthMiddleware to the entire v1 group
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	// Delegate route registration to specific handlers, passing required services
	registerMosqueRoutes(v1, services.Mosque, services.User)
	registerCategoryRoutes(v1, services.Category, services.User)
	registerTransactionRoutes(v1, services.Transaction, services.User)
	registerUserRoutes(v1, services.User)
	registerEventRoutes(v1, services.Event, services.User)
	registerReportingRoutes(v1, services.Reporting, services.User)
	registerAuditRoutes(v1, services.Audit, services.User)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	// Swagger setup
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

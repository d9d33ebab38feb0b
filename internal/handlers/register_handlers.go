package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/lucasaveiro/gestor_espacos_app/cmd/docs"
	portssvc "github.com/lucasaveiro/gestor_espacos_app/internal/core/ports/services"
	"github.com/lucasaveiro/gestor_espacos_app/internal/middleware"
	"github.com/lucasaveiro/gestor_espacos_app/internal/platform/config"
	"github.com/lucasaveiro/gestor_espacos_app/internal/utils"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	posthogClient *utils.PosthogClientWrapper,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Register public authentication routes
	registerAuthRoutes(r, cfg)

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services, posthogClient)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
	posthogClient *utils.PosthogClientWrapper,
) {
	// Apply AuthMiddleware to the entire v1 group
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))
	v1.Use(middleware.PosthogMiddleware(posthogClient))

	registerSpaceRoutes(v1, service.Space)
	registerClientRoutes(v1, service.Client)
	registerProfessionalRoutes(v1, service.Professional)
	registerServiceTaskRoutes(v1, service.ServiceTask)
	registerEventRoutes(v1, service.Event)
	registerTransactionRoutes(v1, service.Transaction)
	RegisterFinanceRoutes(v1, service.Finance)
	registerContractRoutes(v1, service.Contract)
	registerCalendarRoutes(v1, service.Calendar)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/SscSPs/corebank/cmd/docs"
	"github.com/SscSPs/corebank/internal/core/domain"
	portssvc "github.com/SscSPs/corebank/internal/core/ports/services"
	"github.com/SscSPs/corebank/internal/middleware"
	"github.com/SscSPs/corebank/internal/platform/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RouteDeps are the collaborators the routes need besides the services.
type RouteDeps struct {
	// Principals resolves the caller's role for the admin group.
	Principals middleware.PrincipalResolver
	// Metrics serves /metrics. Nil disables the route.
	Metrics http.Handler
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	deps RouteDeps,
) error {
	registerValidators()

	r.Use(corsMiddleware(cfg))

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	if deps.Metrics != nil {
		r.GET("/metrics", gin.WrapH(deps.Metrics))
	}

	limiter, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		return err
	}
	rateLimit := middleware.RateLimit(limiter)

	// Register public authentication routes
	registerAuthRoutes(r, services.Auth, rateLimit)

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services, deps, rateLimit)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	deps RouteDeps,
	rateLimit gin.HandlerFunc,
) {
	// Apply AuthMiddleware to the entire v1 group
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerTransactionRoutes(v1, services.Ledger, rateLimit)
	registerAccountRoutes(v1, services.Account)
	registerAdminRoutes(v1, services, middleware.RequireRole(deps.Principals, domain.RoleAdmin), rateLimit)
}

func corsMiddleware(cfg *config.Config) gin.HandlerFunc {
	corsCfg := cors.DefaultConfig()
	for _, origin := range strings.Split(cfg.FrontendBaseURL, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			corsCfg.AllowOrigins = append(corsCfg.AllowOrigins, origin)
		}
	}
	if len(corsCfg.AllowOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization", "X-Request-ID")
	corsCfg.ExposeHeaders = []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"}
	corsCfg.MaxAge = 12 * time.Hour
	return cors.New(corsCfg)
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

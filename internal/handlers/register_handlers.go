package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/andrenany/api-felmart/cmd/docs"
	portssvc "github.com/andrenany/api-felmart/internal/core/ports/services"
	"github.com/andrenany/api-felmart/internal/middleware"
	"github.com/andrenany/api-felmart/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	registerCustomValidators()

	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Public surface: auth, intake form, contact form, UF value. The two
	// forms share one IP limiter so a burst on either throttles both.
	registerAuthRoutes(r, services.Auth)

	rate, _ := limiter.NewRateFromFormatted("10-M")
	publicLimiter := middleware.RateLimit(limiter.New(memory.NewStore(), rate))
	registerQuoteRequestIntakeRoute(r, services.QuoteRequest, publicLimiter)
	registerContactRoute(r, services.Contact, publicLimiter)
	registerUFRoute(r, services.UF)

	setupAPIV1Routes(r, cfg, services)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the authenticated /api/v1 groups and delegates
// to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerUserRoutes(v1, services.User)
	registerCompanyRoutes(v1, services.Company)
	registerWasteRoutes(v1, services.Waste)
	registerQuoteRoutes(v1, services.Quote)
	registerVisitRoutes(v1, services.Visit)
	registerCertificateRoutes(v1, services.Certificate)

	admin := v1.Group("/admin", middleware.RequireAdmin())

	registerAdminUserRoutes(admin, services.User)
	registerAdminCompanyRoutes(admin, services.Company)
	registerAdminWasteRoutes(admin, services.Waste)
	registerAdminQuoteRoutes(admin, services.Quote)
	registerAdminQuoteRequestRoutes(admin, services.QuoteRequest)
	registerAdminVisitRoutes(admin, services.Visit)
	registerAdminCertificateRoutes(admin, services.Certificate)
	registerAdminNotificationRoutes(admin, services.Notification)
	registerAdminInboxRoutes(admin, services.Inbox)
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

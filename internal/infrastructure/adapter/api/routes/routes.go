package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/image2code-backend/internal/domain/port/core"
	"github.com/amirhossein-jamali/image2code-backend/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/image2code-backend/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/image2code-backend/internal/infrastructure/adapter/metrics"
	"github.com/amirhossein-jamali/image2code-backend/internal/infrastructure/adapter/redis"
	"github.com/amirhossein-jamali/image2code-backend/internal/infrastructure/config"
)

// Handlers groups the HTTP handlers mounted by SetupRoutes
type Handlers struct {
	Generation *handler.GenerationHandler
	Design     *handler.DesignHandler
	User       *handler.UserHandler
	Payment    *handler.PaymentHandler
	Health     *handler.HealthHandler
}

// Dependencies are the optional collaborators of the middleware chain.
// A nil Metrics disables instrumentation and a nil Limiter disables rate limiting.
type Dependencies struct {
	Config  *config.Config
	Logger  coreport.Logger
	Metrics *metrics.Metrics
	Limiter middleware.RateLimiter
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, h Handlers, deps Dependencies) {
	router.GET("/health", h.Health.Health)
	if deps.Metrics != nil && deps.Config.Metrics.Enabled {
		router.GET(metricsPath(deps.Config), gin.WrapH(deps.Metrics.Handler()))
	}

	api := router.Group("/api")
	api.Use(middleware.Auth(deps.Config.Auth))

	limited := middleware.RateLimit(deps.Config.RateLimit, deps.Limiter, redis.RateLimitKey, deps.Logger)
	{
		api.POST("/image-to-code-ai", limited, h.Generation.Generate)
		api.POST("/improve-extra-improve-ai", limited, h.Generation.Improve)
	}

	designs := api.Group("/codetoimage")
	{
		designs.POST("", h.Design.Create)
		designs.PUT("", h.Design.Update)
		designs.GET("", h.Design.Get)
		designs.DELETE("", h.Design.Delete)
	}

	users := api.Group("/users")
	{
		users.POST("/sync", h.User.Sync)
		users.GET("/credits", h.User.GetCredits)
	}

	payments := api.Group("/payment")
	{
		payments.GET("/packages", h.Payment.Packages)
		payments.POST("/create-order", limited, h.Payment.CreateOrder)
		payments.POST("/verify", h.Payment.Verify)
		payments.GET("/history", h.Payment.History)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found", "code": http.StatusNotFound})
	})
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, deps Dependencies) {
	cfg := deps.Config

	router.Use(middleware.ErrorHandler(deps.Logger))
	router.Use(middleware.RequestID())
	if cfg.Tracing.Enabled {
		router.Use(middleware.Trace(cfg.Tracing.ServiceName))
		router.Use(middleware.TraceContext())
	}
	router.Use(middleware.Logger(deps.Logger))
	if deps.Metrics != nil {
		router.Use(middleware.Metrics(deps.Metrics))
	}
	router.Use(middleware.CORS(cfg.CORS))
	router.Use(middleware.BodyLimit(cfg.Server.MaxBodyBytes))
}

func metricsPath(cfg *config.Config) string {
	if cfg.Metrics.Path == "" {
		return "/metrics"
	}
	return cfg.Metrics.Path
}

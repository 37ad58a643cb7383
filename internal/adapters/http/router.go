package http

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dekman10/stock-lookup/internal/adapters/http/handlers"
	"github.com/dekman10/stock-lookup/internal/adapters/http/middleware"
	"github.com/dekman10/stock-lookup/internal/platform/config"
	"github.com/dekman10/stock-lookup/internal/platform/telemetry"
	"github.com/dekman10/stock-lookup/web"
)

// DefaultRequestTimeout is the default timeout for API requests.
const DefaultRequestTimeout = 30 * time.Second

// RouterConfig contains configuration for setting up the router.
type RouterConfig struct {
	// Logger is the structured logger for request logging.
	Logger *slog.Logger

	// AppConfig contains application configuration.
	AppConfig *config.AppConfig

	// HealthHandler handles health check endpoints.
	HealthHandler *handlers.HealthHandler

	// StockHandler handles the JSON stock API endpoints.
	StockHandler *handlers.StockHandler

	// PageHandler handles the HTML lookup and compare pages.
	PageHandler *handlers.PageHandler

	// Timeout is the default request timeout.
	Timeout time.Duration
}

// SetupRouter configures all routes and middleware on the Gin engine.
// Middleware is applied in the following order (first to last):
//  1. Recovery - catch panics first
//  2. Request ID - generate/extract request ID
//  3. Correlation ID - handle distributed tracing correlation
//  4. OpenTelemetry - tracing and metrics
//  5. Logging - request logging (skips health endpoints)
//  6. Timeout - request deadline (applied per-route or globally)
//
// Route groups:
//   - /-/ (internal): Health endpoints
//   - / (pages): HTML lookup and compare forms
//   - /api/v1/ (public API): JSON stock endpoints
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	// Apply global middleware in order
	engine.Use(
		middleware.Recovery(cfg.Logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
		telemetry.Middleware(cfg.AppConfig.Name),
		middleware.Logging(cfg.Logger),
	)

	// Register health endpoints (no timeout for probes)
	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutesOnEngine(engine)
	}

	// HTML pages render at the root
	if cfg.PageHandler != nil {
		engine.SetHTMLTemplate(web.Templates())
		cfg.PageHandler.RegisterPageRoutes(engine)
	}

	// Setup API v1 routes with timeout
	apiV1 := engine.Group("/api/v1")
	if cfg.Timeout > 0 {
		apiV1.Use(middleware.SimpleTimeout(cfg.Timeout))
	}

	if cfg.StockHandler != nil {
		cfg.StockHandler.RegisterStockRoutes(apiV1)
	}
}

// SetupMinimalRouter sets up a minimal router with just health endpoints.
// Useful for testing or lightweight deployments.
func SetupMinimalRouter(engine *gin.Engine, logger *slog.Logger, healthHandler *handlers.HealthHandler) {
	engine.Use(
		middleware.Recovery(logger),
		middleware.RequestID(),
	)

	if healthHandler != nil {
		healthHandler.RegisterHealthRoutesOnEngine(engine)
	}
}

// NewDefaultRouterConfig creates a RouterConfig with sensible defaults.
func NewDefaultRouterConfig(
	logger *slog.Logger,
	appCfg *config.AppConfig,
	healthHandler *handlers.HealthHandler,
	stockHandler *handlers.StockHandler,
	pageHandler *handlers.PageHandler,
) RouterConfig {
	return RouterConfig{
		Logger:        logger,
		AppConfig:     appCfg,
		HealthHandler: healthHandler,
		StockHandler:  stockHandler,
		PageHandler:   pageHandler,
		Timeout:       DefaultRequestTimeout,
	}
}

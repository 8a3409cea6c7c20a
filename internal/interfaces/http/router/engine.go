package router

import (
	"fmt"

	"github.com/crm/backend/internal/infrastructure/config"
	"github.com/crm/backend/internal/infrastructure/logger"
	"github.com/crm/backend/internal/interfaces/http/handler"
	"github.com/crm/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// EngineConfig carries what NewEngine needs besides the handlers
type EngineConfig struct {
	Logger  *zap.Logger
	HTTP    config.HTTPConfig
	Swagger config.SwaggerConfig
	Tracing middleware.TracingConfig
	// Meter enables the HTTP request metrics when set
	Meter     metric.Meter
	Profiling middleware.ProfilingConfig
	// TokenValidator enables bearer authentication of the API routes when set
	TokenValidator middleware.TokenValidator
}

// Handlers are the HTTP handlers mounted by NewEngine
type Handlers struct {
	Customers          ResourceHandler
	CustomerCategories ResourceHandler
	Contacts           ResourceHandler
	Health             *handler.HealthHandler
}

// NewEngine builds the gin engine with the global middleware chain:
// request ID, panic recovery, request logging, security headers, CORS, body
// limit, tracing, metrics and profiling labels.
func NewEngine(cfg EngineConfig, h Handlers) (*gin.Engine, error) {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	engine := gin.New()
	if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid trusted proxies: %w", err)
	}

	engine.Use(
		middleware.RequestID(),
		logger.Recovery(log),
		logger.GinMiddleware(log),
		middleware.Secure(),
		middleware.CORSWithConfig(middleware.CORSConfigFromHTTP(cfg.HTTP)),
		middleware.BodyLimit(cfg.HTTP.MaxBodySize),
	)
	engine.Use(middleware.Tracing(cfg.Tracing)...)
	if cfg.Meter != nil {
		httpMetrics, err := middleware.HTTPMetrics(cfg.Meter)
		if err != nil {
			return nil, fmt.Errorf("failed to create HTTP metrics: %w", err)
		}
		engine.Use(httpMetrics)
	}
	engine.Use(middleware.Profiling(cfg.Profiling))

	engine.GET("/health", h.Health.Health)

	// no skip lists: the middleware only runs on the API group and the docs
	var apiAuth gin.HandlerFunc
	if cfg.TokenValidator != nil {
		apiAuth = middleware.JWTAuthMiddlewareWithConfig(middleware.JWTMiddlewareConfig{
			Validator: cfg.TokenValidator,
			Logger:    log,
		})
	}
	engine.GET("/swagger/*any",
		middleware.SwaggerProtection(cfg.Swagger, apiAuth),
		ginSwagger.WrapHandler(swaggerFiles.Handler),
	)

	var opts []RouterOption
	if apiAuth != nil {
		opts = append(opts, WithGroupMiddleware(apiAuth))
	}
	NewRouter(engine, opts...).
		Register(
			NewResourceGroup("customers", "/customers", h.Customers),
			NewResourceGroup("customer-categories", "/customer-categories", h.CustomerCategories),
			NewResourceGroup("contacts", "/contacts", h.Contacts),
		).
		Setup()

	return engine, nil
}

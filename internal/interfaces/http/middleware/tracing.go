// Package middleware provides the HTTP middleware of the CRM API.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// TracingConfig holds configuration for the tracing middleware.
type TracingConfig struct {
	// ServiceName is the name of the service for trace identification.
	ServiceName string
	// Enabled controls whether tracing is active.
	Enabled bool
	// TracerProvider overrides the global provider when set.
	TracerProvider trace.TracerProvider
	// SkipPaths are not traced.
	SkipPaths []string
}

// DefaultTracingConfig returns default tracing configuration.
func DefaultTracingConfig() TracingConfig {
	return TracingConfig{
		ServiceName: "crm-backend",
		Enabled:     true,
		SkipPaths:   []string{"/health"},
	}
}

// Tracing returns the OpenTelemetry middleware chain.
// The first handler opens the server span through otelgin, the second
// tags it with the request ID and token subject and marks server errors.
func Tracing(cfg TracingConfig) gin.HandlersChain {
	if !cfg.Enabled {
		return gin.HandlersChain{func(c *gin.Context) { c.Next() }}
	}

	opts := []otelgin.Option{
		otelgin.WithFilter(func(r *http.Request) bool {
			for _, p := range cfg.SkipPaths {
				if r.URL.Path == p {
					return false
				}
			}
			return true
		}),
	}
	if cfg.TracerProvider != nil {
		opts = append(opts, otelgin.WithTracerProvider(cfg.TracerProvider))
	}

	return gin.HandlersChain{
		otelgin.Middleware(cfg.ServiceName, opts...),
		annotateSpan,
	}
}

func annotateSpan(c *gin.Context) {
	span := trace.SpanFromContext(c.Request.Context())
	if !span.IsRecording() {
		c.Next()
		return
	}

	if requestID := GetRequestID(c); requestID != "" {
		span.SetAttributes(attribute.String("http.request_id", requestID))
	}

	c.Next()

	// The subject is only known once the JWT middleware has run
	if subject := GetJWTSubject(c); subject != "" {
		span.SetAttributes(attribute.String("enduser.id", subject))
	}
	if status := c.Writer.Status(); status >= http.StatusInternalServerError {
		msg := http.StatusText(status)
		if len(c.Errors) > 0 {
			msg = c.Errors.Last().Error()
		}
		span.SetStatus(codes.Error, msg)
	}
}

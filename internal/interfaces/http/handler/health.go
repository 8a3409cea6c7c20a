package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger checks a dependency, e.g. the database
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingerFunc adapts a function to Pinger
type PingerFunc func(ctx context.Context) error

// Ping calls f
func (f PingerFunc) Ping(ctx context.Context) error { return f(ctx) }

// HealthHandler reports service readiness
type HealthHandler struct {
	BaseHandler
	database  Pinger
	timeout   time.Duration
	startTime time.Time
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(database Pinger, base BaseHandler) *HealthHandler {
	return &HealthHandler{
		BaseHandler: base,
		database:    database,
		timeout:     2 * time.Second,
		startTime:   time.Now(),
	}
}

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status   string `json:"status" example:"ok"`
	Database string `json:"database" example:"ok"`
	Uptime   string `json:"uptime" example:"1h30m45s"`
	Error    string `json:"error,omitempty"`
}

// Health godoc
// @ID           health
// @Summary      Readiness check
// @Description  Pings the database; 503 when it is unreachable
// @Tags         system
// @Produce      json
// @Success      200 {object} HealthResponse
// @Failure      503 {object} HealthResponse
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	resp := HealthResponse{
		Status:   "ok",
		Database: "ok",
		Uptime:   time.Since(h.startTime).Round(time.Second).String(),
	}
	if err := h.database.Ping(ctx); err != nil {
		_ = c.Error(err)
		resp.Status = "unavailable"
		resp.Database = "unreachable"
		if h.exposeErrors {
			resp.Error = err.Error()
		}
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}

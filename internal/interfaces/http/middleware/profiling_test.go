package middleware

import (
	"net/http"
	"runtime/pprof"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestProfiling_Disabled(t *testing.T) {
	router := gin.New()
	router.Use(Profiling(ProfilingConfig{Enabled: false}))

	var labelled bool
	router.GET("/api/v1/customers", func(c *gin.Context) {
		_, labelled = pprof.Label(c.Request.Context(), ProfilingLabelRoute)
		c.Status(http.StatusOK)
	})

	assert.Equal(t, http.StatusOK, doRequest(router, http.MethodGet, "/api/v1/customers", nil).Code)
	assert.False(t, labelled)
}

func TestProfiling_LabelsRequest(t *testing.T) {
	router := gin.New()
	router.Use(Profiling(DefaultProfilingConfig()))

	labels := map[string]string{}
	router.PATCH("/api/v1/customer-categories/:id", func(c *gin.Context) {
		for _, key := range []string{ProfilingLabelRoute, ProfilingLabelMethod, ProfilingLabelResource} {
			if v, ok := pprof.Label(c.Request.Context(), key); ok {
				labels[key] = v
			}
		}
		c.Status(http.StatusOK)
	})

	doRequest(router, http.MethodPatch, "/api/v1/customer-categories/7", nil)

	assert.Equal(t, map[string]string{
		ProfilingLabelRoute:    "/api/v1/customer-categories/:id",
		ProfilingLabelMethod:   http.MethodPatch,
		ProfilingLabelResource: "customer-categories",
	}, labels)
}

func TestProfiling_SkipsHealth(t *testing.T) {
	router := gin.New()
	router.Use(Profiling(DefaultProfilingConfig()))

	var labelled bool
	router.GET("/health", func(c *gin.Context) {
		_, labelled = pprof.Label(c.Request.Context(), ProfilingLabelRoute)
		c.Status(http.StatusOK)
	})

	doRequest(router, http.MethodGet, "/health", nil)
	assert.False(t, labelled)
}

func TestResourceFromRoute(t *testing.T) {
	tests := map[string]string{
		"/api/v1/customers":               "customers",
		"/api/v1/customers/:id":           "customers",
		"/api/v2/contacts/:id":            "contacts",
		"/api/v1/customer-categories/:id": "customer-categories",
		"/health":                         "health",
		"":                                "",
	}
	for route, want := range tests {
		assert.Equal(t, want, resourceFromRoute(route), route)
	}
}

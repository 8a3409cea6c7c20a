package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(engine http.Handler, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

// recordingHandler answers every operation with the operation name
type recordingHandler struct{}

func (recordingHandler) List(c *gin.Context)   { c.String(http.StatusOK, "list") }
func (recordingHandler) Create(c *gin.Context) { c.String(http.StatusCreated, "create") }
func (recordingHandler) Show(c *gin.Context)   { c.String(http.StatusOK, "show "+c.Param("id")) }
func (recordingHandler) Update(c *gin.Context) { c.String(http.StatusOK, "update "+c.Param("id")) }
func (recordingHandler) Delete(c *gin.Context) { c.String(http.StatusOK, "delete "+c.Param("id")) }

func TestNewRouter(t *testing.T) {
	r := NewRouter(gin.New())
	assert.Equal(t, "v1", r.apiVersion)
	assert.Empty(t, r.registrars)

	r = NewRouter(gin.New(), WithAPIVersion("v2"))
	assert.Equal(t, "v2", r.apiVersion)
}

func TestRouterSetup(t *testing.T) {
	engine := gin.New()
	group := NewDomainGroup("test", "/test").GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	NewRouter(engine, WithAPIVersion("v1")).Register(group).Setup()

	w := serve(engine, http.MethodGet, "/api/v1/test/ping")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())
}

func TestRouter_GroupMiddleware(t *testing.T) {
	engine := gin.New()
	engine.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	deny := func(c *gin.Context) { c.AbortWithStatus(http.StatusUnauthorized) }
	NewRouter(engine, WithGroupMiddleware(deny)).
		Register(NewResourceGroup("customers", "/customers", recordingHandler{})).
		Setup()

	assert.Equal(t, http.StatusUnauthorized, serve(engine, http.MethodGet, "/api/v1/customers").Code)
	assert.Equal(t, http.StatusOK, serve(engine, http.MethodGet, "/health").Code)
}

func TestNewResourceGroup(t *testing.T) {
	engine := gin.New()
	NewRouter(engine).
		Register(NewResourceGroup("customers", "/customers", recordingHandler{})).
		Setup()

	tests := []struct {
		method     string
		path       string
		wantStatus int
		wantBody   string
	}{
		{http.MethodGet, "/api/v1/customers", http.StatusOK, "list"},
		{http.MethodPost, "/api/v1/customers", http.StatusCreated, "create"},
		{http.MethodGet, "/api/v1/customers/42", http.StatusOK, "show 42"},
		{http.MethodPut, "/api/v1/customers/42", http.StatusOK, "update 42"},
		{http.MethodPatch, "/api/v1/customers/42", http.StatusOK, "update 42"},
		{http.MethodDelete, "/api/v1/customers/42", http.StatusOK, "delete 42"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := serve(engine, tt.method, tt.path)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestDomainGroup(t *testing.T) {
	t.Run("name and prefix", func(t *testing.T) {
		g := NewDomainGroup("contacts", "/contacts")
		assert.Equal(t, "contacts", g.Name())
		assert.Equal(t, "/contacts", g.Prefix())
	})

	t.Run("applies middleware", func(t *testing.T) {
		engine := gin.New()
		g := NewDomainGroup("test", "/test").
			Use(func(c *gin.Context) {
				c.Header("X-Test-Middleware", "applied")
				c.Next()
			}).
			GET("/items", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
		g.RegisterRoutes(engine.Group("/api/v1"))

		w := serve(engine, http.MethodGet, "/api/v1/test/items")
		assert.Equal(t, "applied", w.Header().Get("X-Test-Middleware"))
	})
}

func TestMultipleDomainGroups(t *testing.T) {
	engine := gin.New()
	categories := NewDomainGroup("customer-categories", "/customer-categories").
		GET("", func(c *gin.Context) { c.String(http.StatusOK, "categories") })
	contacts := NewDomainGroup("contacts", "/contacts").
		GET("", func(c *gin.Context) { c.String(http.StatusOK, "contacts") })

	NewRouter(engine).Register(categories).Register(contacts).Setup()

	assert.Equal(t, "categories", serve(engine, http.MethodGet, "/api/v1/customer-categories").Body.String())
	assert.Equal(t, "contacts", serve(engine, http.MethodGet, "/api/v1/contacts").Body.String())
}

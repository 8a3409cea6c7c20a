package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	_ "github.com/crm/backend/docs"
	partnerapp "github.com/crm/backend/internal/application/partner"
	"github.com/crm/backend/internal/infrastructure/auth"
	"github.com/crm/backend/internal/infrastructure/config"
	"github.com/crm/backend/internal/infrastructure/persistence"
	"github.com/crm/backend/internal/infrastructure/persistence/models"
	"github.com/crm/backend/internal/interfaces/http/handler"
	"github.com/crm/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestEngine wires the full stack on an in-memory SQLite database
func newTestEngine(t *testing.T, cfg EngineConfig) *gin.Engine {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), persistence.NewGormConfig(logger.Discard))
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(models.PartnerModels()...))

	repos := partnerapp.Repositories{
		Customers:  persistence.NewGormCustomerRepository(db),
		Categories: persistence.NewGormCustomerCategoryRepository(db),
		Contacts:   persistence.NewGormContactRepository(db),
	}
	log := zap.NewNop()
	base := handler.NewBaseHandler(true)

	engine, err := NewEngine(cfg, Handlers{
		Customers:          handler.NewCustomerHandler(partnerapp.NewCustomerService(repos, nil, log), base),
		CustomerCategories: handler.NewCustomerCategoryHandler(partnerapp.NewCustomerCategoryService(repos, nil, log), base),
		Contacts:           handler.NewContactHandler(partnerapp.NewContactService(repos, nil, log), base),
		Health:             handler.NewHealthHandler(handler.PingerFunc(sqlDB.PingContext), base),
	})
	require.NoError(t, err)
	return engine
}

func defaultEngineConfig() EngineConfig {
	return EngineConfig{
		HTTP:      config.HTTPConfig{MaxBodySize: 1 << 20},
		Tracing:   middleware.TracingConfig{Enabled: false},
		Profiling: middleware.ProfilingConfig{Enabled: false},
	}
}

type apiResponse struct {
	Message string              `json:"message"`
	Data    json.RawMessage     `json:"data"`
	Errors  map[string][]string `json:"errors"`
}

func call(t *testing.T, engine http.Handler, method, path, body string, headers ...string) (*httptest.ResponseRecorder, apiResponse) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	var resp apiResponse
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	}
	return w, resp
}

func decodeData[T any](t *testing.T, resp apiResponse) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(resp.Data, &v))
	return v
}

func TestEngine_CustomerLifecycle(t *testing.T) {
	engine := newTestEngine(t, defaultEngineConfig())

	w, resp := call(t, engine, http.MethodPost, "/api/v1/customer-categories", `{"name":" Gold "}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	gold := decodeData[partnerapp.CustomerCategoryResponse](t, resp)
	assert.Equal(t, "Gold", gold.Name)

	w, resp = call(t, engine, http.MethodPost, "/api/v1/customers",
		`{"name":"  john   o'neil ","reference":" abc-123 ","customer_category_id":"`+gold.ID.String()+`","start_date":"2024-01-01"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "Customer created successfully", resp.Message)
	customer := decodeData[partnerapp.CustomerResponse](t, resp)
	assert.Equal(t, "John O'neil", customer.Name)
	assert.Equal(t, "ABC-123", customer.Reference)
	assert.Equal(t, "2024-01-01", customer.StartDate)
	require.NotNil(t, customer.Category)
	assert.Equal(t, "Gold", customer.Category.Name)
	assert.Empty(t, customer.Contacts)

	t.Run("duplicate reference after normalization", func(t *testing.T) {
		w, resp := call(t, engine, http.MethodPost, "/api/v1/customers",
			`{"name":"Jane Roe","reference":"abc-123","customer_category_id":"`+gold.ID.String()+`","start_date":"2024-02-01"}`)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, "The given data was invalid.", resp.Message)
		assert.Contains(t, resp.Errors, "reference")
	})

	t.Run("invalid name", func(t *testing.T) {
		w, resp := call(t, engine, http.MethodPost, "/api/v1/customers",
			`{"name":"John123","reference":"XYZ-1","customer_category_id":"`+gold.ID.String()+`","start_date":"2024-02-01"}`)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, resp.Errors, "name")
	})

	w, resp = call(t, engine, http.MethodPost, "/api/v1/contacts",
		`{"first_name":"Ada","last_name":"Lovelace","customer_id":"`+customer.ID.String()+`"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	contact := decodeData[partnerapp.ContactResponse](t, resp)
	require.NotNil(t, contact.Customer)
	assert.Equal(t, customer.ID, contact.Customer.ID)
	_, _ = call(t, engine, http.MethodPost, "/api/v1/contacts",
		`{"first_name":"Byron","last_name":"Lovelace","customer_id":"`+customer.ID.String()+`"}`)

	t.Run("search by contact last name returns the customer once", func(t *testing.T) {
		w, resp := call(t, engine, http.MethodGet, "/api/v1/customers?search=LOVELACE", "")
		require.Equal(t, http.StatusOK, w.Code)
		list := decodeData[[]partnerapp.CustomerResponse](t, resp)
		require.Len(t, list, 1)
		assert.Len(t, list[0].Contacts, 2)
	})

	t.Run("empty category filter equals no filter", func(t *testing.T) {
		_, all := call(t, engine, http.MethodGet, "/api/v1/customers", "")
		_, empty := call(t, engine, http.MethodGet, "/api/v1/customers?category_id=", "")
		assert.JSONEq(t, string(all.Data), string(empty.Data))
	})

	t.Run("partial update leaves other fields", func(t *testing.T) {
		w, resp := call(t, engine, http.MethodPatch, "/api/v1/customers/"+customer.ID.String(), `{"description":"  Key account "}`)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		updated := decodeData[partnerapp.CustomerResponse](t, resp)
		require.NotNil(t, updated.Description)
		assert.Equal(t, "Key account", *updated.Description)
		assert.Equal(t, customer.Name, updated.Name)
		assert.Equal(t, customer.Reference, updated.Reference)
		assert.Equal(t, customer.CustomerCategoryID, updated.CustomerCategoryID)
		assert.Equal(t, customer.StartDate, updated.StartDate)
	})

	t.Run("category in use", func(t *testing.T) {
		w, _ := call(t, engine, http.MethodDelete, "/api/v1/customer-categories/"+gold.ID.String(), "")
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	w, resp = call(t, engine, http.MethodDelete, "/api/v1/customers/"+customer.ID.String(), "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Customer deleted successfully", resp.Message)

	w, resp = call(t, engine, http.MethodDelete, "/api/v1/customers/"+customer.ID.String(), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Customer not found", resp.Message)

	w, resp = call(t, engine, http.MethodGet, "/api/v1/contacts?customer_id="+customer.ID.String(), "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, string(resp.Data))

	w, _ = call(t, engine, http.MethodDelete, "/api/v1/customer-categories/"+gold.ID.String(), "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestEngine_CommonBehaviour(t *testing.T) {
	engine := newTestEngine(t, defaultEngineConfig())

	t.Run("health", func(t *testing.T) {
		w, _ := call(t, engine, http.MethodGet, "/health", "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("request id echoed", func(t *testing.T) {
		w, _ := call(t, engine, http.MethodGet, "/health", "", middleware.RequestIDHeader, "req-123")
		assert.Equal(t, "req-123", w.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("malformed id", func(t *testing.T) {
		w, resp := call(t, engine, http.MethodGet, "/api/v1/contacts/42", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid contact id", resp.Message)
	})

	t.Run("malformed json", func(t *testing.T) {
		w, resp := call(t, engine, http.MethodPost, "/api/v1/customer-categories", `{"name":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Malformed JSON request body", resp.Message)
	})

	t.Run("swagger disabled", func(t *testing.T) {
		w, _ := call(t, engine, http.MethodGet, "/swagger/doc.json", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestEngine_BodyLimit(t *testing.T) {
	cfg := defaultEngineConfig()
	cfg.HTTP.MaxBodySize = 64
	engine := newTestEngine(t, cfg)

	w, _ := call(t, engine, http.MethodPost, "/api/v1/customer-categories", `{"name":"`+strings.Repeat("x", 200)+`"}`)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestEngine_Swagger(t *testing.T) {
	cfg := defaultEngineConfig()
	cfg.Swagger = config.SwaggerConfig{Enabled: true}
	engine := newTestEngine(t, cfg)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"/customers/{id}"`)
}

func TestEngine_Authentication(t *testing.T) {
	jwtService := auth.NewJWTService(config.JWTConfig{
		Enabled:               true,
		Secret:                "router-test-secret-with-enough-length",
		Issuer:                "crm-backend",
		AccessTokenExpiration: time.Minute,
	})
	cfg := defaultEngineConfig()
	cfg.TokenValidator = jwtService
	cfg.Swagger = config.SwaggerConfig{Enabled: true, RequireAuth: true}
	engine := newTestEngine(t, cfg)

	w, resp := call(t, engine, http.MethodGet, "/api/v1/customers", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.NotEmpty(t, resp.Message)

	w, _ = call(t, engine, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code, "health stays public")

	w, _ = call(t, engine, http.MethodGet, "/swagger/doc.json", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token, err := jwtService.GenerateToken("integration", "Integration", 0)
	require.NoError(t, err)
	w, resp = call(t, engine, http.MethodGet, "/api/v1/customers", "", "Authorization", "Bearer "+token.AccessToken)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Customers retrieved successfully", resp.Message)
}

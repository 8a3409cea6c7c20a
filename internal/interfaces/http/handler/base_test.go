package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/crm/backend/internal/domain/partner"
	"github.com/crm/backend/internal/domain/shared"
	"github.com/crm/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestHandleError(t *testing.T) {
	msgs := dto.CustomerMessages

	tests := []struct {
		name       string
		err        error
		expose     bool
		wantStatus int
		wantBody   string
	}{
		{
			name:       "validation error",
			err:        shared.FieldError("reference", partner.MsgReferenceTaken),
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `{"message":"The given data was invalid.","errors":{"reference":["The reference has already been taken."]}}`,
		},
		{
			name:       "wrapped not found",
			err:        fmt.Errorf("find customer: %w", shared.ErrNotFound),
			wantStatus: http.StatusNotFound,
			wantBody:   `{"message":"Customer not found"}`,
		},
		{
			name:       "category in use",
			err:        partner.ErrCategoryInUse,
			wantStatus: http.StatusConflict,
			wantBody:   `{"message":"Customer category still has customers assigned"}`,
		},
		{
			name:       "other domain error",
			err:        shared.ErrInvalidInput,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"message":"Invalid input provided"}`,
		},
		{
			name:       "persistence failure exposed",
			err:        shared.NewPersistenceError("delete customer", errors.New("connection reset")),
			expose:     true,
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"message":"Error deleting customer","error":"delete customer: connection reset"}`,
		},
		{
			name:       "persistence failure hidden",
			err:        shared.NewPersistenceError("delete customer", errors.New("connection reset")),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"message":"Error deleting customer"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewBaseHandler(tt.expose)
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			h.HandleError(c, tt.err, msgs, msgs.DeleteFailed)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
			assert.Len(t, c.Errors, 1)
		})
	}
}

func TestHandleError_Nil(t *testing.T) {
	h := NewBaseHandler(true)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	h.HandleError(c, nil, dto.CustomerMessages, "")

	assert.False(t, c.Writer.Written())
}

func TestBindJSON(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	tests := []struct {
		name       string
		body       string
		wantOK     bool
		wantStatus int
	}{
		{name: "valid", body: `{"name":"Gold"}`, wantOK: true},
		{name: "empty body", body: ``, wantOK: true},
		{name: "syntax error", body: `{"name":`, wantStatus: http.StatusBadRequest},
		{name: "wrong type", body: `{"name":42}`, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewBaseHandler(true)
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			c.Request.Header.Set("Content-Type", "application/json")

			var req payload
			ok := h.bindJSON(c, &req)

			assert.Equal(t, tt.wantOK, ok)
			if !tt.wantOK {
				assert.Equal(t, tt.wantStatus, w.Code)
				body := decodeBody(t, w)
				assert.Equal(t, dto.MsgMalformedJSON, body["message"])
				assert.NotEmpty(t, body["error"])
			}
		})
	}
}

func TestBindJSON_TooLarge(t *testing.T) {
	h := NewBaseHandler(false)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"`+strings.Repeat("x", 100)+`"}`))
	c.Request.Body = http.MaxBytesReader(w, c.Request.Body, 16)

	var req map[string]any
	assert.False(t, h.bindJSON(c, &req))
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestParseID(t *testing.T) {
	h := NewBaseHandler(false)
	router := gin.New()
	router.GET("/customers/:id", func(c *gin.Context) {
		if id, ok := h.parseID(c, dto.CustomerMessages); ok {
			c.String(http.StatusOK, id.String())
		}
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/customers/not-a-uuid", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"Invalid customer id"}`, w.Body.String())

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/customers/0b7a5f5e-8c1e-4c1b-9a35-2f0b4a2e6f10", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "0b7a5f5e-8c1e-4c1b-9a35-2f0b4a2e6f10", w.Body.String())
}

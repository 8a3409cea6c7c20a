package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/crm/backend/internal/domain/partner"
	"github.com/crm/backend/internal/domain/shared"
	"github.com/crm/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BaseHandler provides common handler utilities
type BaseHandler struct {
	// exposeErrors adds error diagnostics to 4xx/5xx bodies
	exposeErrors bool
}

// NewBaseHandler creates a BaseHandler. Diagnostics are exposed outside production.
func NewBaseHandler(exposeErrors bool) BaseHandler {
	return BaseHandler{exposeErrors: exposeErrors}
}

// Success sends a 200 response with data
func (h *BaseHandler) Success(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, dto.NewResponse(message, data))
}

// Created sends a 201 response with data
func (h *BaseHandler) Created(c *gin.Context, message string, data any) {
	c.JSON(http.StatusCreated, dto.NewResponse(message, data))
}

// Message sends a 200 response carrying only a message
func (h *BaseHandler) Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, dto.MessageResponse{Message: message})
}

// BadRequest sends a 400 response
func (h *BaseHandler) BadRequest(c *gin.Context, message string, err error) {
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(message, err, h.exposeErrors))
}

// HandleError maps err to an HTTP response.
//
//	*shared.ValidationError        422 {message, errors}
//	shared.ErrNotFound             404 {message}
//	partner.ErrCategoryInUse       409 {message}
//	other *shared.DomainError      400 {message}
//	*shared.PersistenceError/other 500 {message, error}
func (h *BaseHandler) HandleError(c *gin.Context, err error, msgs dto.ResourceMessages, failure string) {
	if err == nil {
		return
	}
	_ = c.Error(err)

	var validationErr *shared.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusUnprocessableEntity, dto.NewValidationErrorResponse(validationErr.Fields))
		return
	}

	if errors.Is(err, shared.ErrNotFound) {
		c.JSON(http.StatusNotFound, dto.MessageResponse{Message: msgs.NotFound})
		return
	}

	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		status := http.StatusBadRequest
		if domainErr.Code == partner.ErrCategoryInUse.Code || domainErr.Code == shared.ErrConflict.Code {
			status = http.StatusConflict
		}
		c.JSON(status, dto.MessageResponse{Message: domainErr.Message})
		return
	}

	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(failure, err, h.exposeErrors))
}

// bindJSON decodes the request body into req. An empty body decodes as an
// empty object so that the validation rules report missing fields.
// It writes the error response itself and returns false on failure.
func (h *BaseHandler) bindJSON(c *gin.Context, req any) bool {
	err := c.ShouldBindJSON(req)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}

	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		c.JSON(http.StatusRequestEntityTooLarge, dto.MessageResponse{Message: dto.MsgRequestTooLarge})
		return false
	}

	h.BadRequest(c, dto.MsgMalformedJSON, err)
	return false
}

// parseID reads the :id path parameter
func (h *BaseHandler) parseID(c *gin.Context, msgs dto.ResourceMessages) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, msgs.InvalidID, err)
		return uuid.Nil, false
	}
	return id, true
}

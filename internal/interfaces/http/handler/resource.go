package handler

import (
	"context"

	"github.com/crm/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ResourceService is the application service behind one REST resource.
// *resource.Service satisfies it.
type ResourceService[T any, F any, C any, U any] interface {
	List(ctx context.Context, filter F) ([]T, error)
	Create(ctx context.Context, req C) (*T, error)
	Show(ctx context.Context, id uuid.UUID) (*T, error)
	Update(ctx context.Context, id uuid.UUID, req U) (*T, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// resourceHandler implements the five REST operations for one resource.
// R is the response DTO.
type resourceHandler[T any, F any, C any, U any, R any] struct {
	BaseHandler
	service ResourceService[T, F, C, U]
	msgs    dto.ResourceMessages
	// filter builds the list filter from the query string
	filter func(c *gin.Context) (F, error)
	toOne  func(*T) R
	toMany func([]T) []R
}

func (h *resourceHandler[T, F, C, U, R]) list(c *gin.Context) {
	filter, err := h.filter(c)
	if err != nil {
		h.HandleError(c, err, h.msgs, h.msgs.ListFailed)
		return
	}

	items, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err, h.msgs, h.msgs.ListFailed)
		return
	}
	h.Success(c, h.msgs.Listed, h.toMany(items))
}

func (h *resourceHandler[T, F, C, U, R]) create(c *gin.Context) {
	var req C
	if !h.bindJSON(c, &req) {
		return
	}

	entity, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err, h.msgs, h.msgs.CreateFailed)
		return
	}
	h.Created(c, h.msgs.Created, h.toOne(entity))
}

func (h *resourceHandler[T, F, C, U, R]) show(c *gin.Context) {
	id, ok := h.parseID(c, h.msgs)
	if !ok {
		return
	}

	entity, err := h.service.Show(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err, h.msgs, h.msgs.ShowFailed)
		return
	}
	h.Success(c, h.msgs.Retrieved, h.toOne(entity))
}

func (h *resourceHandler[T, F, C, U, R]) update(c *gin.Context) {
	id, ok := h.parseID(c, h.msgs)
	if !ok {
		return
	}
	var req U
	if !h.bindJSON(c, &req) {
		return
	}

	entity, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err, h.msgs, h.msgs.UpdateFailed)
		return
	}
	h.Success(c, h.msgs.Updated, h.toOne(entity))
}

func (h *resourceHandler[T, F, C, U, R]) delete(c *gin.Context) {
	id, ok := h.parseID(c, h.msgs)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err, h.msgs, h.msgs.DeleteFailed)
		return
	}
	h.Message(c, h.msgs.Deleted)
}

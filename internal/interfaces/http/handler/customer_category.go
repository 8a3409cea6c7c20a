package handler

import (
	partnerapp "github.com/crm/backend/internal/application/partner"
	"github.com/crm/backend/internal/domain/partner"
	"github.com/crm/backend/internal/domain/shared"
	"github.com/crm/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// CustomerCategoryService is the application service used by CustomerCategoryHandler
type CustomerCategoryService = ResourceService[partner.CustomerCategory, shared.NoFilter, partnerapp.CreateCustomerCategoryRequest, partnerapp.UpdateCustomerCategoryRequest]

// CustomerCategoryHandler handles customer category API endpoints
type CustomerCategoryHandler struct {
	h resourceHandler[partner.CustomerCategory, shared.NoFilter, partnerapp.CreateCustomerCategoryRequest, partnerapp.UpdateCustomerCategoryRequest, partnerapp.CustomerCategoryResponse]
}

// NewCustomerCategoryHandler creates a new CustomerCategoryHandler
func NewCustomerCategoryHandler(service CustomerCategoryService, base BaseHandler) *CustomerCategoryHandler {
	return &CustomerCategoryHandler{
		h: resourceHandler[partner.CustomerCategory, shared.NoFilter, partnerapp.CreateCustomerCategoryRequest, partnerapp.UpdateCustomerCategoryRequest, partnerapp.CustomerCategoryResponse]{
			BaseHandler: base,
			service:     service,
			msgs:        dto.CustomerCategoryMessages,
			filter: func(*gin.Context) (shared.NoFilter, error) {
				return shared.NoFilter{}, nil
			},
			toOne:  partnerapp.ToCustomerCategoryResponse,
			toMany: partnerapp.ToCustomerCategoryResponses,
		},
	}
}

// List godoc
// @ID           listCustomerCategories
// @Summary      List customer categories
// @Tags         customer-categories
// @Produce      json
// @Success      200 {object} DataResponse[[]partner.CustomerCategoryResponse]
// @Failure      500 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /customer-categories [get]
func (h *CustomerCategoryHandler) List(c *gin.Context) { h.h.list(c) }

// Create godoc
// @ID           createCustomerCategory
// @Summary      Create a customer category
// @Tags         customer-categories
// @Accept       json
// @Produce      json
// @Param        request body partner.CreateCustomerCategoryRequest true "Category creation request"
// @Success      201 {object} DataResponse[partner.CustomerCategoryResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      422 {object} dto.ValidationErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /customer-categories [post]
func (h *CustomerCategoryHandler) Create(c *gin.Context) { h.h.create(c) }

// Show godoc
// @ID           getCustomerCategory
// @Summary      Get a customer category
// @Tags         customer-categories
// @Produce      json
// @Param        id path string true "Customer category ID" format(uuid)
// @Success      200 {object} DataResponse[partner.CustomerCategoryResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.MessageResponse
// @Security     BearerAuth
// @Router       /customer-categories/{id} [get]
func (h *CustomerCategoryHandler) Show(c *gin.Context) { h.h.show(c) }

// Update godoc
// @ID           updateCustomerCategory
// @Summary      Rename a customer category
// @Tags         customer-categories
// @Accept       json
// @Produce      json
// @Param        id      path string                                true "Customer category ID" format(uuid)
// @Param        request body partner.UpdateCustomerCategoryRequest true "Fields to update"
// @Success      200 {object} DataResponse[partner.CustomerCategoryResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.MessageResponse
// @Failure      422 {object} dto.ValidationErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /customer-categories/{id} [put]
// @Router       /customer-categories/{id} [patch]
func (h *CustomerCategoryHandler) Update(c *gin.Context) { h.h.update(c) }

// Delete godoc
// @ID           deleteCustomerCategory
// @Summary      Delete a customer category
// @Description  Rejected with 409 while customers still reference the category
// @Tags         customer-categories
// @Produce      json
// @Param        id path string true "Customer category ID" format(uuid)
// @Success      200 {object} dto.MessageResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.MessageResponse
// @Failure      409 {object} dto.MessageResponse
// @Failure      500 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /customer-categories/{id} [delete]
func (h *CustomerCategoryHandler) Delete(c *gin.Context) { h.h.delete(c) }

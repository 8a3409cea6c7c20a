package handler

import (
	partnerapp "github.com/crm/backend/internal/application/partner"
	"github.com/crm/backend/internal/domain/partner"
	"github.com/crm/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// CustomerService is the application service used by CustomerHandler
type CustomerService = ResourceService[partner.Customer, partner.CustomerQuery, partnerapp.CreateCustomerRequest, partnerapp.UpdateCustomerRequest]

// CustomerHandler handles customer-related API endpoints
type CustomerHandler struct {
	h resourceHandler[partner.Customer, partner.CustomerQuery, partnerapp.CreateCustomerRequest, partnerapp.UpdateCustomerRequest, partnerapp.CustomerResponse]
}

// NewCustomerHandler creates a new CustomerHandler
func NewCustomerHandler(service CustomerService, base BaseHandler) *CustomerHandler {
	return &CustomerHandler{
		h: resourceHandler[partner.Customer, partner.CustomerQuery, partnerapp.CreateCustomerRequest, partnerapp.UpdateCustomerRequest, partnerapp.CustomerResponse]{
			BaseHandler: base,
			service:     service,
			msgs:        dto.CustomerMessages,
			filter: func(c *gin.Context) (partner.CustomerQuery, error) {
				return partner.NewCustomerQuery(c.Query("search"), c.Query("category_id"))
			},
			toOne:  partnerapp.ToCustomerResponse,
			toMany: partnerapp.ToCustomerResponses,
		},
	}
}

// List godoc
// @ID           listCustomers
// @Summary      List customers
// @Description  Search customers by name, reference or contact name and filter by category
// @Tags         customers
// @Produce      json
// @Param        search      query string false "Case-insensitive search term"
// @Param        category_id query string false "Customer category ID (empty means no filter)"
// @Success      200 {object} DataResponse[[]partner.CustomerResponse]
// @Failure      422 {object} dto.ValidationErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /customers [get]
func (h *CustomerHandler) List(c *gin.Context) { h.h.list(c) }

// Create godoc
// @ID           createCustomer
// @Summary      Create a customer
// @Description  Validates and normalizes the payload, then stores the customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        request body partner.CreateCustomerRequest true "Customer creation request"
// @Success      201 {object} DataResponse[partner.CustomerResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      422 {object} dto.ValidationErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /customers [post]
func (h *CustomerHandler) Create(c *gin.Context) { h.h.create(c) }

// Show godoc
// @ID           getCustomer
// @Summary      Get a customer
// @Description  Returns the customer with its category and contacts
// @Tags         customers
// @Produce      json
// @Param        id path string true "Customer ID" format(uuid)
// @Success      200 {object} DataResponse[partner.CustomerResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.MessageResponse
// @Security     BearerAuth
// @Router       /customers/{id} [get]
func (h *CustomerHandler) Show(c *gin.Context) { h.h.show(c) }

// Update godoc
// @ID           updateCustomer
// @Summary      Update a customer
// @Description  Applies the supplied fields; absent fields are left untouched
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        id      path string                        true "Customer ID" format(uuid)
// @Param        request body partner.UpdateCustomerRequest true "Fields to update"
// @Success      200 {object} DataResponse[partner.CustomerResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.MessageResponse
// @Failure      422 {object} dto.ValidationErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /customers/{id} [put]
// @Router       /customers/{id} [patch]
func (h *CustomerHandler) Update(c *gin.Context) { h.h.update(c) }

// Delete godoc
// @ID           deleteCustomer
// @Summary      Delete a customer
// @Description  Deletes the customer together with its contacts
// @Tags         customers
// @Produce      json
// @Param        id path string true "Customer ID" format(uuid)
// @Success      200 {object} dto.MessageResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.MessageResponse
// @Failure      500 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /customers/{id} [delete]
func (h *CustomerHandler) Delete(c *gin.Context) { h.h.delete(c) }

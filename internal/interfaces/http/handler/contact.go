package handler

import (
	partnerapp "github.com/crm/backend/internal/application/partner"
	"github.com/crm/backend/internal/domain/partner"
	"github.com/crm/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// ContactService is the application service used by ContactHandler
type ContactService = ResourceService[partner.Contact, partner.ContactQuery, partnerapp.CreateContactRequest, partnerapp.UpdateContactRequest]

// ContactHandler handles contact API endpoints
type ContactHandler struct {
	h resourceHandler[partner.Contact, partner.ContactQuery, partnerapp.CreateContactRequest, partnerapp.UpdateContactRequest, partnerapp.ContactResponse]
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(service ContactService, base BaseHandler) *ContactHandler {
	return &ContactHandler{
		h: resourceHandler[partner.Contact, partner.ContactQuery, partnerapp.CreateContactRequest, partnerapp.UpdateContactRequest, partnerapp.ContactResponse]{
			BaseHandler: base,
			service:     service,
			msgs:        dto.ContactMessages,
			filter: func(c *gin.Context) (partner.ContactQuery, error) {
				return partner.NewContactQuery(c.Query("customer_id"))
			},
			toOne:  partnerapp.ToContactResponse,
			toMany: partnerapp.ToContactResponses,
		},
	}
}

// List godoc
// @ID           listContacts
// @Summary      List contacts
// @Description  Lists contacts with their customer, optionally restricted to one customer
// @Tags         contacts
// @Produce      json
// @Param        customer_id query string false "Owning customer ID (empty means no filter)"
// @Success      200 {object} DataResponse[[]partner.ContactResponse]
// @Failure      422 {object} dto.ValidationErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /contacts [get]
func (h *ContactHandler) List(c *gin.Context) { h.h.list(c) }

// Create godoc
// @ID           createContact
// @Summary      Create a contact
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Param        request body partner.CreateContactRequest true "Contact creation request"
// @Success      201 {object} DataResponse[partner.ContactResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      422 {object} dto.ValidationErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /contacts [post]
func (h *ContactHandler) Create(c *gin.Context) { h.h.create(c) }

// Show godoc
// @ID           getContact
// @Summary      Get a contact
// @Tags         contacts
// @Produce      json
// @Param        id path string true "Contact ID" format(uuid)
// @Success      200 {object} DataResponse[partner.ContactResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.MessageResponse
// @Security     BearerAuth
// @Router       /contacts/{id} [get]
func (h *ContactHandler) Show(c *gin.Context) { h.h.show(c) }

// Update godoc
// @ID           updateContact
// @Summary      Update a contact
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Param        id      path string                       true "Contact ID" format(uuid)
// @Param        request body partner.UpdateContactRequest true "Fields to update"
// @Success      200 {object} DataResponse[partner.ContactResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.MessageResponse
// @Failure      422 {object} dto.ValidationErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /contacts/{id} [put]
// @Router       /contacts/{id} [patch]
func (h *ContactHandler) Update(c *gin.Context) { h.h.update(c) }

// Delete godoc
// @ID           deleteContact
// @Summary      Delete a contact
// @Tags         contacts
// @Produce      json
// @Param        id path string true "Contact ID" format(uuid)
// @Success      200 {object} dto.MessageResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.MessageResponse
// @Failure      500 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /contacts/{id} [delete]
func (h *ContactHandler) Delete(c *gin.Context) { h.h.delete(c) }

package partner

import (
	"strings"
	"time"

	"github.com/crm/backend/internal/domain/partner"
	"github.com/google/uuid"
)

// =============================================================================
// Customer DTOs
// =============================================================================

// CreateCustomerRequest represents a request to create a new customer
type CreateCustomerRequest struct {
	Name               string  `json:"name" validate:"required,min=2,max=100,personname" example:"John O'Neil"`
	Reference          string  `json:"reference" validate:"required,min=3,max=20,reference" example:"ABC-123"`
	CustomerCategoryID string  `json:"customer_category_id" validate:"required,uuid" example:"0b7a5f5e-8c1e-4c1b-9a35-2f0b4a2e6f10"`
	StartDate          string  `json:"start_date" validate:"required,calendardate" example:"2024-01-01"`
	Description        *string `json:"description" validate:"omitnil,max=500"`
}

func (r CreateCustomerRequest) normalized() CreateCustomerRequest {
	r.Name = partner.NormalizeName(r.Name)
	r.Reference = partner.NormalizeReference(r.Reference)
	r.CustomerCategoryID = strings.TrimSpace(r.CustomerCategoryID)
	r.StartDate = strings.TrimSpace(r.StartDate)
	r.Description = trimmedPtr(r.Description)
	return r
}

// UpdateCustomerRequest represents a partial update of a customer.
// Nil fields are left untouched.
type UpdateCustomerRequest struct {
	Name               *string `json:"name" validate:"omitnil,min=2,max=100,personname"`
	Reference          *string `json:"reference" validate:"omitnil,min=3,max=20,reference"`
	CustomerCategoryID *string `json:"customer_category_id" validate:"omitnil,uuid"`
	StartDate          *string `json:"start_date" validate:"omitnil,calendardate"`
	Description        *string `json:"description" validate:"omitnil,max=500"`
}

func (r UpdateCustomerRequest) normalized() UpdateCustomerRequest {
	if r.Name != nil {
		name := partner.NormalizeName(*r.Name)
		r.Name = &name
	}
	if r.Reference != nil {
		ref := partner.NormalizeReference(*r.Reference)
		r.Reference = &ref
	}
	r.CustomerCategoryID = trimmedPtr(r.CustomerCategoryID)
	r.StartDate = trimmedPtr(r.StartDate)
	r.Description = trimmedPtr(r.Description)
	return r
}

// CustomerResponse represents a customer in API responses
type CustomerResponse struct {
	ID                 uuid.UUID                 `json:"id"`
	Name               string                    `json:"name"`
	Reference          string                    `json:"reference"`
	CustomerCategoryID uuid.UUID                 `json:"customer_category_id"`
	StartDate          string                    `json:"start_date"`
	Description        *string                   `json:"description"`
	CreatedAt          time.Time                 `json:"created_at"`
	UpdatedAt          time.Time                 `json:"updated_at"`
	Category           *CustomerCategoryResponse `json:"category"`
	Contacts           []ContactResponse         `json:"contacts"`
}

// CustomerSummaryResponse is a customer without its relations, embedded in contacts
type CustomerSummaryResponse struct {
	ID                 uuid.UUID `json:"id"`
	Name               string    `json:"name"`
	Reference          string    `json:"reference"`
	CustomerCategoryID uuid.UUID `json:"customer_category_id"`
	StartDate          string    `json:"start_date"`
	Description        *string   `json:"description"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// ToCustomerResponse converts a domain Customer with its attached relations
func ToCustomerResponse(c *partner.Customer) CustomerResponse {
	resp := CustomerResponse{
		ID:                 c.ID,
		Name:               c.Name,
		Reference:          c.Reference,
		CustomerCategoryID: c.CustomerCategoryID,
		StartDate:          c.StartDate.Format(partner.DateLayout),
		Description:        c.Description,
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
		Contacts:           make([]ContactResponse, 0, len(c.Contacts)),
	}
	if c.Category != nil {
		category := ToCustomerCategoryResponse(c.Category)
		resp.Category = &category
	}
	for i := range c.Contacts {
		resp.Contacts = append(resp.Contacts, ToContactResponse(&c.Contacts[i]))
	}
	return resp
}

// ToCustomerResponses converts a slice of domain Customers
func ToCustomerResponses(customers []partner.Customer) []CustomerResponse {
	responses := make([]CustomerResponse, len(customers))
	for i := range customers {
		responses[i] = ToCustomerResponse(&customers[i])
	}
	return responses
}

// ToCustomerSummaryResponse converts a domain Customer without relations
func ToCustomerSummaryResponse(c *partner.Customer) CustomerSummaryResponse {
	return CustomerSummaryResponse{
		ID:                 c.ID,
		Name:               c.Name,
		Reference:          c.Reference,
		CustomerCategoryID: c.CustomerCategoryID,
		StartDate:          c.StartDate.Format(partner.DateLayout),
		Description:        c.Description,
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	}
}

// =============================================================================
// Customer Category DTOs
// =============================================================================

// CreateCustomerCategoryRequest represents a request to create a category
type CreateCustomerCategoryRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100" example:"Gold"`
}

// UpdateCustomerCategoryRequest represents a partial update of a category
type UpdateCustomerCategoryRequest struct {
	Name *string `json:"name" validate:"omitnil,min=1,max=100"`
}

// CustomerCategoryResponse represents a category in API responses
type CustomerCategoryResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToCustomerCategoryResponse converts a domain CustomerCategory
func ToCustomerCategoryResponse(c *partner.CustomerCategory) CustomerCategoryResponse {
	return CustomerCategoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ToCustomerCategoryResponses converts a slice of domain categories
func ToCustomerCategoryResponses(categories []partner.CustomerCategory) []CustomerCategoryResponse {
	responses := make([]CustomerCategoryResponse, len(categories))
	for i := range categories {
		responses[i] = ToCustomerCategoryResponse(&categories[i])
	}
	return responses
}

// =============================================================================
// Contact DTOs
// =============================================================================

// CreateContactRequest represents a request to create a contact
type CreateContactRequest struct {
	FirstName  string `json:"first_name" validate:"required,min=1,max=255" example:"Ada"`
	LastName   string `json:"last_name" validate:"required,min=1,max=255" example:"Lovelace"`
	CustomerID string `json:"customer_id" validate:"required,uuid"`
}

func (r CreateContactRequest) normalized() CreateContactRequest {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.CustomerID = strings.TrimSpace(r.CustomerID)
	return r
}

// UpdateContactRequest represents a partial update of a contact
type UpdateContactRequest struct {
	FirstName  *string `json:"first_name" validate:"omitnil,min=1,max=255"`
	LastName   *string `json:"last_name" validate:"omitnil,min=1,max=255"`
	CustomerID *string `json:"customer_id" validate:"omitnil,uuid"`
}

func (r UpdateContactRequest) normalized() UpdateContactRequest {
	r.FirstName = trimmedPtr(r.FirstName)
	r.LastName = trimmedPtr(r.LastName)
	r.CustomerID = trimmedPtr(r.CustomerID)
	return r
}

// ContactResponse represents a contact in API responses
type ContactResponse struct {
	ID         uuid.UUID                `json:"id"`
	FirstName  string                   `json:"first_name"`
	LastName   string                   `json:"last_name"`
	CustomerID uuid.UUID                `json:"customer_id"`
	CreatedAt  time.Time                `json:"created_at"`
	UpdatedAt  time.Time                `json:"updated_at"`
	Customer   *CustomerSummaryResponse `json:"customer,omitempty"`
}

// ToContactResponse converts a domain Contact
func ToContactResponse(c *partner.Contact) ContactResponse {
	resp := ContactResponse{
		ID:         c.ID,
		FirstName:  c.FirstName,
		LastName:   c.LastName,
		CustomerID: c.CustomerID,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
	if c.Customer != nil {
		customer := ToCustomerSummaryResponse(c.Customer)
		resp.Customer = &customer
	}
	return resp
}

// ToContactResponses converts a slice of domain Contacts
func ToContactResponses(contacts []partner.Contact) []ContactResponse {
	responses := make([]ContactResponse, len(contacts))
	for i := range contacts {
		responses[i] = ToContactResponse(&contacts[i])
	}
	return responses
}

func trimmedPtr(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}

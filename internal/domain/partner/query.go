package partner

import (
	"strings"

	"github.com/crm/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CustomerQuery holds the optional list parameters for customers.
// A zero value selects every customer.
type CustomerQuery struct {
	// Search matches name, reference or any contact first/last name (case-insensitive substring)
	Search string
	// CategoryID restricts to one category; nil means no restriction
	CategoryID *uuid.UUID
}

// NewCustomerQuery builds a query from raw request parameters.
// An empty category is treated as "no filter", never as "empty category".
func NewCustomerQuery(search, categoryID string) (CustomerQuery, error) {
	q := CustomerQuery{Search: strings.TrimSpace(search)}

	categoryID = strings.TrimSpace(categoryID)
	if categoryID == "" {
		return q, nil
	}
	id, err := uuid.Parse(categoryID)
	if err != nil {
		return CustomerQuery{}, shared.FieldError("category_id", "The category id must be a valid UUID.")
	}
	q.CategoryID = &id
	return q, nil
}

// HasSearch reports whether a search term is present
func (q CustomerQuery) HasSearch() bool {
	return q.Search != ""
}

// ContactQuery holds the optional list parameters for contacts
type ContactQuery struct {
	CustomerID *uuid.UUID
}

// NewContactQuery builds a query from the raw customer_id parameter; empty means no filter
func NewContactQuery(customerID string) (ContactQuery, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return ContactQuery{}, nil
	}
	id, err := uuid.Parse(customerID)
	if err != nil {
		return ContactQuery{}, shared.FieldError("customer_id", "The customer id must be a valid UUID.")
	}
	return ContactQuery{CustomerID: &id}, nil
}

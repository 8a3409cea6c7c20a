package partner

import (
	"github.com/crm/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Contact is a person reachable at a customer
type Contact struct {
	shared.BaseEntity
	FirstName  string
	LastName   string
	CustomerID uuid.UUID

	// Customer is populated by the attach step only
	Customer *Customer
}

// NewContact creates a contact with trimmed names
func NewContact(firstName, lastName string, customerID uuid.UUID) *Contact {
	return &Contact{
		BaseEntity: shared.NewBaseEntity(),
		FirstName:  NormalizeText(firstName),
		LastName:   NormalizeText(lastName),
		CustomerID: customerID,
	}
}

// Rename updates the first and/or last name; nil leaves the part untouched
func (c *Contact) Rename(firstName, lastName *string) {
	if firstName != nil {
		c.FirstName = NormalizeText(*firstName)
	}
	if lastName != nil {
		c.LastName = NormalizeText(*lastName)
	}
	c.Touch()
}

// AssignTo moves the contact to another customer
func (c *Contact) AssignTo(customerID uuid.UUID) {
	if c.CustomerID != customerID {
		c.Customer = nil
	}
	c.CustomerID = customerID
	c.Touch()
}


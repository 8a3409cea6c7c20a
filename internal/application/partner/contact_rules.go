package partner

import (
	"context"
	"fmt"

	"github.com/crm/backend/internal/domain/partner"
	"github.com/crm/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ContactRules validates contact requests
type ContactRules struct {
	customers partner.CustomerRepository
}

// NewContactRules creates a new ContactRules
func NewContactRules(customers partner.CustomerRepository) *ContactRules {
	return &ContactRules{customers: customers}
}

// Build validates a create payload and returns the new contact
func (r *ContactRules) Build(ctx context.Context, req CreateContactRequest) (*partner.Contact, error) {
	req = req.normalized()
	verr := validateStruct(req)

	if err := r.checkCustomer(ctx, verr, req.CustomerID); err != nil {
		return nil, err
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}
	return partner.NewContact(req.FirstName, req.LastName, uuid.MustParse(req.CustomerID)), nil
}

// Apply validates an update payload and merges the supplied fields into c
func (r *ContactRules) Apply(ctx context.Context, c *partner.Contact, req UpdateContactRequest) error {
	req = req.normalized()
	verr := validateStruct(req)

	if req.CustomerID != nil {
		if err := r.checkCustomer(ctx, verr, *req.CustomerID); err != nil {
			return err
		}
	}
	if err := verr.OrNil(); err != nil {
		return err
	}

	if req.FirstName != nil || req.LastName != nil {
		c.Rename(req.FirstName, req.LastName)
	}
	if req.CustomerID != nil {
		c.AssignTo(uuid.MustParse(*req.CustomerID))
	}
	return nil
}

func (r *ContactRules) checkCustomer(ctx context.Context, verr *shared.ValidationError, raw string) error {
	if verr.Has("customer_id") {
		return nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		verr.Add("customer_id", partner.MsgCustomerNotFound)
		return nil
	}
	exists, err := r.customers.ExistsByID(ctx, id)
	if err != nil {
		return fmt.Errorf("check customer: %w", err)
	}
	if !exists {
		verr.Add("customer_id", partner.MsgCustomerNotFound)
	}
	return nil
}

package partner

import (
	"context"
	"fmt"

	"github.com/crm/backend/internal/domain/partner"
	"github.com/crm/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CustomerRules validates and normalizes customer requests
type CustomerRules struct {
	customers  partner.CustomerRepository
	categories partner.CustomerCategoryRepository
}

// NewCustomerRules creates a new CustomerRules
func NewCustomerRules(customers partner.CustomerRepository, categories partner.CustomerCategoryRepository) *CustomerRules {
	return &CustomerRules{
		customers:  customers,
		categories: categories,
	}
}

// Build validates a full create payload and returns the new customer
func (r *CustomerRules) Build(ctx context.Context, req CreateCustomerRequest) (*partner.Customer, error) {
	req = req.normalized()
	verr := validateStruct(req)

	if err := r.checkCategory(ctx, verr, req.CustomerCategoryID); err != nil {
		return nil, err
	}
	if err := r.checkReference(ctx, verr, req.Reference, nil); err != nil {
		return nil, err
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	startDate, _ := partner.ParseDate(req.StartDate)
	return partner.NewCustomer(
		req.Name,
		req.Reference,
		uuid.MustParse(req.CustomerCategoryID),
		startDate,
		req.Description,
	), nil
}

// Apply validates the supplied fields of an update payload and merges them into c
func (r *CustomerRules) Apply(ctx context.Context, c *partner.Customer, req UpdateCustomerRequest) error {
	req = req.normalized()
	verr := validateStruct(req)

	if req.CustomerCategoryID != nil {
		if err := r.checkCategory(ctx, verr, *req.CustomerCategoryID); err != nil {
			return err
		}
	}
	if req.Reference != nil {
		if err := r.checkReference(ctx, verr, *req.Reference, &c.ID); err != nil {
			return err
		}
	}
	if err := verr.OrNil(); err != nil {
		return err
	}

	if req.Name != nil {
		c.Rename(*req.Name)
	}
	if req.Reference != nil {
		c.ChangeReference(*req.Reference)
	}
	if req.CustomerCategoryID != nil {
		c.MoveToCategory(uuid.MustParse(*req.CustomerCategoryID))
	}
	if req.StartDate != nil {
		startDate, _ := partner.ParseDate(*req.StartDate)
		c.Reschedule(startDate)
	}
	if req.Description != nil {
		c.Describe(req.Description)
	}
	return nil
}

// checkCategory verifies the category exists once its format passed
func (r *CustomerRules) checkCategory(ctx context.Context, verr *shared.ValidationError, raw string) error {
	if verr.Has("customer_category_id") {
		return nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		verr.Add("customer_category_id", partner.MsgCategoryNotFound)
		return nil
	}
	exists, err := r.categories.ExistsByID(ctx, id)
	if err != nil {
		return fmt.Errorf("check customer category: %w", err)
	}
	if !exists {
		verr.Add("customer_category_id", partner.MsgCategoryNotFound)
	}
	return nil
}

// checkReference verifies the normalized reference is not taken by another customer
func (r *CustomerRules) checkReference(ctx context.Context, verr *shared.ValidationError, reference string, excludeID *uuid.UUID) error {
	if verr.Has("reference") {
		return nil
	}
	taken, err := r.customers.ReferenceExists(ctx, reference, excludeID)
	if err != nil {
		return fmt.Errorf("check customer reference: %w", err)
	}
	if taken {
		verr.Add("reference", partner.MsgReferenceTaken)
	}
	return nil
}

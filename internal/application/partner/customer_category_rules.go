package partner

import (
	"context"
	"fmt"
	"strings"

	"github.com/crm/backend/internal/domain/partner"
	"github.com/crm/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CustomerCategoryRules validates category requests
type CustomerCategoryRules struct {
	categories partner.CustomerCategoryRepository
}

// NewCustomerCategoryRules creates a new CustomerCategoryRules
func NewCustomerCategoryRules(categories partner.CustomerCategoryRepository) *CustomerCategoryRules {
	return &CustomerCategoryRules{categories: categories}
}

// Build validates a create payload and returns the new category
func (r *CustomerCategoryRules) Build(ctx context.Context, req CreateCustomerCategoryRequest) (*partner.CustomerCategory, error) {
	req.Name = strings.TrimSpace(req.Name)
	verr := validateStruct(req)

	if err := r.checkName(ctx, verr, req.Name, nil); err != nil {
		return nil, err
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}
	return partner.NewCustomerCategory(req.Name), nil
}

// Apply validates an update payload and renames the category when a name is supplied
func (r *CustomerCategoryRules) Apply(ctx context.Context, c *partner.CustomerCategory, req UpdateCustomerCategoryRequest) error {
	req.Name = trimmedPtr(req.Name)
	verr := validateStruct(req)

	if req.Name != nil {
		if err := r.checkName(ctx, verr, *req.Name, &c.ID); err != nil {
			return err
		}
	}
	if err := verr.OrNil(); err != nil {
		return err
	}

	if req.Name != nil {
		c.Rename(*req.Name)
	}
	return nil
}

func (r *CustomerCategoryRules) checkName(ctx context.Context, verr *shared.ValidationError, name string, excludeID *uuid.UUID) error {
	if verr.Has("name") {
		return nil
	}
	taken, err := r.categories.NameExists(ctx, name, excludeID)
	if err != nil {
		return fmt.Errorf("check customer category name: %w", err)
	}
	if taken {
		verr.Add("name", partner.MsgNameTaken)
	}
	return nil
}

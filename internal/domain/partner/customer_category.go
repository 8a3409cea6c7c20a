package partner

import (
	"github.com/crm/backend/internal/domain/shared"
)

// CustomerCategory groups customers (for example Gold, Silver, Bronze)
type CustomerCategory struct {
	shared.BaseEntity
	Name string
}

// NewCustomerCategory creates a category with a trimmed name
func NewCustomerCategory(name string) *CustomerCategory {
	return &CustomerCategory{
		BaseEntity: shared.NewBaseEntity(),
		Name:       NormalizeText(name),
	}
}

// Rename changes the category name
func (c *CustomerCategory) Rename(name string) {
	c.Name = NormalizeText(name)
	c.Touch()
}

// ErrCategoryInUse is returned when deleting a category that still has customers
var ErrCategoryInUse = shared.NewDomainError("CATEGORY_IN_USE", "Customer category still has customers assigned")

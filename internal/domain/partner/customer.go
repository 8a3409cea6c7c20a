package partner

import (
	"time"

	"github.com/crm/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// DateLayout is the wire and storage layout of calendar dates
const DateLayout = "2006-01-02"

// Customer is the aggregate root of the partner context.
// Category and Contacts are only populated by an explicit attach step;
// repositories never fill them.
type Customer struct {
	shared.BaseEntity
	Name               string
	Reference          string
	CustomerCategoryID uuid.UUID
	StartDate          time.Time
	Description        *string

	Category *CustomerCategory
	Contacts []Contact
}

// NewCustomer creates a customer from already validated values, applying normalization
func NewCustomer(name, reference string, categoryID uuid.UUID, startDate time.Time, description *string) *Customer {
	c := &Customer{
		BaseEntity:         shared.NewBaseEntity(),
		CustomerCategoryID: categoryID,
		StartDate:          TruncateToDate(startDate),
	}
	c.Rename(name)
	c.ChangeReference(reference)
	c.Describe(description)
	return c
}

// Rename sets the normalized display name
func (c *Customer) Rename(name string) {
	c.Name = NormalizeName(name)
	c.Touch()
}

// ChangeReference sets the normalized reference
func (c *Customer) ChangeReference(reference string) {
	c.Reference = NormalizeReference(reference)
	c.Touch()
}

// MoveToCategory reassigns the customer and drops a stale attached category
func (c *Customer) MoveToCategory(categoryID uuid.UUID) {
	if c.CustomerCategoryID != categoryID {
		c.Category = nil
	}
	c.CustomerCategoryID = categoryID
	c.Touch()
}

// Reschedule changes the start date
func (c *Customer) Reschedule(startDate time.Time) {
	c.StartDate = TruncateToDate(startDate)
	c.Touch()
}

// Describe sets the description; nil or blank clears it
func (c *Customer) Describe(description *string) {
	if description == nil {
		c.Description = nil
	} else if d := NormalizeText(*description); d == "" {
		c.Description = nil
	} else {
		c.Description = &d
	}
	c.Touch()
}

// TruncateToDate drops the time of day, keeping the calendar date in UTC
func TruncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a calendar date given either as YYYY-MM-DD or as an RFC 3339 timestamp
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return TruncateToDate(t), nil
}

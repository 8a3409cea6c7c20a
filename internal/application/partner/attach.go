package partner

import (
	"context"
	"fmt"

	"github.com/crm/backend/internal/domain/partner"
	"github.com/google/uuid"
)

// CustomerAttacher loads the category and contacts of customers with one
// query per relation, whatever the number of customers.
type CustomerAttacher struct {
	categories partner.CustomerCategoryRepository
	contacts   partner.ContactRepository
}

// NewCustomerAttacher creates a new CustomerAttacher
func NewCustomerAttacher(categories partner.CustomerCategoryRepository, contacts partner.ContactRepository) *CustomerAttacher {
	return &CustomerAttacher{
		categories: categories,
		contacts:   contacts,
	}
}

// Attach fills Category and Contacts of every customer
func (a *CustomerAttacher) Attach(ctx context.Context, customers []*partner.Customer) error {
	if len(customers) == 0 {
		return nil
	}

	customerIDs := make([]uuid.UUID, 0, len(customers))
	categoryIDs := uniqueIDs(customers, func(c *partner.Customer) uuid.UUID { return c.CustomerCategoryID })
	for _, c := range customers {
		customerIDs = append(customerIDs, c.ID)
	}

	categories, err := a.categories.FindByIDs(ctx, categoryIDs)
	if err != nil {
		return fmt.Errorf("attach customer categories: %w", err)
	}
	byID := make(map[uuid.UUID]*partner.CustomerCategory, len(categories))
	for i := range categories {
		byID[categories[i].ID] = &categories[i]
	}

	contacts, err := a.contacts.FindByCustomerIDs(ctx, customerIDs)
	if err != nil {
		return fmt.Errorf("attach customer contacts: %w", err)
	}
	byCustomer := make(map[uuid.UUID][]partner.Contact, len(customers))
	for _, contact := range contacts {
		byCustomer[contact.CustomerID] = append(byCustomer[contact.CustomerID], contact)
	}

	for _, c := range customers {
		c.Category = byID[c.CustomerCategoryID]
		c.Contacts = byCustomer[c.ID]
		if c.Contacts == nil {
			c.Contacts = []partner.Contact{}
		}
	}
	return nil
}

// ContactAttacher loads the owning customer of contacts in one query
type ContactAttacher struct {
	customers partner.CustomerRepository
}

// NewContactAttacher creates a new ContactAttacher
func NewContactAttacher(customers partner.CustomerRepository) *ContactAttacher {
	return &ContactAttacher{customers: customers}
}

// Attach fills Customer of every contact
func (a *ContactAttacher) Attach(ctx context.Context, contacts []*partner.Contact) error {
	if len(contacts) == 0 {
		return nil
	}

	ids := uniqueIDs(contacts, func(c *partner.Contact) uuid.UUID { return c.CustomerID })
	customers, err := a.customers.FindByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("attach contact customers: %w", err)
	}
	byID := make(map[uuid.UUID]*partner.Customer, len(customers))
	for i := range customers {
		byID[customers[i].ID] = &customers[i]
	}

	for _, c := range contacts {
		c.Customer = byID[c.CustomerID]
	}
	return nil
}

func uniqueIDs[T any](items []*T, key func(*T) uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(items))
	ids := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		id := key(item)
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}

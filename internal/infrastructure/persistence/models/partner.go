package models

import (
	"time"

	"github.com/crm/backend/internal/domain/partner"
	"github.com/google/uuid"
)

// CustomerCategoryModel is the persistence model for the CustomerCategory domain entity.
type CustomerCategoryModel struct {
	BaseModel
	Name string `gorm:"type:varchar(100);not null;uniqueIndex:idx_customer_categories_name"`
}

// TableName returns the table name for GORM
func (CustomerCategoryModel) TableName() string {
	return "customer_categories"
}

// ToDomain converts the persistence model to a domain CustomerCategory entity.
func (m *CustomerCategoryModel) ToDomain() *partner.CustomerCategory {
	return &partner.CustomerCategory{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
	}
}

// CustomerCategoryModelFromDomain creates a persistence model from a domain CustomerCategory.
func CustomerCategoryModelFromDomain(c *partner.CustomerCategory) *CustomerCategoryModel {
	m := &CustomerCategoryModel{Name: c.Name}
	m.FromDomainBaseEntity(c.BaseEntity)
	return m
}

// CustomerModel is the persistence model for the Customer domain entity.
type CustomerModel struct {
	BaseModel
	Name               string    `gorm:"type:varchar(100);not null;index:idx_customers_name"`
	Reference          string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_customers_reference"`
	CustomerCategoryID uuid.UUID `gorm:"type:uuid;not null;index:idx_customers_category"`
	StartDate          time.Time `gorm:"type:date;not null"`
	Description        *string   `gorm:"type:varchar(500)"`
}

// TableName returns the table name for GORM
func (CustomerModel) TableName() string {
	return "customers"
}

// ToDomain converts the persistence model to a domain Customer entity.
// Relations are left empty.
func (m *CustomerModel) ToDomain() *partner.Customer {
	return &partner.Customer{
		BaseEntity:         m.BaseModel.ToDomain(),
		Name:               m.Name,
		Reference:          m.Reference,
		CustomerCategoryID: m.CustomerCategoryID,
		StartDate:          partner.TruncateToDate(m.StartDate),
		Description:        m.Description,
	}
}

// CustomerModelFromDomain creates a persistence model from a domain Customer.
func CustomerModelFromDomain(c *partner.Customer) *CustomerModel {
	m := &CustomerModel{
		Name:               c.Name,
		Reference:          c.Reference,
		CustomerCategoryID: c.CustomerCategoryID,
		StartDate:          c.StartDate,
		Description:        c.Description,
	}
	m.FromDomainBaseEntity(c.BaseEntity)
	return m
}

// ContactModel is the persistence model for the Contact domain entity.
type ContactModel struct {
	BaseModel
	FirstName  string    `gorm:"type:varchar(255);not null"`
	LastName   string    `gorm:"type:varchar(255);not null"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;index:idx_contacts_customer"`
}

// TableName returns the table name for GORM
func (ContactModel) TableName() string {
	return "contacts"
}

// ToDomain converts the persistence model to a domain Contact entity.
func (m *ContactModel) ToDomain() *partner.Contact {
	return &partner.Contact{
		BaseEntity: m.BaseModel.ToDomain(),
		FirstName:  m.FirstName,
		LastName:   m.LastName,
		CustomerID: m.CustomerID,
	}
}

// ContactModelFromDomain creates a persistence model from a domain Contact.
func ContactModelFromDomain(c *partner.Contact) *ContactModel {
	m := &ContactModel{
		FirstName:  c.FirstName,
		LastName:   c.LastName,
		CustomerID: c.CustomerID,
	}
	m.FromDomainBaseEntity(c.BaseEntity)
	return m
}

// PartnerModels lists the models of the partner context in dependency order
func PartnerModels() []any {
	return []any{
		&CustomerCategoryModel{},
		&CustomerModel{},
		&ContactModel{},
	}
}

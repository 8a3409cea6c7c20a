package models

import (
	"testing"
	"time"

	"github.com/crm/backend/internal/domain/partner"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCustomerModel_RoundTrip(t *testing.T) {
	desc := "key account"
	customer := partner.NewCustomer("Acme", "ACME-1", uuid.New(), time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), &desc)
	customer.Category = partner.NewCustomerCategory("Gold")

	model := CustomerModelFromDomain(customer)
	assert.Equal(t, "customers", model.TableName())
	assert.Equal(t, customer.ID, model.ID)

	back := model.ToDomain()
	assert.Equal(t, customer.Reference, back.Reference)
	assert.Equal(t, customer.StartDate, back.StartDate)
	assert.Equal(t, desc, *back.Description)
	assert.Nil(t, back.Category, "relations are never loaded by the model")
}

func TestCustomerModel_StartDateIsDateOnly(t *testing.T) {
	// drivers may return the date column in the server location
	model := CustomerModel{StartDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.FixedZone("X", 3600))}
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), model.ToDomain().StartDate)
}

func TestContactAndCategoryModels(t *testing.T) {
	contact := partner.NewContact("Ada", "Lovelace", uuid.New())
	cm := ContactModelFromDomain(contact)
	assert.Equal(t, "contacts", cm.TableName())
	assert.Equal(t, contact.CustomerID, cm.ToDomain().CustomerID)

	category := partner.NewCustomerCategory("Gold")
	catm := CustomerCategoryModelFromDomain(category)
	assert.Equal(t, "customer_categories", catm.TableName())
	assert.Equal(t, "Gold", catm.ToDomain().Name)

	assert.Len(t, PartnerModels(), 3)
}

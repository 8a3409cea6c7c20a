package partner

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewContact(t *testing.T) {
	customerID := uuid.New()
	contact := NewContact("  Ada ", " Lovelace", customerID)

	assert.NotEqual(t, uuid.Nil, contact.ID)
	assert.Equal(t, "Ada", contact.FirstName)
	assert.Equal(t, "Lovelace", contact.LastName)
	assert.Equal(t, customerID, contact.CustomerID)
	assert.Nil(t, contact.Customer)
}

func TestContact_Rename(t *testing.T) {
	contact := NewContact("Ada", "Lovelace", uuid.New())

	t.Run("only first name", func(t *testing.T) {
		first := "Augusta "
		contact.Rename(&first, nil)
		assert.Equal(t, "Augusta", contact.FirstName)
		assert.Equal(t, "Lovelace", contact.LastName)
	})

	t.Run("only last name", func(t *testing.T) {
		last := "King"
		contact.Rename(nil, &last)
		assert.Equal(t, "Augusta", contact.FirstName)
		assert.Equal(t, "King", contact.LastName)
	})
}

func TestContact_AssignTo(t *testing.T) {
	contact := NewContact("Ada", "Lovelace", uuid.New())
	contact.Customer = &Customer{Name: "Acme"}

	next := uuid.New()
	contact.AssignTo(next)

	assert.Equal(t, next, contact.CustomerID)
	assert.Nil(t, contact.Customer)
}

package partner

import (
	"context"
	"testing"
	"time"

	"github.com/crm/backend/internal/domain/partner"
	"github.com/crm/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newContactService() (*MockCustomerRepository, *MockContactRepository, *ContactService) {
	customers := new(MockCustomerRepository)
	contacts := new(MockContactRepository)
	svc := NewContactService(Repositories{Customers: customers, Contacts: contacts}, nil, nil)
	return customers, contacts, svc
}

func TestContactService_Create(t *testing.T) {
	ctx := context.Background()
	owner := partner.NewCustomer("Acme", "ACME", uuid.New(), time.Now(), nil)

	t.Run("attaches owning customer", func(t *testing.T) {
		customers, contacts, svc := newContactService()
		customers.On("ExistsByID", ctx, owner.ID).Return(true, nil)
		contacts.On("Create", ctx, mock.AnythingOfType("*partner.Contact")).Return(nil)
		customers.On("FindByIDs", ctx, []uuid.UUID{owner.ID}).Return([]partner.Customer{*owner}, nil)

		contact, err := svc.Create(ctx, CreateContactRequest{
			FirstName:  " Ada",
			LastName:   "Lovelace ",
			CustomerID: owner.ID.String(),
		})
		require.NoError(t, err)
		assert.Equal(t, "Ada", contact.FirstName)
		assert.Equal(t, "Lovelace", contact.LastName)
		require.NotNil(t, contact.Customer)
		assert.Equal(t, "Acme", contact.Customer.Name)
	})

	t.Run("unknown customer", func(t *testing.T) {
		customers, _, svc := newContactService()
		customers.On("ExistsByID", ctx, mock.Anything).Return(false, nil)

		_, err := svc.Create(ctx, CreateContactRequest{FirstName: "Ada", LastName: "Lovelace", CustomerID: uuid.NewString()})
		var verr *shared.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, []string{partner.MsgCustomerNotFound}, verr.Fields["customer_id"])
	})

	t.Run("missing fields", func(t *testing.T) {
		_, _, svc := newContactService()

		_, err := svc.Create(ctx, CreateContactRequest{})
		var verr *shared.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Len(t, verr.Fields, 3)
	})
}

func TestContactService_UpdateKeepsAbsentFields(t *testing.T) {
	ctx := context.Background()
	customers, contacts, svc := newContactService()
	contact := partner.NewContact("Ada", "Lovelace", uuid.New())
	contacts.On("FindByID", ctx, contact.ID).Return(contact, nil)
	contacts.On("Update", ctx, contact).Return(nil)
	customers.On("FindByIDs", ctx, mock.Anything).Return([]partner.Customer{}, nil)

	updated, err := svc.Update(ctx, contact.ID, UpdateContactRequest{LastName: ptr("King")})
	require.NoError(t, err)
	assert.Equal(t, "Ada", updated.FirstName)
	assert.Equal(t, "King", updated.LastName)
	customers.AssertNotCalled(t, "ExistsByID", mock.Anything, mock.Anything)
}

func TestContactService_List(t *testing.T) {
	ctx := context.Background()
	customers, contacts, svc := newContactService()
	ownerID := uuid.New()
	query := partner.ContactQuery{CustomerID: &ownerID}
	contacts.On("FindAll", ctx, query).Return([]partner.Contact{
		*partner.NewContact("Ada", "Lovelace", ownerID),
		*partner.NewContact("Grace", "Hopper", ownerID),
	}, nil)
	customers.On("FindByIDs", ctx, []uuid.UUID{ownerID}).Return([]partner.Customer{}, nil)

	list, err := svc.List(ctx, query)
	require.NoError(t, err)
	assert.Len(t, list, 2)
	customers.AssertNumberOfCalls(t, "FindByIDs", 1)
}

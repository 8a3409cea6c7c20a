package integration

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"

	partnerapp "github.com/crm/backend/internal/application/partner"
	"github.com/crm/backend/internal/domain/partner"
	"github.com/crm/backend/internal/domain/shared"
	"github.com/crm/backend/internal/infrastructure/persistence"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	code := m.Run()
	CleanupSharedContainer()
	os.Exit(code)
}

type partnerServices struct {
	customers  *partnerapp.CustomerService
	categories *partnerapp.CustomerCategoryService
	contacts   *partnerapp.ContactService
}

func newPartnerServices(tdb *TestDB) partnerServices {
	repos := partnerapp.Repositories{
		Customers:  persistence.NewGormCustomerRepository(tdb.DB),
		Categories: persistence.NewGormCustomerCategoryRepository(tdb.DB),
		Contacts:   persistence.NewGormContactRepository(tdb.DB),
	}
	logger := zap.NewNop()
	return partnerServices{
		customers:  partnerapp.NewCustomerService(repos, nil, logger),
		categories: partnerapp.NewCustomerCategoryService(repos, nil, logger),
		contacts:   partnerapp.NewContactService(repos, nil, logger),
	}
}

func TestSeededCategories(t *testing.T) {
	tdb := NewSharedTestDB(t)
	svc := newPartnerServices(tdb)

	categories, err := svc.categories.List(context.Background(), shared.NoFilter{})
	require.NoError(t, err)

	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, c.Name)
	}
	assert.Subset(t, names, []string{"Gold", "Silver", "Bronze"})
}

func TestCustomerLifecycle_Postgres(t *testing.T) {
	tdb := NewSharedTestDB(t)
	t.Cleanup(tdb.CleanTables)
	svc := newPartnerServices(tdb)
	ctx := context.Background()

	category, err := svc.categories.Create(ctx, partnerapp.CreateCustomerCategoryRequest{Name: "Wholesale"})
	require.NoError(t, err)

	customer, err := svc.customers.Create(ctx, partnerapp.CreateCustomerRequest{
		Name:               " ada   lovelace ",
		Reference:          "ada-001",
		CustomerCategoryID: category.ID.String(),
		StartDate:          "2024-01-01",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", customer.Name)
	assert.Equal(t, "ADA-001", customer.Reference)

	t.Run("duplicate reference differing only in case", func(t *testing.T) {
		_, err := svc.customers.Create(ctx, partnerapp.CreateCustomerRequest{
			Name:               "Charles Babbage",
			Reference:          "Ada-001",
			CustomerCategoryID: category.ID.String(),
			StartDate:          "2024-01-01",
		})
		var verr *shared.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "reference")
	})

	t.Run("search through contacts returns the customer once", func(t *testing.T) {
		for _, first := range []string{"Augusta", "Ada"} {
			_, err := svc.contacts.Create(ctx, partnerapp.CreateContactRequest{
				FirstName:  first,
				LastName:   "King",
				CustomerID: customer.ID.String(),
			})
			require.NoError(t, err)
		}

		found, err := svc.customers.List(ctx, partner.CustomerQuery{Search: "king"})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, customer.ID, found[0].ID)
		assert.Len(t, found[0].Contacts, 2)
		require.NotNil(t, found[0].Category)
		assert.Equal(t, "Wholesale", found[0].Category.Name)
	})

	t.Run("search treats wildcards literally", func(t *testing.T) {
		found, err := svc.customers.List(ctx, partner.CustomerQuery{Search: "%"})
		require.NoError(t, err)
		assert.Empty(t, found)
	})

	t.Run("category with customers cannot be deleted", func(t *testing.T) {
		err := svc.categories.Delete(ctx, category.ID)
		assert.True(t, errors.Is(err, partner.ErrCategoryInUse))
	})

	t.Run("deleting the customer removes its contacts", func(t *testing.T) {
		require.NoError(t, svc.customers.Delete(ctx, customer.ID))

		contacts, err := svc.contacts.List(ctx, partner.ContactQuery{})
		require.NoError(t, err)
		assert.Empty(t, contacts)

		_, err = svc.customers.Show(ctx, customer.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)

		require.NoError(t, svc.categories.Delete(ctx, category.ID))
	})
}

func TestConcurrentDuplicateReference(t *testing.T) {
	tdb := NewTestDB(t)
	svc := newPartnerServices(tdb)
	ctx := context.Background()

	category, err := svc.categories.Create(ctx, partnerapp.CreateCustomerCategoryRequest{Name: "Race"})
	require.NoError(t, err)

	const workers = 8
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created []uuid.UUID
		errs    []error
	)
	start := make(chan struct{})
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			// every worker normalizes to the same reference
			ref := "race-001"
			if i%2 == 0 {
				ref = " RACE-001 "
			}
			c, err := svc.customers.Create(ctx, partnerapp.CreateCustomerRequest{
				Name:               "Grace Hopper",
				Reference:          ref,
				CustomerCategoryID: category.ID.String(),
				StartDate:          "2024-03-01",
			})
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, err)
				return
			}
			created = append(created, c.ID)
		}(i)
	}
	close(start)
	wg.Wait()

	require.Len(t, created, 1)
	require.Len(t, errs, workers-1)
	for _, err := range errs {
		var verr *shared.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, []string{partner.MsgReferenceTaken}, verr.Fields["reference"])
	}
}

func TestForeignKeyRestrict(t *testing.T) {
	tdb := NewSharedTestDB(t)
	t.Cleanup(tdb.CleanTables)
	ctx := context.Background()

	categories := persistence.NewGormCustomerCategoryRepository(tdb.DB)
	customers := persistence.NewGormCustomerRepository(tdb.DB)

	category := partner.NewCustomerCategory("Restricted")
	require.NoError(t, categories.Create(ctx, category))

	customer := partner.NewCustomer("Alan Turing", "TUR-001", category.ID, partner.TruncateToDate(category.CreatedAt), nil)
	require.NoError(t, customers.Create(ctx, customer))

	// bypass the repository check and let the constraint reject the delete
	err := tdb.DB.Exec("DELETE FROM customer_categories WHERE id = ?", category.ID).Error
	require.Error(t, err)

	unknown := partner.NewCustomer("Alan Turing", "TUR-002", uuid.New(), partner.TruncateToDate(category.CreatedAt), nil)
	err = customers.Create(ctx, unknown)
	var verr *shared.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "customer_category_id")
}

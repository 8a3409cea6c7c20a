package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/crm/backend/internal/domain/partner"
	"github.com/crm/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDate = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// setupPartnerTestDB opens an in-memory SQLite database with the partner tables
func setupPartnerTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Discard,
		TranslateError: true,
	})
	require.NoError(t, err)

	// every pooled connection would otherwise get its own empty in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(models.PartnerModels()...))
	return db
}

type partnerFixture struct {
	customers  *GormCustomerRepository
	categories *GormCustomerCategoryRepository
	contacts   *GormContactRepository
}

func newPartnerFixture(t *testing.T) *partnerFixture {
	db := setupPartnerTestDB(t)
	return &partnerFixture{
		customers:  NewGormCustomerRepository(db),
		categories: NewGormCustomerCategoryRepository(db),
		contacts:   NewGormContactRepository(db),
	}
}

func (f *partnerFixture) category(t *testing.T, name string) *partner.CustomerCategory {
	t.Helper()
	c := partner.NewCustomerCategory(name)
	require.NoError(t, f.categories.Create(context.Background(), c))
	return c
}

func (f *partnerFixture) customer(t *testing.T, name, reference string, categoryID uuid.UUID) *partner.Customer {
	t.Helper()
	c := partner.NewCustomer(name, reference, categoryID, testDate, nil)
	require.NoError(t, f.customers.Create(context.Background(), c))
	return c
}

func (f *partnerFixture) contact(t *testing.T, first, last string, customerID uuid.UUID) *partner.Contact {
	t.Helper()
	c := partner.NewContact(first, last, customerID)
	require.NoError(t, f.contacts.Create(context.Background(), c))
	return c
}

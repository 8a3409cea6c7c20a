package partner

import (
	"context"

	"github.com/crm/backend/internal/domain/partner"
	"github.com/crm/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// =============================================================================
// Mock Repositories
// =============================================================================

// MockCustomerRepository is a mock implementation of CustomerRepository
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindAll(ctx context.Context, filter partner.CustomerQuery) ([]partner.Customer, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]partner.Customer, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Create(ctx context.Context, customer *partner.Customer) error {
	return m.Called(ctx, customer).Error(0)
}

func (m *MockCustomerRepository) Update(ctx context.Context, customer *partner.Customer) error {
	return m.Called(ctx, customer).Error(0)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCustomerRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCustomerRepository) ReferenceExists(ctx context.Context, reference string, excludeID *uuid.UUID) (bool, error) {
	args := m.Called(ctx, reference, excludeID)
	return args.Bool(0), args.Error(1)
}

// MockCustomerCategoryRepository is a mock implementation of CustomerCategoryRepository
type MockCustomerCategoryRepository struct {
	mock.Mock
}

func (m *MockCustomerCategoryRepository) FindAll(ctx context.Context, filter shared.NoFilter) ([]partner.CustomerCategory, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]partner.CustomerCategory), args.Error(1)
}

func (m *MockCustomerCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.CustomerCategory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.CustomerCategory), args.Error(1)
}

func (m *MockCustomerCategoryRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]partner.CustomerCategory, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]partner.CustomerCategory), args.Error(1)
}

func (m *MockCustomerCategoryRepository) Create(ctx context.Context, category *partner.CustomerCategory) error {
	return m.Called(ctx, category).Error(0)
}

func (m *MockCustomerCategoryRepository) Update(ctx context.Context, category *partner.CustomerCategory) error {
	return m.Called(ctx, category).Error(0)
}

func (m *MockCustomerCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCustomerCategoryRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCustomerCategoryRepository) NameExists(ctx context.Context, name string, excludeID *uuid.UUID) (bool, error) {
	args := m.Called(ctx, name, excludeID)
	return args.Bool(0), args.Error(1)
}

// MockContactRepository is a mock implementation of ContactRepository
type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) FindAll(ctx context.Context, filter partner.ContactQuery) ([]partner.Contact, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]partner.Contact), args.Error(1)
}

func (m *MockContactRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Contact, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Contact), args.Error(1)
}

func (m *MockContactRepository) FindByCustomerIDs(ctx context.Context, customerIDs []uuid.UUID) ([]partner.Contact, error) {
	args := m.Called(ctx, customerIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]partner.Contact), args.Error(1)
}

func (m *MockContactRepository) Create(ctx context.Context, contact *partner.Contact) error {
	return m.Called(ctx, contact).Error(0)
}

func (m *MockContactRepository) Update(ctx context.Context, contact *partner.Contact) error {
	return m.Called(ctx, contact).Error(0)
}

func (m *MockContactRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func ptr[T any](v T) *T {
	return &v
}

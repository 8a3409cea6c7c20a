package partner

import (
	"github.com/crm/backend/internal/application/resource"
	"github.com/crm/backend/internal/domain/partner"
	"github.com/crm/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// CustomerService handles customer operations
type CustomerService = resource.Service[partner.Customer, partner.CustomerQuery, CreateCustomerRequest, UpdateCustomerRequest]

// CustomerCategoryService handles customer category operations
type CustomerCategoryService = resource.Service[partner.CustomerCategory, shared.NoFilter, CreateCustomerCategoryRequest, UpdateCustomerCategoryRequest]

// ContactService handles contact operations
type ContactService = resource.Service[partner.Contact, partner.ContactQuery, CreateContactRequest, UpdateContactRequest]

// Repositories groups the stores of the partner context
type Repositories struct {
	Customers  partner.CustomerRepository
	Categories partner.CustomerCategoryRepository
	Contacts   partner.ContactRepository
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(repos Repositories, recorder resource.Recorder, logger *zap.Logger) *CustomerService {
	return resource.NewService(resource.Config[partner.Customer, partner.CustomerQuery, CreateCustomerRequest, UpdateCustomerRequest]{
		Name:     "customer",
		Store:    repos.Customers,
		Rules:    NewCustomerRules(repos.Customers, repos.Categories),
		Attacher: NewCustomerAttacher(repos.Categories, repos.Contacts),
		Recorder: recorder,
		Logger:   logger,
	})
}

// NewCustomerCategoryService creates a new CustomerCategoryService
func NewCustomerCategoryService(repos Repositories, recorder resource.Recorder, logger *zap.Logger) *CustomerCategoryService {
	return resource.NewService(resource.Config[partner.CustomerCategory, shared.NoFilter, CreateCustomerCategoryRequest, UpdateCustomerCategoryRequest]{
		Name:     "customer category",
		Store:    repos.Categories,
		Rules:    NewCustomerCategoryRules(repos.Categories),
		Recorder: recorder,
		Logger:   logger,
	})
}

// NewContactService creates a new ContactService
func NewContactService(repos Repositories, recorder resource.Recorder, logger *zap.Logger) *ContactService {
	return resource.NewService(resource.Config[partner.Contact, partner.ContactQuery, CreateContactRequest, UpdateContactRequest]{
		Name:     "contact",
		Store:    repos.Contacts,
		Rules:    NewContactRules(repos.Customers),
		Attacher: NewContactAttacher(repos.Customers),
		Recorder: recorder,
		Logger:   logger,
	})
}

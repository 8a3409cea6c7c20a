package persistence

import (
	"context"
	"errors"

	"github.com/crm/backend/internal/domain/partner"
	"github.com/crm/backend/internal/domain/shared"
	"github.com/crm/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormContactRepository implements ContactRepository using GORM
type GormContactRepository struct {
	db *gorm.DB
}

// NewGormContactRepository creates a new GormContactRepository
func NewGormContactRepository(db *gorm.DB) *GormContactRepository {
	return &GormContactRepository{db: db}
}

// FindAll returns the contacts matching q
func (r *GormContactRepository) FindAll(ctx context.Context, q partner.ContactQuery) ([]partner.Contact, error) {
	var contactModels []models.ContactModel
	if err := r.db.WithContext(ctx).
		Scopes(ContactQueryScope(q)).
		Find(&contactModels).Error; err != nil {
		return nil, err
	}
	return contactsToDomain(contactModels), nil
}

// FindByID finds a contact by its ID
func (r *GormContactRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Contact, error) {
	var model models.ContactModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByCustomerIDs returns the contacts of all given customers
func (r *GormContactRepository) FindByCustomerIDs(ctx context.Context, customerIDs []uuid.UUID) ([]partner.Contact, error) {
	if len(customerIDs) == 0 {
		return []partner.Contact{}, nil
	}
	var contactModels []models.ContactModel
	if err := r.db.WithContext(ctx).
		Where("contacts.customer_id IN ?", customerIDs).
		Scopes(contactOrder).
		Find(&contactModels).Error; err != nil {
		return nil, err
	}
	return contactsToDomain(contactModels), nil
}

// Create inserts a new contact
func (r *GormContactRepository) Create(ctx context.Context, contact *partner.Contact) error {
	model := models.ContactModelFromDomain(contact)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return translateContactError(err)
	}
	return nil
}

// Update writes every column of an existing contact
func (r *GormContactRepository) Update(ctx context.Context, contact *partner.Contact) error {
	model := models.ContactModelFromDomain(contact)
	result := r.db.WithContext(ctx).
		Model(model).
		Select("first_name", "last_name", "customer_id", "updated_at").
		Updates(model)
	if result.Error != nil {
		return translateContactError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete deletes a contact
func (r *GormContactRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.ContactModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func translateContactError(err error) error {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return shared.FieldError("customer_id", partner.MsgCustomerNotFound)
	}
	return err
}

func contactsToDomain(contactModels []models.ContactModel) []partner.Contact {
	contacts := make([]partner.Contact, len(contactModels))
	for i := range contactModels {
		contacts[i] = *contactModels[i].ToDomain()
	}
	return contacts
}

// Ensure GormContactRepository implements ContactRepository
var _ partner.ContactRepository = (*GormContactRepository)(nil)

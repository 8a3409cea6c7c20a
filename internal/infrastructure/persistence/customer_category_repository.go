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

// GormCustomerCategoryRepository implements CustomerCategoryRepository using GORM
type GormCustomerCategoryRepository struct {
	db *gorm.DB
}

// NewGormCustomerCategoryRepository creates a new GormCustomerCategoryRepository
func NewGormCustomerCategoryRepository(db *gorm.DB) *GormCustomerCategoryRepository {
	return &GormCustomerCategoryRepository{db: db}
}

// FindAll returns every category ordered by name
func (r *GormCustomerCategoryRepository) FindAll(ctx context.Context, _ shared.NoFilter) ([]partner.CustomerCategory, error) {
	var categoryModels []models.CustomerCategoryModel
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Order("id ASC").
		Find(&categoryModels).Error; err != nil {
		return nil, err
	}
	return categoriesToDomain(categoryModels), nil
}

// FindByID finds a category by its ID
func (r *GormCustomerCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.CustomerCategory, error) {
	var model models.CustomerCategoryModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDs finds multiple categories by their IDs
func (r *GormCustomerCategoryRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]partner.CustomerCategory, error) {
	if len(ids) == 0 {
		return []partner.CustomerCategory{}, nil
	}
	var categoryModels []models.CustomerCategoryModel
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&categoryModels).Error; err != nil {
		return nil, err
	}
	return categoriesToDomain(categoryModels), nil
}

// Create inserts a new category
func (r *GormCustomerCategoryRepository) Create(ctx context.Context, category *partner.CustomerCategory) error {
	model := models.CustomerCategoryModelFromDomain(category)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return translateCategoryError(err)
	}
	return nil
}

// Update writes the name of an existing category
func (r *GormCustomerCategoryRepository) Update(ctx context.Context, category *partner.CustomerCategory) error {
	model := models.CustomerCategoryModelFromDomain(category)
	result := r.db.WithContext(ctx).
		Model(model).
		Select("name", "updated_at").
		Updates(model)
	if result.Error != nil {
		return translateCategoryError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete deletes a category that no customer belongs to
func (r *GormCustomerCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var inUse int64
		if err := tx.Model(&models.CustomerModel{}).
			Where("customer_category_id = ?", id).
			Count(&inUse).Error; err != nil {
			return err
		}
		if inUse > 0 {
			return partner.ErrCategoryInUse
		}

		result := tx.Delete(&models.CustomerCategoryModel{}, "id = ?", id)
		if result.Error != nil {
			return translateCategoryError(result.Error)
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// ExistsByID checks if a category exists
func (r *GormCustomerCategoryRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.CustomerCategoryModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// NameExists checks case-insensitively if a name is used by a category other than excludeID
func (r *GormCustomerCategoryRepository) NameExists(ctx context.Context, name string, excludeID *uuid.UUID) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).
		Model(&models.CustomerCategoryModel{}).
		Where("LOWER(name) = LOWER(?)", name)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func translateCategoryError(err error) error {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return shared.FieldError("name", partner.MsgNameTaken)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return partner.ErrCategoryInUse
	default:
		return err
	}
}

func categoriesToDomain(categoryModels []models.CustomerCategoryModel) []partner.CustomerCategory {
	categories := make([]partner.CustomerCategory, len(categoryModels))
	for i := range categoryModels {
		categories[i] = *categoryModels[i].ToDomain()
	}
	return categories
}

// Ensure GormCustomerCategoryRepository implements CustomerCategoryRepository
var _ partner.CustomerCategoryRepository = (*GormCustomerCategoryRepository)(nil)

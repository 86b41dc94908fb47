package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lifetrack/backend/internal/application/adapter"
	"github.com/lifetrack/backend/internal/domain/entity"
	domainerror "github.com/lifetrack/backend/internal/domain/error"
	"github.com/lifetrack/backend/internal/integration/persistence/model"
)

// expenseCategoryRepository implements the adapter.ExpenseCategoryRepository interface.
type expenseCategoryRepository struct {
	db *gorm.DB
}

// NewExpenseCategoryRepository creates a new expense category repository instance.
func NewExpenseCategoryRepository(db *gorm.DB) adapter.ExpenseCategoryRepository {
	return &expenseCategoryRepository{
		db: db,
	}
}

// Create creates a new expense category in the database.
func (r *expenseCategoryRepository) Create(ctx context.Context, category *entity.ExpenseCategory) error {
	categoryModel := model.ExpenseCategoryFromEntity(category)
	result := r.db.WithContext(ctx).Create(categoryModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves an expense category by its ID.
func (r *expenseCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ExpenseCategory, error) {
	var categoryModel model.ExpenseCategoryModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&categoryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrExpenseCategoryNotFound
		}
		return nil, result.Error
	}
	return categoryModel.ToEntity(), nil
}

// FindByFinancesID retrieves all expense categories for a finances aggregate.
func (r *expenseCategoryRepository) FindByFinancesID(ctx context.Context, financesID uuid.UUID) ([]*entity.ExpenseCategory, error) {
	var categoryModels []model.ExpenseCategoryModel
	result := r.db.WithContext(ctx).
		Where("finances_id = ?", financesID).
		Order("created_at ASC").
		Find(&categoryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	categories := make([]*entity.ExpenseCategory, len(categoryModels))
	for i, cm := range categoryModels {
		categories[i] = cm.ToEntity()
	}
	return categories, nil
}

// Update updates an existing expense category in the database.
func (r *expenseCategoryRepository) Update(ctx context.Context, category *entity.ExpenseCategory) error {
	categoryModel := model.ExpenseCategoryFromEntity(category)
	result := r.db.WithContext(ctx).Save(categoryModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes an expense category from the database.
func (r *expenseCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.ExpenseCategoryModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

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

// financialGoalRepository implements the adapter.FinancialGoalRepository interface.
type financialGoalRepository struct {
	db *gorm.DB
}

// NewFinancialGoalRepository creates a new financial goal repository instance.
func NewFinancialGoalRepository(db *gorm.DB) adapter.FinancialGoalRepository {
	return &financialGoalRepository{
		db: db,
	}
}

// Create creates a new financial goal in the database.
func (r *financialGoalRepository) Create(ctx context.Context, goal *entity.FinancialGoal) error {
	goalModel := model.FinancialGoalFromEntity(goal)
	result := r.db.WithContext(ctx).Create(goalModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a financial goal by its ID.
func (r *financialGoalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.FinancialGoal, error) {
	var goalModel model.FinancialGoalModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&goalModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrFinancialGoalNotFound
		}
		return nil, result.Error
	}
	return goalModel.ToEntity(), nil
}

// FindByFinancesID retrieves all financial goals for a finances aggregate.
func (r *financialGoalRepository) FindByFinancesID(ctx context.Context, financesID uuid.UUID) ([]*entity.FinancialGoal, error) {
	var goalModels []model.FinancialGoalModel
	result := r.db.WithContext(ctx).
		Where("finances_id = ?", financesID).
		Order("created_at ASC").
		Find(&goalModels)
	if result.Error != nil {
		return nil, result.Error
	}

	goals := make([]*entity.FinancialGoal, len(goalModels))
	for i, gm := range goalModels {
		goals[i] = gm.ToEntity()
	}
	return goals, nil
}

// Update updates an existing financial goal in the database.
func (r *financialGoalRepository) Update(ctx context.Context, goal *entity.FinancialGoal) error {
	goalModel := model.FinancialGoalFromEntity(goal)
	result := r.db.WithContext(ctx).Save(goalModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a financial goal from the database.
func (r *financialGoalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.FinancialGoalModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

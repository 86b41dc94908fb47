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

// financesRepository implements the adapter.FinancesRepository interface.
type financesRepository struct {
	db *gorm.DB
}

// NewFinancesRepository creates a new finances repository instance.
func NewFinancesRepository(db *gorm.DB) adapter.FinancesRepository {
	return &financesRepository{
		db: db,
	}
}

// Create creates a new finances aggregate in the database.
func (r *financesRepository) Create(ctx context.Context, finances *entity.Finances) error {
	financesModel := model.FinancesFromEntity(finances)
	result := r.db.WithContext(ctx).Create(financesModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a finances aggregate by its ID.
func (r *financesRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Finances, error) {
	var financesModel model.FinancesModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&financesModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrFinancesNotFound
		}
		return nil, result.Error
	}
	return financesModel.ToEntity(), nil
}

// FindByUserID retrieves the finances aggregate for a given user.
func (r *financesRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Finances, error) {
	var financesModel model.FinancesModel
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&financesModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrFinancesNotFound
		}
		return nil, result.Error
	}
	return financesModel.ToEntity(), nil
}

// Update updates an existing finances aggregate in the database.
func (r *financesRepository) Update(ctx context.Context, finances *entity.Finances) error {
	financesModel := model.FinancesFromEntity(finances)
	result := r.db.WithContext(ctx).Save(financesModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

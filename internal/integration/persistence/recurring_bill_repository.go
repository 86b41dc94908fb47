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

// recurringBillRepository implements the adapter.RecurringBillRepository interface.
type recurringBillRepository struct {
	db *gorm.DB
}

// NewRecurringBillRepository creates a new recurring bill repository instance.
func NewRecurringBillRepository(db *gorm.DB) adapter.RecurringBillRepository {
	return &recurringBillRepository{
		db: db,
	}
}

// Create creates a new recurring bill in the database.
func (r *recurringBillRepository) Create(ctx context.Context, bill *entity.RecurringBill) error {
	billModel := model.RecurringBillFromEntity(bill)
	result := r.db.WithContext(ctx).Create(billModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a recurring bill by its ID.
func (r *recurringBillRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.RecurringBill, error) {
	var billModel model.RecurringBillModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&billModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrBillNotFound
		}
		return nil, result.Error
	}
	return billModel.ToEntity(), nil
}

// FindByFinancesID retrieves all recurring bills for a finances aggregate.
func (r *recurringBillRepository) FindByFinancesID(ctx context.Context, financesID uuid.UUID) ([]*entity.RecurringBill, error) {
	var billModels []model.RecurringBillModel
	result := r.db.WithContext(ctx).
		Where("finances_id = ?", financesID).
		Order("next_due_date ASC").
		Find(&billModels)
	if result.Error != nil {
		return nil, result.Error
	}

	bills := make([]*entity.RecurringBill, len(billModels))
	for i, bm := range billModels {
		bills[i] = bm.ToEntity()
	}
	return bills, nil
}

// FindAll retrieves every recurring bill ordered by due date.
func (r *recurringBillRepository) FindAll(ctx context.Context) ([]*entity.RecurringBill, error) {
	var billModels []model.RecurringBillModel
	result := r.db.WithContext(ctx).Order("next_due_date ASC").Find(&billModels)
	if result.Error != nil {
		return nil, result.Error
	}

	bills := make([]*entity.RecurringBill, len(billModels))
	for i, bm := range billModels {
		bills[i] = bm.ToEntity()
	}
	return bills, nil
}

// Update updates an existing recurring bill in the database.
func (r *recurringBillRepository) Update(ctx context.Context, bill *entity.RecurringBill) error {
	billModel := model.RecurringBillFromEntity(bill)
	result := r.db.WithContext(ctx).Save(billModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a recurring bill from the database.
func (r *recurringBillRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.RecurringBillModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

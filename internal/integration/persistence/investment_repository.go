// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/fintrack/backend/internal/application/adapter"
	"github.com/fintrack/backend/internal/domain/entity"
	domainerror "github.com/fintrack/backend/internal/domain/error"
	"github.com/fintrack/backend/internal/integration/persistence/model"
)

// investmentRepository implements the adapter.InvestmentRepository interface.
type investmentRepository struct {
	db *gorm.DB
}

// NewInvestmentRepository creates a new investment repository instance.
func NewInvestmentRepository(db *gorm.DB) adapter.InvestmentRepository {
	return &investmentRepository{
		db: db,
	}
}

// Create creates a new investment in the database.
func (r *investmentRepository) Create(ctx context.Context, investment *entity.Investment) error {
	investmentModel := model.InvestmentFromEntity(investment)
	result := r.db.WithContext(ctx).Create(investmentModel)
	return result.Error
}

// FindByID retrieves an investment by its ID.
func (r *investmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Investment, error) {
	var investmentModel model.InvestmentModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&investmentModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrEntryNotFound
		}
		return nil, result.Error
	}
	return investmentModel.ToEntity(), nil
}

// FindByUser retrieves all investments for a given user, newest first.
func (r *investmentRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Investment, error) {
	var investmentModels []model.InvestmentModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC, created_at DESC").
		Find(&investmentModels)
	if result.Error != nil {
		return nil, result.Error
	}

	investments := make([]*entity.Investment, len(investmentModels))
	for i, im := range investmentModels {
		investments[i] = im.ToEntity()
	}
	return investments, nil
}

// Update updates an existing investment in the database.
func (r *investmentRepository) Update(ctx context.Context, investment *entity.Investment) error {
	investmentModel := model.InvestmentFromEntity(investment)
	result := r.db.WithContext(ctx).Save(investmentModel)
	return result.Error
}

// Delete removes an investment from the database. This is a hard delete.
func (r *investmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.InvestmentModel{}, "id = ?", id)
	return result.Error
}

// SumAmountByUser totals all invested amounts for a given user.
func (r *investmentRepository) SumAmountByUser(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	var total decimal.Decimal
	result := r.db.WithContext(ctx).
		Model(&model.InvestmentModel{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id = ?", userID).
		Scan(&total)
	if result.Error != nil {
		return decimal.Zero, result.Error
	}
	return total, nil
}

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

// subscriptionRepository implements the adapter.SubscriptionRepository interface.
type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository creates a new subscription repository instance.
func NewSubscriptionRepository(db *gorm.DB) adapter.SubscriptionRepository {
	return &subscriptionRepository{
		db: db,
	}
}

// Create creates a new subscription in the database.
func (r *subscriptionRepository) Create(ctx context.Context, subscription *entity.Subscription) error {
	subscriptionModel := model.SubscriptionFromEntity(subscription)
	result := r.db.WithContext(ctx).Create(subscriptionModel)
	return result.Error
}

// FindByID retrieves a subscription by its ID.
func (r *subscriptionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Subscription, error) {
	var subscriptionModel model.SubscriptionModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&subscriptionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrEntryNotFound
		}
		return nil, result.Error
	}
	return subscriptionModel.ToEntity(), nil
}

// FindByUser retrieves all subscriptions for a given user, newest start date first.
func (r *subscriptionRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Subscription, error) {
	var subscriptionModels []model.SubscriptionModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("start_date DESC, created_at DESC").
		Find(&subscriptionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	subscriptions := make([]*entity.Subscription, len(subscriptionModels))
	for i, sm := range subscriptionModels {
		subscriptions[i] = sm.ToEntity()
	}
	return subscriptions, nil
}

// Update updates an existing subscription in the database.
func (r *subscriptionRepository) Update(ctx context.Context, subscription *entity.Subscription) error {
	subscriptionModel := model.SubscriptionFromEntity(subscription)
	result := r.db.WithContext(ctx).Save(subscriptionModel)
	return result.Error
}

// Delete removes a subscription from the database. This is a hard delete.
func (r *subscriptionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.SubscriptionModel{}, "id = ?", id)
	return result.Error
}

// SumAmountByUser totals all subscription amounts for a given user.
func (r *subscriptionRepository) SumAmountByUser(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	var total decimal.Decimal
	result := r.db.WithContext(ctx).
		Model(&model.SubscriptionModel{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id = ?", userID).
		Scan(&total)
	if result.Error != nil {
		return decimal.Zero, result.Error
	}
	return total, nil
}

// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintrack/backend/internal/domain/entity"
)

// SubscriptionRepository defines the interface for subscription persistence operations.
type SubscriptionRepository interface {
	// Create creates a new subscription in the database.
	Create(ctx context.Context, subscription *entity.Subscription) error

	// FindByID retrieves a subscription by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Subscription, error)

	// FindByUser retrieves all subscriptions owned by a user,
	// ordered by start date descending.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Subscription, error)

	// Update replaces an existing subscription in the database.
	Update(ctx context.Context, subscription *entity.Subscription) error

	// Delete hard-deletes a subscription from the database.
	Delete(ctx context.Context, id uuid.UUID) error

	// SumAmountByUser returns the sum of amounts across a user's subscriptions.
	SumAmountByUser(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error)
}

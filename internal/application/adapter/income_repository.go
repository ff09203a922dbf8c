// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintrack/backend/internal/domain/entity"
)

// IncomeRepository defines the interface for income persistence operations.
type IncomeRepository interface {
	// Create creates a new income entry in the database.
	Create(ctx context.Context, income *entity.Income) error

	// FindByID retrieves an income entry by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Income, error)

	// FindByUser retrieves all income entries owned by a user,
	// ordered by date descending.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Income, error)

	// Update replaces an existing income entry in the database.
	Update(ctx context.Context, income *entity.Income) error

	// Delete hard-deletes an income entry from the database.
	Delete(ctx context.Context, id uuid.UUID) error

	// SumAmountByUser returns the sum of amounts across a user's income entries.
	SumAmountByUser(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error)
}

// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintrack/backend/internal/domain/entity"
)

// InvestmentRepository defines the interface for investment persistence operations.
type InvestmentRepository interface {
	// Create creates a new investment entry in the database.
	Create(ctx context.Context, investment *entity.Investment) error

	// FindByID retrieves an investment entry by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Investment, error)

	// FindByUser retrieves all investment entries owned by a user,
	// ordered by date descending.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Investment, error)

	// Update replaces an existing investment entry in the database.
	Update(ctx context.Context, investment *entity.Investment) error

	// Delete hard-deletes an investment entry from the database.
	Delete(ctx context.Context, id uuid.UUID) error

	// SumAmountByUser returns the sum of amounts across a user's investment entries.
	SumAmountByUser(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error)
}

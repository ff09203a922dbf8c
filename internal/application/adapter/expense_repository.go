// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintrack/backend/internal/domain/entity"
)

// ExpenseRepository defines the interface for expense persistence operations.
type ExpenseRepository interface {
	// Create creates a new expense entry in the database.
	Create(ctx context.Context, expense *entity.Expense) error

	// FindByID retrieves an expense entry by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error)

	// FindByUser retrieves all expense entries owned by a user,
	// ordered by date descending.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Expense, error)

	// Update replaces an existing expense entry in the database.
	Update(ctx context.Context, expense *entity.Expense) error

	// Delete hard-deletes an expense entry from the database.
	Delete(ctx context.Context, id uuid.UUID) error

	// SumAmountByUser returns the sum of amounts across a user's expense entries.
	SumAmountByUser(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error)
}

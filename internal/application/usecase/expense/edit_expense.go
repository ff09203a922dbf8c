// Package expense contains expense entry use cases.
package expense

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintrack/backend/internal/application/adapter"
	"github.com/fintrack/backend/internal/domain/entity"
	domainerror "github.com/fintrack/backend/internal/domain/error"
)

// EditExpenseInput represents the input for an expense edit.
// Edits are full-field replacements of the stored row.
type EditExpenseInput struct {
	ExpenseID   uuid.UUID
	UserID      uuid.UUID
	Amount      decimal.Decimal
	Category    entity.ExpenseCategory
	PaidVia     entity.PaymentMethod
	Description string
	Date        time.Time
}

// EditExpenseOutput represents the output of an expense edit.
type EditExpenseOutput struct {
	Expense *entity.Expense
}

// EditExpenseUseCase handles expense edit logic.
type EditExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewEditExpenseUseCase creates a new EditExpenseUseCase instance.
func NewEditExpenseUseCase(expenseRepo adapter.ExpenseRepository) *EditExpenseUseCase {
	return &EditExpenseUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute performs the expense edit.
func (uc *EditExpenseUseCase) Execute(ctx context.Context, input EditExpenseInput) (*EditExpenseOutput, error) {
	expense, err := uc.expenseRepo.FindByID(ctx, input.ExpenseID)
	if err != nil {
		if errors.Is(err, domainerror.ErrEntryNotFound) {
			return nil, domainerror.NewEntryError(
				domainerror.ErrCodeEntryNotFound,
				"expense not found",
				domainerror.ErrEntryNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find expense: %w", err)
	}

	// Ownership is checked before any write is issued.
	if expense.UserID != input.UserID {
		return nil, domainerror.NewEntryError(
			domainerror.ErrCodeNotEntryOwner,
			"not authorized to update this expense",
			domainerror.ErrNotEntryOwner,
		)
	}

	if err := validateExpenseFields(input.Amount, input.Category, input.PaidVia, input.Date); err != nil {
		return nil, err
	}

	expense.Amount = input.Amount
	expense.Category = input.Category
	expense.PaidVia = input.PaidVia
	expense.Description = input.Description
	expense.Date = input.Date
	expense.UpdatedAt = time.Now().UTC()

	if err := uc.expenseRepo.Update(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	return &EditExpenseOutput{Expense: expense}, nil
}

// Package expense contains expense entry use cases.
package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintrack/backend/internal/application/adapter"
	"github.com/fintrack/backend/internal/domain/entity"
	domainerror "github.com/fintrack/backend/internal/domain/error"
)

// AddExpenseInput represents the input for expense creation.
type AddExpenseInput struct {
	UserID      uuid.UUID
	Amount      decimal.Decimal
	Category    entity.ExpenseCategory
	PaidVia     entity.PaymentMethod
	Description string
	Date        time.Time
}

// AddExpenseOutput represents the output of expense creation.
type AddExpenseOutput struct {
	Expense *entity.Expense
}

// AddExpenseUseCase handles expense creation logic.
type AddExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewAddExpenseUseCase creates a new AddExpenseUseCase instance.
func NewAddExpenseUseCase(expenseRepo adapter.ExpenseRepository) *AddExpenseUseCase {
	return &AddExpenseUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute performs the expense creation.
func (uc *AddExpenseUseCase) Execute(ctx context.Context, input AddExpenseInput) (*AddExpenseOutput, error) {
	if err := validateExpenseFields(input.Amount, input.Category, input.PaidVia, input.Date); err != nil {
		return nil, err
	}

	expense := entity.NewExpense(
		input.UserID,
		input.Amount,
		input.Category,
		input.PaidVia,
		input.Description,
		input.Date,
	)

	if err := uc.expenseRepo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	return &AddExpenseOutput{Expense: expense}, nil
}

// validateExpenseFields validates the writable fields shared by add and edit.
func validateExpenseFields(amount decimal.Decimal, category entity.ExpenseCategory, paidVia entity.PaymentMethod, date time.Time) error {
	if !amount.IsPositive() {
		return domainerror.NewEntryError(
			domainerror.ErrCodeInvalidAmount,
			"amount must be positive",
			domainerror.ErrInvalidAmount,
		)
	}

	if !entity.ValidExpenseCategory(category) {
		return domainerror.NewEntryError(
			domainerror.ErrCodeInvalidCategory,
			"unknown expense category",
			domainerror.ErrInvalidCategory,
		)
	}

	if !entity.ValidPaymentMethod(paidVia) {
		return domainerror.NewEntryError(
			domainerror.ErrCodeInvalidPaymentMethod,
			"unknown payment method",
			domainerror.ErrInvalidPaymentMethod,
		)
	}

	if date.IsZero() {
		return domainerror.NewEntryError(
			domainerror.ErrCodeInvalidEntryDate,
			"date is required",
			domainerror.ErrInvalidEntryDate,
		)
	}

	return nil
}

// Package income contains income entry use cases.
package income

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

// AddIncomeInput represents the input for income creation.
type AddIncomeInput struct {
	UserID      uuid.UUID
	Amount      decimal.Decimal
	Category    entity.IncomeCategory
	Description string
	Date        time.Time
}

// AddIncomeOutput represents the output of income creation.
type AddIncomeOutput struct {
	Income *entity.Income
}

// AddIncomeUseCase handles income creation logic.
type AddIncomeUseCase struct {
	incomeRepo adapter.IncomeRepository
}

// NewAddIncomeUseCase creates a new AddIncomeUseCase instance.
func NewAddIncomeUseCase(incomeRepo adapter.IncomeRepository) *AddIncomeUseCase {
	return &AddIncomeUseCase{
		incomeRepo: incomeRepo,
	}
}

// Execute performs the income creation.
func (uc *AddIncomeUseCase) Execute(ctx context.Context, input AddIncomeInput) (*AddIncomeOutput, error) {
	if err := validateIncomeFields(input.Amount, input.Category, input.Date); err != nil {
		return nil, err
	}

	income := entity.NewIncome(
		input.UserID,
		input.Amount,
		input.Category,
		input.Description,
		input.Date,
	)

	if err := uc.incomeRepo.Create(ctx, income); err != nil {
		return nil, fmt.Errorf("failed to create income: %w", err)
	}

	return &AddIncomeOutput{Income: income}, nil
}

// validateIncomeFields validates the writable fields shared by add and edit.
func validateIncomeFields(amount decimal.Decimal, category entity.IncomeCategory, date time.Time) error {
	if !amount.IsPositive() {
		return domainerror.NewEntryError(
			domainerror.ErrCodeInvalidAmount,
			"amount must be positive",
			domainerror.ErrInvalidAmount,
		)
	}

	if !entity.ValidIncomeCategory(category) {
		return domainerror.NewEntryError(
			domainerror.ErrCodeInvalidCategory,
			"income category must be salary, freelance, investments or other",
			domainerror.ErrInvalidCategory,
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

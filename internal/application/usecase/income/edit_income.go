// Package income contains income entry use cases.
package income

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

// EditIncomeInput represents the input for an income edit.
// Edits are full-field replacements of the stored row.
type EditIncomeInput struct {
	IncomeID    uuid.UUID
	UserID      uuid.UUID
	Amount      decimal.Decimal
	Category    entity.IncomeCategory
	Description string
	Date        time.Time
}

// EditIncomeOutput represents the output of an income edit.
type EditIncomeOutput struct {
	Income *entity.Income
}

// EditIncomeUseCase handles income edit logic.
type EditIncomeUseCase struct {
	incomeRepo adapter.IncomeRepository
}

// NewEditIncomeUseCase creates a new EditIncomeUseCase instance.
func NewEditIncomeUseCase(incomeRepo adapter.IncomeRepository) *EditIncomeUseCase {
	return &EditIncomeUseCase{
		incomeRepo: incomeRepo,
	}
}

// Execute performs the income edit.
func (uc *EditIncomeUseCase) Execute(ctx context.Context, input EditIncomeInput) (*EditIncomeOutput, error) {
	income, err := uc.incomeRepo.FindByID(ctx, input.IncomeID)
	if err != nil {
		if errors.Is(err, domainerror.ErrEntryNotFound) {
			return nil, domainerror.NewEntryError(
				domainerror.ErrCodeEntryNotFound,
				"income not found",
				domainerror.ErrEntryNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find income: %w", err)
	}

	// Ownership is checked before any write is issued.
	if income.UserID != input.UserID {
		return nil, domainerror.NewEntryError(
			domainerror.ErrCodeNotEntryOwner,
			"not authorized to update this income",
			domainerror.ErrNotEntryOwner,
		)
	}

	if err := validateIncomeFields(input.Amount, input.Category, input.Date); err != nil {
		return nil, err
	}

	income.Amount = input.Amount
	income.Category = input.Category
	income.Description = input.Description
	income.Date = input.Date
	income.UpdatedAt = time.Now().UTC()

	if err := uc.incomeRepo.Update(ctx, income); err != nil {
		return nil, fmt.Errorf("failed to update income: %w", err)
	}

	return &EditIncomeOutput{Income: income}, nil
}

// Package income contains income entry use cases.
package income

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/fintrack/backend/internal/application/adapter"
	domainerror "github.com/fintrack/backend/internal/domain/error"
)

// DeleteIncomeInput represents the input for income deletion.
type DeleteIncomeInput struct {
	IncomeID uuid.UUID
	UserID   uuid.UUID
}

// DeleteIncomeOutput represents the output of income deletion.
type DeleteIncomeOutput struct {
	Success bool
}

// DeleteIncomeUseCase handles income deletion logic.
type DeleteIncomeUseCase struct {
	incomeRepo adapter.IncomeRepository
}

// NewDeleteIncomeUseCase creates a new DeleteIncomeUseCase instance.
func NewDeleteIncomeUseCase(incomeRepo adapter.IncomeRepository) *DeleteIncomeUseCase {
	return &DeleteIncomeUseCase{
		incomeRepo: incomeRepo,
	}
}

// Execute performs the income deletion.
func (uc *DeleteIncomeUseCase) Execute(ctx context.Context, input DeleteIncomeInput) (*DeleteIncomeOutput, error) {
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

	// Ownership is checked before the delete is issued.
	if income.UserID != input.UserID {
		return nil, domainerror.NewEntryError(
			domainerror.ErrCodeNotEntryOwner,
			"not authorized to delete this income",
			domainerror.ErrNotEntryOwner,
		)
	}

	if err := uc.incomeRepo.Delete(ctx, input.IncomeID); err != nil {
		return nil, fmt.Errorf("failed to delete income: %w", err)
	}

	return &DeleteIncomeOutput{Success: true}, nil
}

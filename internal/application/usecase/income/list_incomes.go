// Package income contains income entry use cases.
package income

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintrack/backend/internal/application/adapter"
	"github.com/fintrack/backend/internal/domain/entity"
)

// ListIncomesInput represents the input for listing a user's incomes.
type ListIncomesInput struct {
	UserID uuid.UUID
}

// ListIncomesOutput represents the output of listing incomes.
type ListIncomesOutput struct {
	Incomes []*entity.Income
	Total   decimal.Decimal
}

// ListIncomesUseCase handles income listing logic.
type ListIncomesUseCase struct {
	incomeRepo adapter.IncomeRepository
}

// NewListIncomesUseCase creates a new ListIncomesUseCase instance.
func NewListIncomesUseCase(incomeRepo adapter.IncomeRepository) *ListIncomesUseCase {
	return &ListIncomesUseCase{
		incomeRepo: incomeRepo,
	}
}

// Execute retrieves all incomes owned by the user along with their total.
func (uc *ListIncomesUseCase) Execute(ctx context.Context, input ListIncomesInput) (*ListIncomesOutput, error) {
	incomes, err := uc.incomeRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list incomes: %w", err)
	}

	total, err := uc.incomeRepo.SumAmountByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to total incomes: %w", err)
	}

	return &ListIncomesOutput{
		Incomes: incomes,
		Total:   total,
	}, nil
}

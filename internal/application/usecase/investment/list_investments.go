// Package investment contains investment entry use cases.
package investment

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintrack/backend/internal/application/adapter"
	"github.com/fintrack/backend/internal/domain/entity"
)

// ListInvestmentsInput represents the input for listing a user's investments.
type ListInvestmentsInput struct {
	UserID uuid.UUID
}

// ListInvestmentsOutput represents the output of listing investments.
type ListInvestmentsOutput struct {
	Investments []*entity.Investment
	Total       decimal.Decimal
}

// ListInvestmentsUseCase handles investment listing logic.
type ListInvestmentsUseCase struct {
	investmentRepo adapter.InvestmentRepository
}

// NewListInvestmentsUseCase creates a new ListInvestmentsUseCase instance.
func NewListInvestmentsUseCase(investmentRepo adapter.InvestmentRepository) *ListInvestmentsUseCase {
	return &ListInvestmentsUseCase{
		investmentRepo: investmentRepo,
	}
}

// Execute retrieves all investments owned by the user along with their total invested amount.
func (uc *ListInvestmentsUseCase) Execute(ctx context.Context, input ListInvestmentsInput) (*ListInvestmentsOutput, error) {
	investments, err := uc.investmentRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list investments: %w", err)
	}

	total, err := uc.investmentRepo.SumAmountByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to total investments: %w", err)
	}

	return &ListInvestmentsOutput{
		Investments: investments,
		Total:       total,
	}, nil
}

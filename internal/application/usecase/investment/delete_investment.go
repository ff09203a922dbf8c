// Package investment contains investment entry use cases.
package investment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/fintrack/backend/internal/application/adapter"
	domainerror "github.com/fintrack/backend/internal/domain/error"
)

// DeleteInvestmentInput represents the input for investment deletion.
type DeleteInvestmentInput struct {
	InvestmentID uuid.UUID
	UserID       uuid.UUID
}

// DeleteInvestmentOutput represents the output of investment deletion.
type DeleteInvestmentOutput struct {
	Success bool
}

// DeleteInvestmentUseCase handles investment deletion logic.
type DeleteInvestmentUseCase struct {
	investmentRepo adapter.InvestmentRepository
}

// NewDeleteInvestmentUseCase creates a new DeleteInvestmentUseCase instance.
func NewDeleteInvestmentUseCase(investmentRepo adapter.InvestmentRepository) *DeleteInvestmentUseCase {
	return &DeleteInvestmentUseCase{
		investmentRepo: investmentRepo,
	}
}

// Execute performs the investment deletion.
func (uc *DeleteInvestmentUseCase) Execute(ctx context.Context, input DeleteInvestmentInput) (*DeleteInvestmentOutput, error) {
	investment, err := uc.investmentRepo.FindByID(ctx, input.InvestmentID)
	if err != nil {
		if errors.Is(err, domainerror.ErrEntryNotFound) {
			return nil, domainerror.NewEntryError(
				domainerror.ErrCodeEntryNotFound,
				"investment not found",
				domainerror.ErrEntryNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find investment: %w", err)
	}

	// Ownership is checked before the delete is issued.
	if investment.UserID != input.UserID {
		return nil, domainerror.NewEntryError(
			domainerror.ErrCodeNotEntryOwner,
			"not authorized to delete this investment",
			domainerror.ErrNotEntryOwner,
		)
	}

	if err := uc.investmentRepo.Delete(ctx, input.InvestmentID); err != nil {
		return nil, fmt.Errorf("failed to delete investment: %w", err)
	}

	return &DeleteInvestmentOutput{Success: true}, nil
}

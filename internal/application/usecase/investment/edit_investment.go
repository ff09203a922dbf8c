// Package investment contains investment entry use cases.
package investment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintrack/backend/internal/application/adapter"
	"github.com/fintrack/backend/internal/domain/entity"
	domainerror "github.com/fintrack/backend/internal/domain/error"
)

// EditInvestmentInput represents the input for an investment edit.
// Edits are full-field replacements, with the amount recomputed from units and price.
type EditInvestmentInput struct {
	InvestmentID uuid.UUID
	UserID       uuid.UUID
	Name         string
	Category     entity.InvestmentCategory
	Units        decimal.Decimal
	Price        decimal.Decimal
	Notes        string
	Date         time.Time
}

// EditInvestmentOutput represents the output of an investment edit.
type EditInvestmentOutput struct {
	Investment *entity.Investment
}

// EditInvestmentUseCase handles investment edit logic.
type EditInvestmentUseCase struct {
	investmentRepo adapter.InvestmentRepository
}

// NewEditInvestmentUseCase creates a new EditInvestmentUseCase instance.
func NewEditInvestmentUseCase(investmentRepo adapter.InvestmentRepository) *EditInvestmentUseCase {
	return &EditInvestmentUseCase{
		investmentRepo: investmentRepo,
	}
}

// Execute performs the investment edit.
func (uc *EditInvestmentUseCase) Execute(ctx context.Context, input EditInvestmentInput) (*EditInvestmentOutput, error) {
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

	// Ownership is checked before any write is issued.
	if investment.UserID != input.UserID {
		return nil, domainerror.NewEntryError(
			domainerror.ErrCodeNotEntryOwner,
			"not authorized to update this investment",
			domainerror.ErrNotEntryOwner,
		)
	}

	if err := validateInvestmentFields(input.Name, input.Category, input.Units, input.Price, input.Date); err != nil {
		return nil, err
	}

	investment.Name = strings.TrimSpace(input.Name)
	investment.Category = input.Category
	investment.Units = input.Units
	investment.Price = input.Price
	investment.Notes = input.Notes
	investment.Date = input.Date
	investment.RecomputeAmount()
	investment.UpdatedAt = time.Now().UTC()

	if err := uc.investmentRepo.Update(ctx, investment); err != nil {
		return nil, fmt.Errorf("failed to update investment: %w", err)
	}

	return &EditInvestmentOutput{Investment: investment}, nil
}

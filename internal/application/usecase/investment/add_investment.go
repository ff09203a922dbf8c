// Package investment contains investment entry use cases.
package investment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintrack/backend/internal/application/adapter"
	"github.com/fintrack/backend/internal/domain/entity"
	domainerror "github.com/fintrack/backend/internal/domain/error"
)

// AddInvestmentInput represents the input for investment creation.
// Amount is never accepted from the caller, it is derived from units and price.
type AddInvestmentInput struct {
	UserID   uuid.UUID
	Name     string
	Category entity.InvestmentCategory
	Units    decimal.Decimal
	Price    decimal.Decimal
	Notes    string
	Date     time.Time
}

// AddInvestmentOutput represents the output of investment creation.
type AddInvestmentOutput struct {
	Investment *entity.Investment
}

// AddInvestmentUseCase handles investment creation logic.
type AddInvestmentUseCase struct {
	investmentRepo adapter.InvestmentRepository
}

// NewAddInvestmentUseCase creates a new AddInvestmentUseCase instance.
func NewAddInvestmentUseCase(investmentRepo adapter.InvestmentRepository) *AddInvestmentUseCase {
	return &AddInvestmentUseCase{
		investmentRepo: investmentRepo,
	}
}

// Execute performs the investment creation.
func (uc *AddInvestmentUseCase) Execute(ctx context.Context, input AddInvestmentInput) (*AddInvestmentOutput, error) {
	if err := validateInvestmentFields(input.Name, input.Category, input.Units, input.Price, input.Date); err != nil {
		return nil, err
	}

	investment := entity.NewInvestment(
		input.UserID,
		strings.TrimSpace(input.Name),
		input.Category,
		input.Units,
		input.Price,
		input.Date,
	)
	investment.Notes = input.Notes

	if err := uc.investmentRepo.Create(ctx, investment); err != nil {
		return nil, fmt.Errorf("failed to create investment: %w", err)
	}

	return &AddInvestmentOutput{Investment: investment}, nil
}

// validateInvestmentFields validates the writable fields shared by add and edit.
func validateInvestmentFields(name string, category entity.InvestmentCategory, units, price decimal.Decimal, date time.Time) error {
	if strings.TrimSpace(name) == "" {
		return domainerror.NewEntryError(
			domainerror.ErrCodeEmptyName,
			"name is required",
			domainerror.ErrEmptyName,
		)
	}

	if !entity.ValidInvestmentCategory(category) {
		return domainerror.NewEntryError(
			domainerror.ErrCodeInvalidCategory,
			"unknown investment category",
			domainerror.ErrInvalidCategory,
		)
	}

	if !units.IsPositive() {
		return domainerror.NewEntryError(
			domainerror.ErrCodeInvalidUnits,
			"units must be positive",
			domainerror.ErrInvalidUnits,
		)
	}

	if !price.IsPositive() {
		return domainerror.NewEntryError(
			domainerror.ErrCodeInvalidPrice,
			"price must be positive",
			domainerror.ErrInvalidPrice,
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

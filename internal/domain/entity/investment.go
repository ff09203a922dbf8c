// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvestmentCategory represents the asset class of an investment entry.
type InvestmentCategory string

const (
	InvestmentCategoryStocks      InvestmentCategory = "stocks"
	InvestmentCategoryMutualFunds InvestmentCategory = "mutual_funds"
	InvestmentCategoryRealEstate  InvestmentCategory = "real_estate"
	InvestmentCategoryCrypto      InvestmentCategory = "crypto"
	InvestmentCategoryBonds       InvestmentCategory = "bonds"
	InvestmentCategoryGold        InvestmentCategory = "gold"
	InvestmentCategoryOther       InvestmentCategory = "other"
)

// ValidInvestmentCategory reports whether the given category is a known asset class.
func ValidInvestmentCategory(c InvestmentCategory) bool {
	switch c {
	case InvestmentCategoryStocks, InvestmentCategoryMutualFunds, InvestmentCategoryRealEstate,
		InvestmentCategoryCrypto, InvestmentCategoryBonds, InvestmentCategoryGold, InvestmentCategoryOther:
		return true
	}
	return false
}

// Investment represents a single investment entry owned by one user.
// Amount is a cached derived value: it must always equal Units × Price and is
// recomputed at the use-case boundary on every write, never trusted from input.
type Investment struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Units     decimal.Decimal
	Price     decimal.Decimal // Price per unit
	Amount    decimal.Decimal // Units × Price
	Category  InvestmentCategory
	Notes     string // Optional
	Date      time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewInvestment creates a new Investment entity, deriving Amount from units and price.
func NewInvestment(
	userID uuid.UUID,
	name string,
	category InvestmentCategory,
	units decimal.Decimal,
	price decimal.Decimal,
	date time.Time,
) *Investment {
	now := time.Now().UTC()

	return &Investment{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Units:     units,
		Price:     price,
		Amount:    units.Mul(price),
		Category:  category,
		Date:      date,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// RecomputeAmount refreshes the derived Amount from the current units and price.
func (i *Investment) RecomputeAmount() {
	i.Amount = i.Units.Mul(i.Price)
}

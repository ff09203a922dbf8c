// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// IncomeCategory represents the source category of an income entry.
type IncomeCategory string

const (
	IncomeCategorySalary      IncomeCategory = "salary"
	IncomeCategoryFreelance   IncomeCategory = "freelance"
	IncomeCategoryInvestments IncomeCategory = "investments"
	IncomeCategoryOther       IncomeCategory = "other"
)

// ValidIncomeCategory reports whether the given category is a known income category.
func ValidIncomeCategory(c IncomeCategory) bool {
	switch c {
	case IncomeCategorySalary, IncomeCategoryFreelance, IncomeCategoryInvestments, IncomeCategoryOther:
		return true
	}
	return false
}

// Income represents a single income entry owned by one user.
type Income struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Amount      decimal.Decimal
	Category    IncomeCategory
	Description string // Optional
	Date        time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewIncome creates a new Income entity with a server-assigned id.
func NewIncome(
	userID uuid.UUID,
	amount decimal.Decimal,
	category IncomeCategory,
	description string,
	date time.Time,
) *Income {
	now := time.Now().UTC()

	return &Income{
		ID:          uuid.New(),
		UserID:      userID,
		Amount:      amount,
		Category:    category,
		Description: description,
		Date:        date,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

package dto

import (
	"github.com/shopspring/decimal"

	"github.com/fintrack/backend/internal/domain/entity"
)

// ExpenseRequest represents the payload for creating or replacing an expense.
type ExpenseRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Category    string          `json:"category" binding:"required"`
	Description string          `json:"description"`
	Date        string          `json:"date" binding:"required"`
	PaidVia     string          `json:"paidVia" binding:"required"`
}

// ExpenseResponse represents an expense entry in API responses.
type ExpenseResponse struct {
	ID          string `json:"id"`
	Amount      string `json:"amount"`
	Category    string `json:"category"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date"`
	PaidVia     string `json:"paidVia"`
}

// ExpenseListResponse represents a user's expense collection with its total.
type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
	Total    string            `json:"total"`
}

// ToExpenseResponse converts an expense entity to its API representation.
func ToExpenseResponse(expense *entity.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          expense.ID.String(),
		Amount:      expense.Amount.String(),
		Category:    string(expense.Category),
		Description: expense.Description,
		Date:        expense.Date.Format(dateLayout),
		PaidVia:     string(expense.PaidVia),
	}
}

// ToExpenseListResponse converts an expense collection to its API representation.
func ToExpenseListResponse(expenses []*entity.Expense, total decimal.Decimal) ExpenseListResponse {
	items := make([]ExpenseResponse, 0, len(expenses))
	for _, expense := range expenses {
		items = append(items, ToExpenseResponse(expense))
	}
	return ExpenseListResponse{
		Expenses: items,
		Total:    total.String(),
	}
}

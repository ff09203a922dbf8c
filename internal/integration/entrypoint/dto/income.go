package dto

import (
	"github.com/shopspring/decimal"

	"github.com/fintrack/backend/internal/domain/entity"
)

// dateLayout is the wire format for all entry dates.
const dateLayout = "2006-01-02"

// IncomeRequest represents the payload for creating or replacing an income.
type IncomeRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Category    string          `json:"category" binding:"required"`
	Description string          `json:"description"`
	Date        string          `json:"date" binding:"required"`
}

// IncomeResponse represents an income entry in API responses.
type IncomeResponse struct {
	ID          string `json:"id"`
	Amount      string `json:"amount"`
	Category    string `json:"category"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date"`
}

// IncomeListResponse represents a user's income collection with its total.
type IncomeListResponse struct {
	Incomes []IncomeResponse `json:"incomes"`
	Total   string           `json:"total"`
}

// ToIncomeResponse converts an income entity to its API representation.
func ToIncomeResponse(income *entity.Income) IncomeResponse {
	return IncomeResponse{
		ID:          income.ID.String(),
		Amount:      income.Amount.String(),
		Category:    string(income.Category),
		Description: income.Description,
		Date:        income.Date.Format(dateLayout),
	}
}

// ToIncomeListResponse converts an income collection to its API representation.
func ToIncomeListResponse(incomes []*entity.Income, total decimal.Decimal) IncomeListResponse {
	items := make([]IncomeResponse, 0, len(incomes))
	for _, income := range incomes {
		items = append(items, ToIncomeResponse(income))
	}
	return IncomeListResponse{
		Incomes: items,
		Total:   total.String(),
	}
}

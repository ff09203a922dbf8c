package dto

import (
	"github.com/shopspring/decimal"

	"github.com/fintrack/backend/internal/domain/entity"
)

// InvestmentRequest represents the payload for creating or replacing an
// investment. The stored amount is always derived from units and price,
// the client never supplies it.
type InvestmentRequest struct {
	Name     string          `json:"name" binding:"required"`
	Units    decimal.Decimal `json:"units" binding:"required"`
	Price    decimal.Decimal `json:"price" binding:"required"`
	Category string          `json:"category" binding:"required"`
	Notes    string          `json:"notes"`
	Date     string          `json:"date" binding:"required"`
}

// InvestmentResponse represents an investment entry in API responses.
type InvestmentResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Units    string `json:"units"`
	Price    string `json:"price"`
	Amount   string `json:"amount"`
	Category string `json:"category"`
	Notes    string `json:"notes,omitempty"`
	Date     string `json:"date"`
}

// InvestmentListResponse represents a user's investments with their total.
type InvestmentListResponse struct {
	Investments []InvestmentResponse `json:"investments"`
	Total       string               `json:"total"`
}

// ToInvestmentResponse converts an investment entity to its API representation.
func ToInvestmentResponse(investment *entity.Investment) InvestmentResponse {
	return InvestmentResponse{
		ID:       investment.ID.String(),
		Name:     investment.Name,
		Units:    investment.Units.String(),
		Price:    investment.Price.String(),
		Amount:   investment.Amount.String(),
		Category: string(investment.Category),
		Notes:    investment.Notes,
		Date:     investment.Date.Format(dateLayout),
	}
}

// ToInvestmentListResponse converts an investment collection to its API representation.
func ToInvestmentListResponse(investments []*entity.Investment, total decimal.Decimal) InvestmentListResponse {
	items := make([]InvestmentResponse, 0, len(investments))
	for _, investment := range investments {
		items = append(items, ToInvestmentResponse(investment))
	}
	return InvestmentListResponse{
		Investments: items,
		Total:       total.String(),
	}
}

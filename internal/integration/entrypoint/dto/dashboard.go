package dto

import (
	"github.com/fintrack/backend/internal/application/usecase/dashboard"
)

// SummaryFiguresResponse carries one set of dashboard figures, either raw
// decimal strings or rendered in the user's preferred currency.
type SummaryFiguresResponse struct {
	TotalIncome             string `json:"totalIncome"`
	TotalExpenses           string `json:"totalExpenses"`
	TotalInvestments        string `json:"totalInvestments"`
	MonthlySubscriptionCost string `json:"monthlySubscriptionCost"`
	YearlySubscriptionCost  string `json:"yearlySubscriptionCost"`
	AvailableBalance        string `json:"availableBalance"`
	TotalSavings            string `json:"totalSavings"`
}

// SummaryResponse represents the dashboard summary payload.
type SummaryResponse struct {
	Summary   SummaryFiguresResponse `json:"summary"`
	Formatted SummaryFiguresResponse `json:"formatted"`
	Currency  string                 `json:"currency"`
}

// TransactionResponse represents one row of the recent-activity feed.
type TransactionResponse struct {
	ID       string `json:"id"`
	Kind     string `json:"kind"`
	Label    string `json:"label,omitempty"`
	Category string `json:"category,omitempty"`
	Amount   string `json:"amount"`
	Date     string `json:"date"`
}

// RecentTransactionsResponse represents the recent-activity feed payload.
type RecentTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToSummaryResponse converts a dashboard summary output to its API representation.
func ToSummaryResponse(output *dashboard.GetSummaryOutput) SummaryResponse {
	s := output.Summary
	f := output.Formatted
	return SummaryResponse{
		Summary: SummaryFiguresResponse{
			TotalIncome:             s.TotalIncome.String(),
			TotalExpenses:           s.TotalExpenses.String(),
			TotalInvestments:        s.TotalInvestments.String(),
			MonthlySubscriptionCost: s.MonthlySubscriptionCost.String(),
			YearlySubscriptionCost:  s.YearlySubscriptionCost.String(),
			AvailableBalance:        s.AvailableBalance.String(),
			TotalSavings:            s.TotalSavings.String(),
		},
		Formatted: SummaryFiguresResponse{
			TotalIncome:             f.TotalIncome,
			TotalExpenses:           f.TotalExpenses,
			TotalInvestments:        f.TotalInvestments,
			MonthlySubscriptionCost: f.MonthlySubscriptionCost,
			YearlySubscriptionCost:  f.YearlySubscriptionCost,
			AvailableBalance:        f.AvailableBalance,
			TotalSavings:            f.TotalSavings,
		},
		Currency: string(output.Currency),
	}
}

// ToRecentTransactionsResponse converts the recent-activity feed to its API representation.
func ToRecentTransactionsResponse(transactions []dashboard.Transaction) RecentTransactionsResponse {
	items := make([]TransactionResponse, 0, len(transactions))
	for _, tx := range transactions {
		items = append(items, TransactionResponse{
			ID:       tx.ID.String(),
			Kind:     tx.Kind,
			Label:    tx.Label,
			Category: tx.Category,
			Amount:   tx.Amount.String(),
			Date:     tx.Date.Format(dateLayout),
		})
	}
	return RecentTransactionsResponse{Transactions: items}
}

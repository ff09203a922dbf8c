// Package dashboard contains the aggregation use cases backing the overview screen.
package dashboard

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintrack/backend/internal/application/adapter"
	domainerror "github.com/fintrack/backend/internal/domain/error"
)

// recentLimit caps the merged feed on the overview screen.
const recentLimit = 5

// Transaction kinds in the merged feed.
const (
	TransactionKindIncome     = "income"
	TransactionKindExpense    = "expense"
	TransactionKindInvestment = "investment"
)

// Transaction is one row of the merged recent-activity feed.
type Transaction struct {
	ID       uuid.UUID
	Kind     string
	Label    string
	Category string
	Amount   decimal.Decimal
	Date     time.Time
}

// RecentTransactionsInput represents the input for the recent-activity feed.
type RecentTransactionsInput struct {
	UserID uuid.UUID
	Range  DateRange
}

// RecentTransactionsOutput represents the output of the recent-activity feed.
type RecentTransactionsOutput struct {
	Transactions []Transaction
}

// RecentTransactionsUseCase merges incomes, expenses and investments into
// a single newest-first feed.
type RecentTransactionsUseCase struct {
	incomeRepo     adapter.IncomeRepository
	expenseRepo    adapter.ExpenseRepository
	investmentRepo adapter.InvestmentRepository
}

// NewRecentTransactionsUseCase creates a new RecentTransactionsUseCase instance.
func NewRecentTransactionsUseCase(
	incomeRepo adapter.IncomeRepository,
	expenseRepo adapter.ExpenseRepository,
	investmentRepo adapter.InvestmentRepository,
) *RecentTransactionsUseCase {
	return &RecentTransactionsUseCase{
		incomeRepo:     incomeRepo,
		expenseRepo:    expenseRepo,
		investmentRepo: investmentRepo,
	}
}

// Execute returns the five most recent entries across all three kinds.
func (uc *RecentTransactionsUseCase) Execute(ctx context.Context, input RecentTransactionsInput) (*RecentTransactionsOutput, error) {
	if !input.Range.Valid() {
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidDateRange,
			"from must not be after to",
			domainerror.ErrInvalidDateRange,
		)
	}

	incomes, err := uc.incomeRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load incomes: %w", err)
	}
	expenses, err := uc.expenseRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}
	investments, err := uc.investmentRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load investments: %w", err)
	}

	merged := make([]Transaction, 0, len(incomes)+len(expenses)+len(investments))
	for _, income := range incomes {
		if !input.Range.Contains(income.Date) {
			continue
		}
		merged = append(merged, Transaction{
			ID:       income.ID,
			Kind:     TransactionKindIncome,
			Label:    income.Description,
			Category: string(income.Category),
			Amount:   income.Amount,
			Date:     income.Date,
		})
	}
	for _, expense := range expenses {
		if !input.Range.Contains(expense.Date) {
			continue
		}
		merged = append(merged, Transaction{
			ID:       expense.ID,
			Kind:     TransactionKindExpense,
			Label:    expense.Description,
			Category: string(expense.Category),
			Amount:   expense.Amount,
			Date:     expense.Date,
		})
	}
	for _, investment := range investments {
		if !input.Range.Contains(investment.Date) {
			continue
		}
		merged = append(merged, Transaction{
			ID:       investment.ID,
			Kind:     TransactionKindInvestment,
			Label:    investment.Name,
			Category: string(investment.Category),
			Amount:   investment.Amount,
			Date:     investment.Date,
		})
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Date.After(merged[j].Date)
	})

	if len(merged) > recentLimit {
		merged = merged[:recentLimit]
	}

	return &RecentTransactionsOutput{Transactions: merged}, nil
}

// Package dashboard contains the aggregation use cases backing the overview screen.
package dashboard

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintrack/backend/internal/application/adapter"
	"github.com/fintrack/backend/internal/domain/entity"
	domainerror "github.com/fintrack/backend/internal/domain/error"
	"github.com/fintrack/backend/internal/format"
)

var twelve = decimal.NewFromInt(12)

// Summary holds the aggregate figures for one user over a date range.
type Summary struct {
	TotalIncome             decimal.Decimal
	TotalExpenses           decimal.Decimal
	TotalInvestments        decimal.Decimal
	MonthlySubscriptionCost decimal.Decimal
	YearlySubscriptionCost  decimal.Decimal
	AvailableBalance        decimal.Decimal
	TotalSavings            decimal.Decimal
}

// FormattedSummary mirrors Summary with every figure rendered in the
// user's preferred currency.
type FormattedSummary struct {
	TotalIncome             string
	TotalExpenses           string
	TotalInvestments        string
	MonthlySubscriptionCost string
	YearlySubscriptionCost  string
	AvailableBalance        string
	TotalSavings            string
}

// GetSummaryInput represents the input for a dashboard summary.
type GetSummaryInput struct {
	UserID uuid.UUID
	Range  DateRange
}

// GetSummaryOutput represents the output of a dashboard summary.
type GetSummaryOutput struct {
	Summary   Summary
	Formatted FormattedSummary
	Currency  entity.Currency
}

// GetSummaryUseCase computes the dashboard aggregates from fresh entry data.
type GetSummaryUseCase struct {
	incomeRepo       adapter.IncomeRepository
	expenseRepo      adapter.ExpenseRepository
	investmentRepo   adapter.InvestmentRepository
	subscriptionRepo adapter.SubscriptionRepository
	preferenceStore  adapter.PreferenceStore
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(
	incomeRepo adapter.IncomeRepository,
	expenseRepo adapter.ExpenseRepository,
	investmentRepo adapter.InvestmentRepository,
	subscriptionRepo adapter.SubscriptionRepository,
	preferenceStore adapter.PreferenceStore,
) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		incomeRepo:       incomeRepo,
		expenseRepo:      expenseRepo,
		investmentRepo:   investmentRepo,
		subscriptionRepo: subscriptionRepo,
		preferenceStore:  preferenceStore,
	}
}

// Execute fetches the user's entries and computes the summary figures.
// Totals are always recomputed from the stored entries, never cached.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
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
	subscriptions, err := uc.subscriptionRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load subscriptions: %w", err)
	}

	summary := Summarize(incomes, expenses, investments, subscriptions, input.Range)

	prefs, err := uc.preferenceStore.Get(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load preferences: %w", err)
	}

	return &GetSummaryOutput{
		Summary:   summary,
		Formatted: formatSummary(summary, prefs.Currency),
		Currency:  prefs.Currency,
	}, nil
}

// Summarize computes the aggregate figures over the given entries.
// Subscriptions are windowed by their start date, everything else by its
// entry date. Quarterly subscriptions carry no monthly or yearly cost figure.
func Summarize(
	incomes []*entity.Income,
	expenses []*entity.Expense,
	investments []*entity.Investment,
	subscriptions []*entity.Subscription,
	window DateRange,
) Summary {
	var s Summary

	for _, income := range incomes {
		if window.Contains(income.Date) {
			s.TotalIncome = s.TotalIncome.Add(income.Amount)
		}
	}
	for _, expense := range expenses {
		if window.Contains(expense.Date) {
			s.TotalExpenses = s.TotalExpenses.Add(expense.Amount)
		}
	}
	for _, investment := range investments {
		if window.Contains(investment.Date) {
			s.TotalInvestments = s.TotalInvestments.Add(investment.Amount)
		}
	}
	for _, subscription := range subscriptions {
		if subscription.Status != entity.SubscriptionStatusActive {
			continue
		}
		if !window.Contains(subscription.StartDate) {
			continue
		}
		switch subscription.BillingCycle {
		case entity.BillingCycleMonthly:
			s.MonthlySubscriptionCost = s.MonthlySubscriptionCost.Add(subscription.Amount)
		case entity.BillingCycleYearly:
			s.YearlySubscriptionCost = s.YearlySubscriptionCost.Add(subscription.Amount)
		}
	}

	recurring := s.MonthlySubscriptionCost.Add(s.YearlySubscriptionCost.Div(twelve))
	s.TotalSavings = s.TotalIncome.Sub(s.TotalExpenses).Sub(recurring)
	s.AvailableBalance = s.TotalSavings.Sub(s.TotalInvestments)

	return s
}

func formatSummary(s Summary, code entity.Currency) FormattedSummary {
	return FormattedSummary{
		TotalIncome:             format.Currency(s.TotalIncome, code),
		TotalExpenses:           format.Currency(s.TotalExpenses, code),
		TotalInvestments:        format.Currency(s.TotalInvestments, code),
		MonthlySubscriptionCost: format.Currency(s.MonthlySubscriptionCost, code),
		YearlySubscriptionCost:  format.Currency(s.YearlySubscriptionCost, code),
		AvailableBalance:        format.Currency(s.AvailableBalance, code),
		TotalSavings:            format.Currency(s.TotalSavings, code),
	}
}

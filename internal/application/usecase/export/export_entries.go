// Package export renders a user's entries as downloadable CSV.
package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fintrack/backend/internal/application/adapter"
	domainerror "github.com/fintrack/backend/internal/domain/error"
)

// Exportable entity names, matching the download route segments.
const (
	EntityIncome        = "income"
	EntityExpenses      = "expenses"
	EntityInvestments   = "investments"
	EntitySubscriptions = "subscriptions"
)

const dateLayout = "2006-01-02"

// ExportEntriesInput represents the input for a CSV export.
type ExportEntriesInput struct {
	UserID uuid.UUID
	Entity string
}

// ExportEntriesOutput represents the output of a CSV export.
type ExportEntriesOutput struct {
	Filename string
	Content  []byte
}

// ExportEntriesUseCase renders one entry collection as CSV.
type ExportEntriesUseCase struct {
	incomeRepo       adapter.IncomeRepository
	expenseRepo      adapter.ExpenseRepository
	investmentRepo   adapter.InvestmentRepository
	subscriptionRepo adapter.SubscriptionRepository
	now              func() time.Time
}

// NewExportEntriesUseCase creates a new ExportEntriesUseCase instance.
func NewExportEntriesUseCase(
	incomeRepo adapter.IncomeRepository,
	expenseRepo adapter.ExpenseRepository,
	investmentRepo adapter.InvestmentRepository,
	subscriptionRepo adapter.SubscriptionRepository,
) *ExportEntriesUseCase {
	return &ExportEntriesUseCase{
		incomeRepo:       incomeRepo,
		expenseRepo:      expenseRepo,
		investmentRepo:   investmentRepo,
		subscriptionRepo: subscriptionRepo,
		now:              time.Now,
	}
}

// Execute renders the requested collection. Amounts are written as plain
// decimal strings and dates in ISO form so the file reimports cleanly.
func (uc *ExportEntriesUseCase) Execute(ctx context.Context, input ExportEntriesInput) (*ExportEntriesOutput, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	switch input.Entity {
	case EntityIncome:
		if err := uc.writeIncomes(ctx, w, input.UserID); err != nil {
			return nil, err
		}
	case EntityExpenses:
		if err := uc.writeExpenses(ctx, w, input.UserID); err != nil {
			return nil, err
		}
	case EntityInvestments:
		if err := uc.writeInvestments(ctx, w, input.UserID); err != nil {
			return nil, err
		}
	case EntitySubscriptions:
		if err := uc.writeSubscriptions(ctx, w, input.UserID); err != nil {
			return nil, err
		}
	default:
		return nil, domainerror.NewExportError(
			domainerror.ErrCodeUnknownExportEntity,
			fmt.Sprintf("unknown export entity %q", input.Entity),
			domainerror.ErrUnknownExportEntity,
		)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to render csv: %w", err)
	}

	return &ExportEntriesOutput{
		Filename: fmt.Sprintf("fintrack-%s-%s.csv", input.Entity, uc.now().Format(dateLayout)),
		Content:  buf.Bytes(),
	}, nil
}

func (uc *ExportEntriesUseCase) writeIncomes(ctx context.Context, w *csv.Writer, userID uuid.UUID) error {
	incomes, err := uc.incomeRepo.FindByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load incomes: %w", err)
	}

	if err := w.Write([]string{"id", "amount", "category", "description", "date"}); err != nil {
		return err
	}
	for _, income := range incomes {
		record := []string{
			income.ID.String(),
			income.Amount.String(),
			string(income.Category),
			income.Description,
			income.Date.Format(dateLayout),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return nil
}

func (uc *ExportEntriesUseCase) writeExpenses(ctx context.Context, w *csv.Writer, userID uuid.UUID) error {
	expenses, err := uc.expenseRepo.FindByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load expenses: %w", err)
	}

	if err := w.Write([]string{"id", "amount", "category", "paid_via", "description", "date"}); err != nil {
		return err
	}
	for _, expense := range expenses {
		record := []string{
			expense.ID.String(),
			expense.Amount.String(),
			string(expense.Category),
			string(expense.PaidVia),
			expense.Description,
			expense.Date.Format(dateLayout),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return nil
}

func (uc *ExportEntriesUseCase) writeInvestments(ctx context.Context, w *csv.Writer, userID uuid.UUID) error {
	investments, err := uc.investmentRepo.FindByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load investments: %w", err)
	}

	if err := w.Write([]string{"id", "name", "category", "units", "price", "amount", "date"}); err != nil {
		return err
	}
	for _, investment := range investments {
		record := []string{
			investment.ID.String(),
			investment.Name,
			string(investment.Category),
			investment.Units.String(),
			investment.Price.String(),
			investment.Amount.String(),
			investment.Date.Format(dateLayout),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return nil
}

func (uc *ExportEntriesUseCase) writeSubscriptions(ctx context.Context, w *csv.Writer, userID uuid.UUID) error {
	subscriptions, err := uc.subscriptionRepo.FindByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load subscriptions: %w", err)
	}

	if err := w.Write([]string{"id", "name", "amount", "billing_cycle", "start_date", "status", "notes"}); err != nil {
		return err
	}
	for _, subscription := range subscriptions {
		record := []string{
			subscription.ID.String(),
			subscription.Name,
			subscription.Amount.String(),
			string(subscription.BillingCycle),
			subscription.StartDate.Format(dateLayout),
			string(subscription.Status),
			subscription.Notes,
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return nil
}

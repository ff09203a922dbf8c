package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintrack/backend/internal/domain/entity"
	domainerror "github.com/fintrack/backend/internal/domain/error"
)

type fakeIncomeStore struct{ incomes []*entity.Income }

func (s *fakeIncomeStore) Create(_ context.Context, _ *entity.Income) error { return nil }
func (s *fakeIncomeStore) Update(_ context.Context, _ *entity.Income) error { return nil }
func (s *fakeIncomeStore) Delete(_ context.Context, _ uuid.UUID) error      { return nil }

func (s *fakeIncomeStore) FindByID(_ context.Context, _ uuid.UUID) (*entity.Income, error) {
	return nil, domainerror.ErrEntryNotFound
}

func (s *fakeIncomeStore) FindByUser(_ context.Context, _ uuid.UUID) ([]*entity.Income, error) {
	return s.incomes, nil
}

func (s *fakeIncomeStore) SumAmountByUser(_ context.Context, _ uuid.UUID) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

type fakeExpenseStore struct{ expenses []*entity.Expense }

func (s *fakeExpenseStore) Create(_ context.Context, _ *entity.Expense) error { return nil }
func (s *fakeExpenseStore) Update(_ context.Context, _ *entity.Expense) error { return nil }
func (s *fakeExpenseStore) Delete(_ context.Context, _ uuid.UUID) error       { return nil }

func (s *fakeExpenseStore) FindByID(_ context.Context, _ uuid.UUID) (*entity.Expense, error) {
	return nil, domainerror.ErrEntryNotFound
}

func (s *fakeExpenseStore) FindByUser(_ context.Context, _ uuid.UUID) ([]*entity.Expense, error) {
	return s.expenses, nil
}

func (s *fakeExpenseStore) SumAmountByUser(_ context.Context, _ uuid.UUID) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

type fakeInvestmentStore struct{ investments []*entity.Investment }

func (s *fakeInvestmentStore) Create(_ context.Context, _ *entity.Investment) error { return nil }
func (s *fakeInvestmentStore) Update(_ context.Context, _ *entity.Investment) error { return nil }
func (s *fakeInvestmentStore) Delete(_ context.Context, _ uuid.UUID) error          { return nil }

func (s *fakeInvestmentStore) FindByID(_ context.Context, _ uuid.UUID) (*entity.Investment, error) {
	return nil, domainerror.ErrEntryNotFound
}

func (s *fakeInvestmentStore) FindByUser(_ context.Context, _ uuid.UUID) ([]*entity.Investment, error) {
	return s.investments, nil
}

func (s *fakeInvestmentStore) SumAmountByUser(_ context.Context, _ uuid.UUID) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

type fakeSubscriptionStore struct{ subscriptions []*entity.Subscription }

func (s *fakeSubscriptionStore) Create(_ context.Context, _ *entity.Subscription) error { return nil }
func (s *fakeSubscriptionStore) Update(_ context.Context, _ *entity.Subscription) error { return nil }
func (s *fakeSubscriptionStore) Delete(_ context.Context, _ uuid.UUID) error            { return nil }

func (s *fakeSubscriptionStore) FindByID(_ context.Context, _ uuid.UUID) (*entity.Subscription, error) {
	return nil, domainerror.ErrEntryNotFound
}

func (s *fakeSubscriptionStore) FindByUser(_ context.Context, _ uuid.UUID) ([]*entity.Subscription, error) {
	return s.subscriptions, nil
}

func (s *fakeSubscriptionStore) SumAmountByUser(_ context.Context, _ uuid.UUID) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func newUseCase(incomes *fakeIncomeStore, expenses *fakeExpenseStore) *ExportEntriesUseCase {
	uc := NewExportEntriesUseCase(incomes, expenses, &fakeInvestmentStore{}, &fakeSubscriptionStore{})
	uc.now = func() time.Time { return time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC) }
	return uc
}

func TestExportIncomes(t *testing.T) {
	userID := uuid.New()
	income := entity.NewIncome(userID, decimal.NewFromFloat(5000.50), entity.IncomeCategorySalary, "June salary", time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC))
	uc := newUseCase(&fakeIncomeStore{incomes: []*entity.Income{income}}, &fakeExpenseStore{})

	output, err := uc.Execute(context.Background(), ExportEntriesInput{UserID: userID, Entity: EntityIncome})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if output.Filename != "fintrack-income-2024-06-01.csv" {
		t.Errorf("Filename = %q, want %q", output.Filename, "fintrack-income-2024-06-01.csv")
	}

	records, err := csv.NewReader(bytes.NewReader(output.Content)).ReadAll()
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("rows = %d, want header plus one entry", len(records))
	}
	if records[1][1] != "5000.5" {
		t.Errorf("amount cell = %q, want %q", records[1][1], "5000.5")
	}
	if records[1][4] != "2024-06-01" {
		t.Errorf("date cell = %q, want %q", records[1][4], "2024-06-01")
	}
}

func TestExportQuotesEmbeddedCommasAndQuotes(t *testing.T) {
	userID := uuid.New()
	description := `dinner, drinks and "dessert"`
	expense := entity.NewExpense(userID, decimal.NewFromInt(80), entity.ExpenseCategoryFood, entity.PaymentMethodCreditCard, description, time.Date(2024, time.June, 2, 0, 0, 0, 0, time.UTC))
	uc := newUseCase(&fakeIncomeStore{}, &fakeExpenseStore{expenses: []*entity.Expense{expense}})

	output, err := uc.Execute(context.Background(), ExportEntriesInput{UserID: userID, Entity: EntityExpenses})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	records, err := csv.NewReader(bytes.NewReader(output.Content)).ReadAll()
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if records[1][4] != description {
		t.Errorf("description cell = %q, want %q", records[1][4], description)
	}
}

func TestExportUnknownEntity(t *testing.T) {
	uc := newUseCase(&fakeIncomeStore{}, &fakeExpenseStore{})

	_, err := uc.Execute(context.Background(), ExportEntriesInput{UserID: uuid.New(), Entity: "budgets"})
	if !errors.Is(err, domainerror.ErrUnknownExportEntity) {
		t.Errorf("Execute() error = %v, want %v", err, domainerror.ErrUnknownExportEntity)
	}
}

func TestExportEmptyCollection(t *testing.T) {
	uc := newUseCase(&fakeIncomeStore{}, &fakeExpenseStore{})

	output, err := uc.Execute(context.Background(), ExportEntriesInput{UserID: uuid.New(), Entity: EntityIncome})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	records, err := csv.NewReader(bytes.NewReader(output.Content)).ReadAll()
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if len(records) != 1 {
		t.Errorf("rows = %d, want header only", len(records))
	}
}

package dashboard

import (
	"context"
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

type fakePreferenceStore struct{ prefs entity.Preferences }

func (s *fakePreferenceStore) Get(_ context.Context, _ uuid.UUID) (*entity.Preferences, error) {
	prefs := s.prefs
	return &prefs, nil
}

func (s *fakePreferenceStore) Save(_ context.Context, _ uuid.UUID, _ entity.Preferences) error {
	return nil
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestSummarize(t *testing.T) {
	userID := uuid.New()
	incomes := []*entity.Income{
		entity.NewIncome(userID, decimal.NewFromInt(5000), entity.IncomeCategorySalary, "", day(2024, time.June, 1)),
	}
	expenses := []*entity.Expense{
		entity.NewExpense(userID, decimal.NewFromInt(150), entity.ExpenseCategoryFood, entity.PaymentMethodUPI, "", day(2024, time.June, 5)),
	}
	investments := []*entity.Investment{
		entity.NewInvestment(userID, "Index fund", entity.InvestmentCategoryMutualFunds, decimal.NewFromInt(10), decimal.NewFromInt(50), day(2024, time.June, 10)),
	}
	subscriptions := []*entity.Subscription{
		entity.NewSubscription(userID, "Netflix", decimal.NewFromFloat(9.99), entity.BillingCycleMonthly, day(2024, time.January, 1), entity.SubscriptionStatusActive, ""),
		entity.NewSubscription(userID, "Cloud backup", decimal.NewFromInt(120), entity.BillingCycleYearly, day(2024, time.January, 1), entity.SubscriptionStatusActive, ""),
	}

	s := Summarize(incomes, expenses, investments, subscriptions, DateRange{})

	if want := decimal.NewFromInt(5000); !s.TotalIncome.Equal(want) {
		t.Errorf("TotalIncome = %s, want %s", s.TotalIncome, want)
	}
	if want := decimal.NewFromInt(150); !s.TotalExpenses.Equal(want) {
		t.Errorf("TotalExpenses = %s, want %s", s.TotalExpenses, want)
	}
	if want := decimal.NewFromInt(500); !s.TotalInvestments.Equal(want) {
		t.Errorf("TotalInvestments = %s, want %s", s.TotalInvestments, want)
	}
	// 9.99 monthly plus 120/12 yearly gives a 19.99 recurring cost.
	if want := decimal.NewFromFloat(4830.01); !s.TotalSavings.Equal(want) {
		t.Errorf("TotalSavings = %s, want %s", s.TotalSavings, want)
	}
	if want := decimal.NewFromFloat(4330.01); !s.AvailableBalance.Equal(want) {
		t.Errorf("AvailableBalance = %s, want %s", s.AvailableBalance, want)
	}
	if !s.AvailableBalance.Equal(s.TotalSavings.Sub(s.TotalInvestments)) {
		t.Error("AvailableBalance must equal TotalSavings minus TotalInvestments")
	}
}

func TestSummarizeSkipsInactiveAndQuarterly(t *testing.T) {
	userID := uuid.New()
	subscriptions := []*entity.Subscription{
		entity.NewSubscription(userID, "Cancelled", decimal.NewFromInt(50), entity.BillingCycleMonthly, day(2024, time.January, 1), entity.SubscriptionStatusCancelled, ""),
		entity.NewSubscription(userID, "Quarterly box", decimal.NewFromInt(30), entity.BillingCycleQuarterly, day(2024, time.January, 1), entity.SubscriptionStatusActive, ""),
	}

	s := Summarize(nil, nil, nil, subscriptions, DateRange{})

	if !s.MonthlySubscriptionCost.IsZero() {
		t.Errorf("MonthlySubscriptionCost = %s, want 0", s.MonthlySubscriptionCost)
	}
	if !s.YearlySubscriptionCost.IsZero() {
		t.Errorf("YearlySubscriptionCost = %s, want 0", s.YearlySubscriptionCost)
	}
}

func TestSummarizeDateWindow(t *testing.T) {
	userID := uuid.New()
	from := day(2024, time.June, 1)
	to := day(2024, time.June, 30)
	incomes := []*entity.Income{
		entity.NewIncome(userID, decimal.NewFromInt(100), entity.IncomeCategorySalary, "lower bound", from),
		entity.NewIncome(userID, decimal.NewFromInt(200), entity.IncomeCategorySalary, "upper bound", to),
		entity.NewIncome(userID, decimal.NewFromInt(400), entity.IncomeCategorySalary, "outside", day(2024, time.July, 1)),
	}

	s := Summarize(incomes, nil, nil, nil, DateRange{From: &from, To: &to})

	// Both bounds are inclusive.
	if want := decimal.NewFromInt(300); !s.TotalIncome.Equal(want) {
		t.Errorf("TotalIncome = %s, want %s", s.TotalIncome, want)
	}
}

func TestSummarizeOpenEndedRange(t *testing.T) {
	userID := uuid.New()
	from := day(2024, time.June, 1)
	incomes := []*entity.Income{
		entity.NewIncome(userID, decimal.NewFromInt(100), entity.IncomeCategorySalary, "before", day(2024, time.May, 1)),
		entity.NewIncome(userID, decimal.NewFromInt(200), entity.IncomeCategorySalary, "after", day(2024, time.December, 1)),
	}

	s := Summarize(incomes, nil, nil, nil, DateRange{From: &from})

	if want := decimal.NewFromInt(200); !s.TotalIncome.Equal(want) {
		t.Errorf("TotalIncome = %s, want %s", s.TotalIncome, want)
	}
}

func TestGetSummaryRejectsInvertedRange(t *testing.T) {
	uc := NewGetSummaryUseCase(&fakeIncomeStore{}, &fakeExpenseStore{}, &fakeInvestmentStore{}, &fakeSubscriptionStore{}, &fakePreferenceStore{prefs: *entity.DefaultPreferences()})

	from := day(2024, time.June, 30)
	to := day(2024, time.June, 1)
	_, err := uc.Execute(context.Background(), GetSummaryInput{
		UserID: uuid.New(),
		Range:  DateRange{From: &from, To: &to},
	})
	if err == nil {
		t.Fatal("expected an error for an inverted range")
	}
}

func TestGetSummaryFormatsWithPreferredCurrency(t *testing.T) {
	userID := uuid.New()
	incomes := &fakeIncomeStore{incomes: []*entity.Income{
		entity.NewIncome(userID, decimal.NewFromInt(5000), entity.IncomeCategorySalary, "", day(2024, time.June, 1)),
	}}
	prefs := &fakePreferenceStore{prefs: entity.Preferences{Currency: entity.CurrencyUSD, DateFormat: entity.DateFormatMDY}}

	uc := NewGetSummaryUseCase(incomes, &fakeExpenseStore{}, &fakeInvestmentStore{}, &fakeSubscriptionStore{}, prefs)
	output, err := uc.Execute(context.Background(), GetSummaryInput{UserID: userID})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if output.Currency != entity.CurrencyUSD {
		t.Errorf("Currency = %s, want USD", output.Currency)
	}
	if output.Formatted.TotalIncome == "" {
		t.Error("expected a formatted income figure")
	}
	if output.Formatted.TotalIncome == output.Summary.TotalIncome.String() {
		t.Error("formatted figure must carry a currency marker")
	}
}

func TestRecentTransactions(t *testing.T) {
	userID := uuid.New()
	incomes := &fakeIncomeStore{incomes: []*entity.Income{
		entity.NewIncome(userID, decimal.NewFromInt(5000), entity.IncomeCategorySalary, "salary", day(2024, time.June, 1)),
		entity.NewIncome(userID, decimal.NewFromInt(300), entity.IncomeCategoryFreelance, "gig", day(2024, time.June, 20)),
	}}
	expenses := &fakeExpenseStore{expenses: []*entity.Expense{
		entity.NewExpense(userID, decimal.NewFromInt(150), entity.ExpenseCategoryFood, entity.PaymentMethodUPI, "dinner", day(2024, time.June, 25)),
		entity.NewExpense(userID, decimal.NewFromInt(40), entity.ExpenseCategoryTravel, entity.PaymentMethodCash, "cab", day(2024, time.June, 5)),
	}}
	investments := &fakeInvestmentStore{investments: []*entity.Investment{
		entity.NewInvestment(userID, "Index fund", entity.InvestmentCategoryMutualFunds, decimal.NewFromInt(10), decimal.NewFromInt(50), day(2024, time.June, 15)),
		entity.NewInvestment(userID, "Gold", entity.InvestmentCategoryGold, decimal.NewFromInt(1), decimal.NewFromInt(200), day(2024, time.June, 10)),
	}}

	uc := NewRecentTransactionsUseCase(incomes, expenses, investments)
	output, err := uc.Execute(context.Background(), RecentTransactionsInput{UserID: userID})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if len(output.Transactions) != 5 {
		t.Fatalf("len(Transactions) = %d, want 5", len(output.Transactions))
	}

	// Newest first, across all three kinds.
	wantKinds := []string{
		TransactionKindExpense,    // June 25
		TransactionKindIncome,     // June 20
		TransactionKindInvestment, // June 15
		TransactionKindInvestment, // June 10
		TransactionKindExpense,    // June 5
	}
	for i, want := range wantKinds {
		if output.Transactions[i].Kind != want {
			t.Errorf("Transactions[%d].Kind = %s, want %s", i, output.Transactions[i].Kind, want)
		}
	}
	for i := 1; i < len(output.Transactions); i++ {
		if output.Transactions[i].Date.After(output.Transactions[i-1].Date) {
			t.Errorf("feed not sorted newest first at index %d", i)
		}
	}
}

func TestRecentTransactionsDateWindow(t *testing.T) {
	userID := uuid.New()
	incomes := &fakeIncomeStore{incomes: []*entity.Income{
		entity.NewIncome(userID, decimal.NewFromInt(5000), entity.IncomeCategorySalary, "salary", day(2024, time.June, 1)),
		entity.NewIncome(userID, decimal.NewFromInt(300), entity.IncomeCategoryFreelance, "gig", day(2024, time.June, 20)),
	}}

	from := day(2024, time.June, 10)
	uc := NewRecentTransactionsUseCase(incomes, &fakeExpenseStore{}, &fakeInvestmentStore{})
	output, err := uc.Execute(context.Background(), RecentTransactionsInput{
		UserID: userID,
		Range:  DateRange{From: &from},
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if len(output.Transactions) != 1 {
		t.Fatalf("len(Transactions) = %d, want 1", len(output.Transactions))
	}
	if output.Transactions[0].Label != "gig" {
		t.Errorf("Transactions[0].Label = %s, want gig", output.Transactions[0].Label)
	}
}

func TestRecentTransactionsRejectsInvertedRange(t *testing.T) {
	uc := NewRecentTransactionsUseCase(&fakeIncomeStore{}, &fakeExpenseStore{}, &fakeInvestmentStore{})

	from := day(2024, time.June, 30)
	to := day(2024, time.June, 1)
	_, err := uc.Execute(context.Background(), RecentTransactionsInput{
		UserID: uuid.New(),
		Range:  DateRange{From: &from, To: &to},
	})
	if err == nil {
		t.Fatal("expected an error for an inverted range")
	}
}

func TestRecentTransactionsFewerThanLimit(t *testing.T) {
	userID := uuid.New()
	incomes := &fakeIncomeStore{incomes: []*entity.Income{
		entity.NewIncome(userID, decimal.NewFromInt(5000), entity.IncomeCategorySalary, "salary", day(2024, time.June, 1)),
	}}

	uc := NewRecentTransactionsUseCase(incomes, &fakeExpenseStore{}, &fakeInvestmentStore{})
	output, err := uc.Execute(context.Background(), RecentTransactionsInput{UserID: userID})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if len(output.Transactions) != 1 {
		t.Errorf("len(Transactions) = %d, want 1", len(output.Transactions))
	}
}

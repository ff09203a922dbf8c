package expense

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintrack/backend/internal/domain/entity"
	domainerror "github.com/fintrack/backend/internal/domain/error"
)

type fakeExpenseRepository struct {
	expenses map[uuid.UUID]*entity.Expense
	deleted  []uuid.UUID
}

func newFakeExpenseRepository() *fakeExpenseRepository {
	return &fakeExpenseRepository{expenses: make(map[uuid.UUID]*entity.Expense)}
}

func (r *fakeExpenseRepository) Create(_ context.Context, expense *entity.Expense) error {
	r.expenses[expense.ID] = expense
	return nil
}

func (r *fakeExpenseRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Expense, error) {
	expense, ok := r.expenses[id]
	if !ok {
		return nil, domainerror.ErrEntryNotFound
	}
	return expense, nil
}

func (r *fakeExpenseRepository) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Expense, error) {
	var out []*entity.Expense
	for _, expense := range r.expenses {
		if expense.UserID == userID {
			out = append(out, expense)
		}
	}
	return out, nil
}

func (r *fakeExpenseRepository) Update(_ context.Context, expense *entity.Expense) error {
	r.expenses[expense.ID] = expense
	return nil
}

func (r *fakeExpenseRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.deleted = append(r.deleted, id)
	delete(r.expenses, id)
	return nil
}

func (r *fakeExpenseRepository) SumAmountByUser(_ context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, expense := range r.expenses {
		if expense.UserID == userID {
			total = total.Add(expense.Amount)
		}
	}
	return total, nil
}

func TestAddExpense(t *testing.T) {
	repo := newFakeExpenseRepository()
	uc := NewAddExpenseUseCase(repo)
	userID := uuid.New()

	output, err := uc.Execute(context.Background(), AddExpenseInput{
		UserID:      userID,
		Amount:      decimal.NewFromFloat(150.75),
		Category:    entity.ExpenseCategoryGrocery,
		PaidVia:     entity.PaymentMethodUPI,
		Description: "weekly shop",
		Date:        time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if output.Expense.PaidVia != entity.PaymentMethodUPI {
		t.Errorf("PaidVia = %s, want upi", output.Expense.PaidVia)
	}
	if len(repo.expenses) != 1 {
		t.Errorf("stored expenses = %d, want 1", len(repo.expenses))
	}
}

func TestAddExpenseValidation(t *testing.T) {
	valid := AddExpenseInput{
		UserID:   uuid.New(),
		Amount:   decimal.NewFromInt(50),
		Category: entity.ExpenseCategoryFood,
		PaidVia:  entity.PaymentMethodCash,
		Date:     time.Now(),
	}

	tests := []struct {
		name    string
		mutate  func(input *AddExpenseInput)
		wantErr error
	}{
		{
			name:    "zero amount",
			mutate:  func(input *AddExpenseInput) { input.Amount = decimal.Zero },
			wantErr: domainerror.ErrInvalidAmount,
		},
		{
			name:    "unknown category",
			mutate:  func(input *AddExpenseInput) { input.Category = entity.ExpenseCategory("fuel") },
			wantErr: domainerror.ErrInvalidCategory,
		},
		{
			name:    "unknown payment method",
			mutate:  func(input *AddExpenseInput) { input.PaidVia = entity.PaymentMethod("cheque") },
			wantErr: domainerror.ErrInvalidPaymentMethod,
		},
		{
			name:    "missing date",
			mutate:  func(input *AddExpenseInput) { input.Date = time.Time{} },
			wantErr: domainerror.ErrInvalidEntryDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeExpenseRepository()
			uc := NewAddExpenseUseCase(repo)

			input := valid
			tt.mutate(&input)

			_, err := uc.Execute(context.Background(), input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Execute() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestEditExpenseReplacesAllFields(t *testing.T) {
	repo := newFakeExpenseRepository()
	userID := uuid.New()
	expense := entity.NewExpense(userID, decimal.NewFromInt(40), entity.ExpenseCategoryFood, entity.PaymentMethodCash, "lunch", time.Now())
	repo.expenses[expense.ID] = expense

	uc := NewEditExpenseUseCase(repo)
	output, err := uc.Execute(context.Background(), EditExpenseInput{
		ExpenseID:   expense.ID,
		UserID:      userID,
		Amount:      decimal.NewFromInt(1200),
		Category:    entity.ExpenseCategoryRent,
		PaidVia:     entity.PaymentMethodNetBanking,
		Description: "june rent",
		Date:        time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	got := output.Expense
	if got.Category != entity.ExpenseCategoryRent {
		t.Errorf("Category = %s, want rent", got.Category)
	}
	if got.PaidVia != entity.PaymentMethodNetBanking {
		t.Errorf("PaidVia = %s, want net_banking", got.PaidVia)
	}
	if !got.Amount.Equal(decimal.NewFromInt(1200)) {
		t.Errorf("Amount = %s, want 1200", got.Amount)
	}
}

func TestEditExpenseNotOwner(t *testing.T) {
	repo := newFakeExpenseRepository()
	expense := entity.NewExpense(uuid.New(), decimal.NewFromInt(40), entity.ExpenseCategoryFood, entity.PaymentMethodCash, "", time.Now())
	repo.expenses[expense.ID] = expense

	uc := NewEditExpenseUseCase(repo)
	_, err := uc.Execute(context.Background(), EditExpenseInput{
		ExpenseID: expense.ID,
		UserID:    uuid.New(),
		Amount:    decimal.NewFromInt(1),
		Category:  entity.ExpenseCategoryFood,
		PaidVia:   entity.PaymentMethodCash,
		Date:      time.Now(),
	})
	if !errors.Is(err, domainerror.ErrNotEntryOwner) {
		t.Errorf("Execute() error = %v, want %v", err, domainerror.ErrNotEntryOwner)
	}
}

func TestDeleteExpenseNotOwner(t *testing.T) {
	repo := newFakeExpenseRepository()
	expense := entity.NewExpense(uuid.New(), decimal.NewFromInt(40), entity.ExpenseCategoryFood, entity.PaymentMethodCash, "", time.Now())
	repo.expenses[expense.ID] = expense

	uc := NewDeleteExpenseUseCase(repo)
	_, err := uc.Execute(context.Background(), DeleteExpenseInput{ExpenseID: expense.ID, UserID: uuid.New()})
	if !errors.Is(err, domainerror.ErrNotEntryOwner) {
		t.Errorf("Execute() error = %v, want %v", err, domainerror.ErrNotEntryOwner)
	}
	if len(repo.deleted) != 0 {
		t.Error("delete must not be issued for a foreign expense")
	}
}

func TestListExpenses(t *testing.T) {
	repo := newFakeExpenseRepository()
	userID := uuid.New()
	first := entity.NewExpense(userID, decimal.NewFromFloat(150.25), entity.ExpenseCategoryGrocery, entity.PaymentMethodUPI, "", time.Now())
	second := entity.NewExpense(userID, decimal.NewFromFloat(49.75), entity.ExpenseCategoryEntertainment, entity.PaymentMethodCreditCard, "", time.Now())
	repo.expenses[first.ID] = first
	repo.expenses[second.ID] = second

	uc := NewListExpensesUseCase(repo)
	output, err := uc.Execute(context.Background(), ListExpensesInput{UserID: userID})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if len(output.Expenses) != 2 {
		t.Errorf("len(Expenses) = %d, want 2", len(output.Expenses))
	}
	if want := decimal.NewFromInt(200); !output.Total.Equal(want) {
		t.Errorf("Total = %s, want %s", output.Total, want)
	}
}

package investment

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

type fakeInvestmentRepository struct {
	investments map[uuid.UUID]*entity.Investment
	deleted     []uuid.UUID
}

func newFakeInvestmentRepository() *fakeInvestmentRepository {
	return &fakeInvestmentRepository{investments: make(map[uuid.UUID]*entity.Investment)}
}

func (r *fakeInvestmentRepository) Create(_ context.Context, investment *entity.Investment) error {
	r.investments[investment.ID] = investment
	return nil
}

func (r *fakeInvestmentRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Investment, error) {
	investment, ok := r.investments[id]
	if !ok {
		return nil, domainerror.ErrEntryNotFound
	}
	return investment, nil
}

func (r *fakeInvestmentRepository) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Investment, error) {
	var out []*entity.Investment
	for _, investment := range r.investments {
		if investment.UserID == userID {
			out = append(out, investment)
		}
	}
	return out, nil
}

func (r *fakeInvestmentRepository) Update(_ context.Context, investment *entity.Investment) error {
	r.investments[investment.ID] = investment
	return nil
}

func (r *fakeInvestmentRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.deleted = append(r.deleted, id)
	delete(r.investments, id)
	return nil
}

func (r *fakeInvestmentRepository) SumAmountByUser(_ context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, investment := range r.investments {
		if investment.UserID == userID {
			total = total.Add(investment.Amount)
		}
	}
	return total, nil
}

func TestAddInvestmentDerivesAmount(t *testing.T) {
	repo := newFakeInvestmentRepository()
	uc := NewAddInvestmentUseCase(repo)

	output, err := uc.Execute(context.Background(), AddInvestmentInput{
		UserID:   uuid.New(),
		Name:     "NIFTY 50 Index Fund",
		Category: entity.InvestmentCategoryMutualFunds,
		Units:    decimal.NewFromInt(10),
		Price:    decimal.NewFromFloat(25.5),
		Date:     time.Date(2024, time.May, 20, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if want := decimal.NewFromInt(255); !output.Investment.Amount.Equal(want) {
		t.Errorf("Amount = %s, want %s", output.Investment.Amount, want)
	}
}

func TestAddInvestmentValidation(t *testing.T) {
	valid := AddInvestmentInput{
		UserID:   uuid.New(),
		Name:     "Gold ETF",
		Category: entity.InvestmentCategoryGold,
		Units:    decimal.NewFromInt(5),
		Price:    decimal.NewFromInt(100),
		Date:     time.Now(),
	}

	tests := []struct {
		name    string
		mutate  func(input *AddInvestmentInput)
		wantErr error
	}{
		{
			name:    "blank name",
			mutate:  func(input *AddInvestmentInput) { input.Name = "   " },
			wantErr: domainerror.ErrEmptyName,
		},
		{
			name:    "unknown category",
			mutate:  func(input *AddInvestmentInput) { input.Category = entity.InvestmentCategory("nft") },
			wantErr: domainerror.ErrInvalidCategory,
		},
		{
			name:    "zero units",
			mutate:  func(input *AddInvestmentInput) { input.Units = decimal.Zero },
			wantErr: domainerror.ErrInvalidUnits,
		},
		{
			name:    "negative price",
			mutate:  func(input *AddInvestmentInput) { input.Price = decimal.NewFromInt(-1) },
			wantErr: domainerror.ErrInvalidPrice,
		},
		{
			name:    "missing date",
			mutate:  func(input *AddInvestmentInput) { input.Date = time.Time{} },
			wantErr: domainerror.ErrInvalidEntryDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeInvestmentRepository()
			uc := NewAddInvestmentUseCase(repo)

			input := valid
			tt.mutate(&input)

			_, err := uc.Execute(context.Background(), input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Execute() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestEditInvestmentRecomputesAmount(t *testing.T) {
	repo := newFakeInvestmentRepository()
	userID := uuid.New()
	investment := entity.NewInvestment(userID, "NIFTY 50 Index Fund", entity.InvestmentCategoryMutualFunds, decimal.NewFromInt(10), decimal.NewFromFloat(25.5), time.Now())
	repo.investments[investment.ID] = investment

	uc := NewEditInvestmentUseCase(repo)
	output, err := uc.Execute(context.Background(), EditInvestmentInput{
		InvestmentID: investment.ID,
		UserID:       userID,
		Name:         investment.Name,
		Category:     investment.Category,
		Units:        decimal.NewFromInt(20),
		Price:        decimal.NewFromFloat(25.5),
		Date:         investment.Date,
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if want := decimal.NewFromInt(510); !output.Investment.Amount.Equal(want) {
		t.Errorf("Amount = %s, want %s", output.Investment.Amount, want)
	}
}

func TestEditInvestmentNotOwner(t *testing.T) {
	repo := newFakeInvestmentRepository()
	investment := entity.NewInvestment(uuid.New(), "Gold ETF", entity.InvestmentCategoryGold, decimal.NewFromInt(1), decimal.NewFromInt(100), time.Now())
	repo.investments[investment.ID] = investment

	uc := NewEditInvestmentUseCase(repo)
	_, err := uc.Execute(context.Background(), EditInvestmentInput{
		InvestmentID: investment.ID,
		UserID:       uuid.New(),
		Name:         "Gold ETF",
		Category:     entity.InvestmentCategoryGold,
		Units:        decimal.NewFromInt(1),
		Price:        decimal.NewFromInt(100),
		Date:         time.Now(),
	})
	if !errors.Is(err, domainerror.ErrNotEntryOwner) {
		t.Errorf("Execute() error = %v, want %v", err, domainerror.ErrNotEntryOwner)
	}
}

func TestDeleteInvestmentNotOwner(t *testing.T) {
	repo := newFakeInvestmentRepository()
	investment := entity.NewInvestment(uuid.New(), "Gold ETF", entity.InvestmentCategoryGold, decimal.NewFromInt(1), decimal.NewFromInt(100), time.Now())
	repo.investments[investment.ID] = investment

	uc := NewDeleteInvestmentUseCase(repo)
	_, err := uc.Execute(context.Background(), DeleteInvestmentInput{InvestmentID: investment.ID, UserID: uuid.New()})
	if !errors.Is(err, domainerror.ErrNotEntryOwner) {
		t.Errorf("Execute() error = %v, want %v", err, domainerror.ErrNotEntryOwner)
	}
	if len(repo.deleted) != 0 {
		t.Error("delete must not be issued for a foreign investment")
	}
}

func TestListInvestments(t *testing.T) {
	repo := newFakeInvestmentRepository()
	userID := uuid.New()
	first := entity.NewInvestment(userID, "Stocks", entity.InvestmentCategoryStocks, decimal.NewFromInt(2), decimal.NewFromInt(300), time.Now())
	second := entity.NewInvestment(userID, "Bond fund", entity.InvestmentCategoryBonds, decimal.NewFromInt(4), decimal.NewFromInt(100), time.Now())
	repo.investments[first.ID] = first
	repo.investments[second.ID] = second

	uc := NewListInvestmentsUseCase(repo)
	output, err := uc.Execute(context.Background(), ListInvestmentsInput{UserID: userID})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if len(output.Investments) != 2 {
		t.Errorf("len(Investments) = %d, want 2", len(output.Investments))
	}
	if want := decimal.NewFromInt(1000); !output.Total.Equal(want) {
		t.Errorf("Total = %s, want %s", output.Total, want)
	}
}

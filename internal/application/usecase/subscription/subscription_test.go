package subscription

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

type fakeSubscriptionRepository struct {
	subscriptions map[uuid.UUID]*entity.Subscription
	deleted       []uuid.UUID
}

func newFakeSubscriptionRepository() *fakeSubscriptionRepository {
	return &fakeSubscriptionRepository{subscriptions: make(map[uuid.UUID]*entity.Subscription)}
}

func (r *fakeSubscriptionRepository) Create(_ context.Context, subscription *entity.Subscription) error {
	r.subscriptions[subscription.ID] = subscription
	return nil
}

func (r *fakeSubscriptionRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Subscription, error) {
	subscription, ok := r.subscriptions[id]
	if !ok {
		return nil, domainerror.ErrEntryNotFound
	}
	return subscription, nil
}

func (r *fakeSubscriptionRepository) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Subscription, error) {
	var out []*entity.Subscription
	for _, subscription := range r.subscriptions {
		if subscription.UserID == userID {
			out = append(out, subscription)
		}
	}
	return out, nil
}

func (r *fakeSubscriptionRepository) Update(_ context.Context, subscription *entity.Subscription) error {
	r.subscriptions[subscription.ID] = subscription
	return nil
}

func (r *fakeSubscriptionRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.deleted = append(r.deleted, id)
	delete(r.subscriptions, id)
	return nil
}

func (r *fakeSubscriptionRepository) SumAmountByUser(_ context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, subscription := range r.subscriptions {
		if subscription.UserID == userID {
			total = total.Add(subscription.Amount)
		}
	}
	return total, nil
}

func TestAddSubscription(t *testing.T) {
	repo := newFakeSubscriptionRepository()
	uc := NewAddSubscriptionUseCase(repo)

	output, err := uc.Execute(context.Background(), AddSubscriptionInput{
		UserID:       uuid.New(),
		Name:         "Netflix",
		Amount:       decimal.NewFromFloat(9.99),
		BillingCycle: entity.BillingCycleMonthly,
		StartDate:    time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		Status:       entity.SubscriptionStatusActive,
		Notes:        "family plan",
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if output.Subscription.BillingCycle != entity.BillingCycleMonthly {
		t.Errorf("BillingCycle = %s, want monthly", output.Subscription.BillingCycle)
	}
	if len(repo.subscriptions) != 1 {
		t.Errorf("stored subscriptions = %d, want 1", len(repo.subscriptions))
	}
}

func TestAddSubscriptionValidation(t *testing.T) {
	valid := AddSubscriptionInput{
		UserID:       uuid.New(),
		Name:         "Spotify",
		Amount:       decimal.NewFromFloat(4.99),
		BillingCycle: entity.BillingCycleMonthly,
		StartDate:    time.Now(),
		Status:       entity.SubscriptionStatusActive,
	}

	tests := []struct {
		name    string
		mutate  func(input *AddSubscriptionInput)
		wantErr error
	}{
		{
			name:    "blank name",
			mutate:  func(input *AddSubscriptionInput) { input.Name = "  " },
			wantErr: domainerror.ErrEmptyName,
		},
		{
			name:    "zero amount",
			mutate:  func(input *AddSubscriptionInput) { input.Amount = decimal.Zero },
			wantErr: domainerror.ErrInvalidAmount,
		},
		{
			name:    "unknown billing cycle",
			mutate:  func(input *AddSubscriptionInput) { input.BillingCycle = entity.BillingCycle("weekly") },
			wantErr: domainerror.ErrInvalidBillingCycle,
		},
		{
			name:    "unknown status",
			mutate:  func(input *AddSubscriptionInput) { input.Status = entity.SubscriptionStatus("paused") },
			wantErr: domainerror.ErrInvalidSubscriptionStatus,
		},
		{
			name:    "missing start date",
			mutate:  func(input *AddSubscriptionInput) { input.StartDate = time.Time{} },
			wantErr: domainerror.ErrInvalidEntryDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeSubscriptionRepository()
			uc := NewAddSubscriptionUseCase(repo)

			input := valid
			tt.mutate(&input)

			_, err := uc.Execute(context.Background(), input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Execute() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestEditSubscriptionCancellation(t *testing.T) {
	repo := newFakeSubscriptionRepository()
	userID := uuid.New()
	subscription := entity.NewSubscription(userID, "Netflix", decimal.NewFromFloat(9.99), entity.BillingCycleMonthly, time.Now(), entity.SubscriptionStatusActive, "")
	repo.subscriptions[subscription.ID] = subscription

	uc := NewEditSubscriptionUseCase(repo)
	output, err := uc.Execute(context.Background(), EditSubscriptionInput{
		SubscriptionID: subscription.ID,
		UserID:         userID,
		Name:           subscription.Name,
		Amount:         subscription.Amount,
		BillingCycle:   subscription.BillingCycle,
		StartDate:      subscription.StartDate,
		Status:         entity.SubscriptionStatusCancelled,
		Notes:          "cancelled in June",
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if output.Subscription.Status != entity.SubscriptionStatusCancelled {
		t.Errorf("Status = %s, want cancelled", output.Subscription.Status)
	}
	if output.Subscription.Notes != "cancelled in June" {
		t.Errorf("Notes = %q, want %q", output.Subscription.Notes, "cancelled in June")
	}
}

func TestEditSubscriptionNotOwner(t *testing.T) {
	repo := newFakeSubscriptionRepository()
	subscription := entity.NewSubscription(uuid.New(), "Netflix", decimal.NewFromFloat(9.99), entity.BillingCycleMonthly, time.Now(), entity.SubscriptionStatusActive, "")
	repo.subscriptions[subscription.ID] = subscription

	uc := NewEditSubscriptionUseCase(repo)
	_, err := uc.Execute(context.Background(), EditSubscriptionInput{
		SubscriptionID: subscription.ID,
		UserID:         uuid.New(),
		Name:           "Netflix",
		Amount:         decimal.NewFromFloat(9.99),
		BillingCycle:   entity.BillingCycleMonthly,
		StartDate:      time.Now(),
		Status:         entity.SubscriptionStatusActive,
	})
	if !errors.Is(err, domainerror.ErrNotEntryOwner) {
		t.Errorf("Execute() error = %v, want %v", err, domainerror.ErrNotEntryOwner)
	}
}

func TestDeleteSubscriptionNotOwner(t *testing.T) {
	repo := newFakeSubscriptionRepository()
	subscription := entity.NewSubscription(uuid.New(), "Netflix", decimal.NewFromFloat(9.99), entity.BillingCycleMonthly, time.Now(), entity.SubscriptionStatusActive, "")
	repo.subscriptions[subscription.ID] = subscription

	uc := NewDeleteSubscriptionUseCase(repo)
	_, err := uc.Execute(context.Background(), DeleteSubscriptionInput{SubscriptionID: subscription.ID, UserID: uuid.New()})
	if !errors.Is(err, domainerror.ErrNotEntryOwner) {
		t.Errorf("Execute() error = %v, want %v", err, domainerror.ErrNotEntryOwner)
	}
	if len(repo.deleted) != 0 {
		t.Error("delete must not be issued for a foreign subscription")
	}
}

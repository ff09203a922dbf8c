// Package subscription contains subscription entry use cases.
package subscription

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintrack/backend/internal/application/adapter"
	"github.com/fintrack/backend/internal/domain/entity"
)

// ListSubscriptionsInput represents the input for listing a user's subscriptions.
type ListSubscriptionsInput struct {
	UserID uuid.UUID
}

// ListSubscriptionsOutput represents the output of listing subscriptions.
type ListSubscriptionsOutput struct {
	Subscriptions []*entity.Subscription
	Total         decimal.Decimal
}

// ListSubscriptionsUseCase handles subscription listing logic.
type ListSubscriptionsUseCase struct {
	subscriptionRepo adapter.SubscriptionRepository
}

// NewListSubscriptionsUseCase creates a new ListSubscriptionsUseCase instance.
func NewListSubscriptionsUseCase(subscriptionRepo adapter.SubscriptionRepository) *ListSubscriptionsUseCase {
	return &ListSubscriptionsUseCase{
		subscriptionRepo: subscriptionRepo,
	}
}

// Execute retrieves all subscriptions owned by the user along with the sum of their amounts.
func (uc *ListSubscriptionsUseCase) Execute(ctx context.Context, input ListSubscriptionsInput) (*ListSubscriptionsOutput, error) {
	subscriptions, err := uc.subscriptionRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}

	total, err := uc.subscriptionRepo.SumAmountByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to total subscriptions: %w", err)
	}

	return &ListSubscriptionsOutput{
		Subscriptions: subscriptions,
		Total:         total,
	}, nil
}

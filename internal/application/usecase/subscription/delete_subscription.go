// Package subscription contains subscription entry use cases.
package subscription

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/fintrack/backend/internal/application/adapter"
	domainerror "github.com/fintrack/backend/internal/domain/error"
)

// DeleteSubscriptionInput represents the input for subscription deletion.
type DeleteSubscriptionInput struct {
	SubscriptionID uuid.UUID
	UserID         uuid.UUID
}

// DeleteSubscriptionOutput represents the output of subscription deletion.
type DeleteSubscriptionOutput struct {
	Success bool
}

// DeleteSubscriptionUseCase handles subscription deletion logic.
type DeleteSubscriptionUseCase struct {
	subscriptionRepo adapter.SubscriptionRepository
}

// NewDeleteSubscriptionUseCase creates a new DeleteSubscriptionUseCase instance.
func NewDeleteSubscriptionUseCase(subscriptionRepo adapter.SubscriptionRepository) *DeleteSubscriptionUseCase {
	return &DeleteSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
	}
}

// Execute performs the subscription deletion.
func (uc *DeleteSubscriptionUseCase) Execute(ctx context.Context, input DeleteSubscriptionInput) (*DeleteSubscriptionOutput, error) {
	subscription, err := uc.subscriptionRepo.FindByID(ctx, input.SubscriptionID)
	if err != nil {
		if errors.Is(err, domainerror.ErrEntryNotFound) {
			return nil, domainerror.NewEntryError(
				domainerror.ErrCodeEntryNotFound,
				"subscription not found",
				domainerror.ErrEntryNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find subscription: %w", err)
	}

	// Ownership is checked before the delete is issued.
	if subscription.UserID != input.UserID {
		return nil, domainerror.NewEntryError(
			domainerror.ErrCodeNotEntryOwner,
			"not authorized to delete this subscription",
			domainerror.ErrNotEntryOwner,
		)
	}

	if err := uc.subscriptionRepo.Delete(ctx, input.SubscriptionID); err != nil {
		return nil, fmt.Errorf("failed to delete subscription: %w", err)
	}

	return &DeleteSubscriptionOutput{Success: true}, nil
}

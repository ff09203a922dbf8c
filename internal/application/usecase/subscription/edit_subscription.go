// Package subscription contains subscription entry use cases.
package subscription

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintrack/backend/internal/application/adapter"
	"github.com/fintrack/backend/internal/domain/entity"
	domainerror "github.com/fintrack/backend/internal/domain/error"
)

// EditSubscriptionInput represents the input for a subscription edit.
// Edits are full-field replacements of the stored row.
type EditSubscriptionInput struct {
	SubscriptionID uuid.UUID
	UserID         uuid.UUID
	Name           string
	Amount         decimal.Decimal
	BillingCycle   entity.BillingCycle
	StartDate      time.Time
	Status         entity.SubscriptionStatus
	Notes          string
}

// EditSubscriptionOutput represents the output of a subscription edit.
type EditSubscriptionOutput struct {
	Subscription *entity.Subscription
}

// EditSubscriptionUseCase handles subscription edit logic.
type EditSubscriptionUseCase struct {
	subscriptionRepo adapter.SubscriptionRepository
}

// NewEditSubscriptionUseCase creates a new EditSubscriptionUseCase instance.
func NewEditSubscriptionUseCase(subscriptionRepo adapter.SubscriptionRepository) *EditSubscriptionUseCase {
	return &EditSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
	}
}

// Execute performs the subscription edit.
func (uc *EditSubscriptionUseCase) Execute(ctx context.Context, input EditSubscriptionInput) (*EditSubscriptionOutput, error) {
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

	// Ownership is checked before any write is issued.
	if subscription.UserID != input.UserID {
		return nil, domainerror.NewEntryError(
			domainerror.ErrCodeNotEntryOwner,
			"not authorized to update this subscription",
			domainerror.ErrNotEntryOwner,
		)
	}

	if err := validateSubscriptionFields(input.Name, input.Amount, input.BillingCycle, input.Status, input.StartDate); err != nil {
		return nil, err
	}

	subscription.Name = strings.TrimSpace(input.Name)
	subscription.Amount = input.Amount
	subscription.BillingCycle = input.BillingCycle
	subscription.StartDate = input.StartDate
	subscription.Status = input.Status
	subscription.Notes = input.Notes
	subscription.UpdatedAt = time.Now().UTC()

	if err := uc.subscriptionRepo.Update(ctx, subscription); err != nil {
		return nil, fmt.Errorf("failed to update subscription: %w", err)
	}

	return &EditSubscriptionOutput{Subscription: subscription}, nil
}

// Package subscription contains subscription entry use cases.
package subscription

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintrack/backend/internal/application/adapter"
	"github.com/fintrack/backend/internal/domain/entity"
	domainerror "github.com/fintrack/backend/internal/domain/error"
)

// AddSubscriptionInput represents the input for subscription creation.
type AddSubscriptionInput struct {
	UserID       uuid.UUID
	Name         string
	Amount       decimal.Decimal
	BillingCycle entity.BillingCycle
	StartDate    time.Time
	Status       entity.SubscriptionStatus
	Notes        string
}

// AddSubscriptionOutput represents the output of subscription creation.
type AddSubscriptionOutput struct {
	Subscription *entity.Subscription
}

// AddSubscriptionUseCase handles subscription creation logic.
type AddSubscriptionUseCase struct {
	subscriptionRepo adapter.SubscriptionRepository
}

// NewAddSubscriptionUseCase creates a new AddSubscriptionUseCase instance.
func NewAddSubscriptionUseCase(subscriptionRepo adapter.SubscriptionRepository) *AddSubscriptionUseCase {
	return &AddSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
	}
}

// Execute performs the subscription creation.
func (uc *AddSubscriptionUseCase) Execute(ctx context.Context, input AddSubscriptionInput) (*AddSubscriptionOutput, error) {
	if err := validateSubscriptionFields(input.Name, input.Amount, input.BillingCycle, input.Status, input.StartDate); err != nil {
		return nil, err
	}

	subscription := entity.NewSubscription(
		input.UserID,
		strings.TrimSpace(input.Name),
		input.Amount,
		input.BillingCycle,
		input.StartDate,
		input.Status,
		input.Notes,
	)

	if err := uc.subscriptionRepo.Create(ctx, subscription); err != nil {
		return nil, fmt.Errorf("failed to create subscription: %w", err)
	}

	return &AddSubscriptionOutput{Subscription: subscription}, nil
}

// validateSubscriptionFields validates the writable fields shared by add and edit.
func validateSubscriptionFields(name string, amount decimal.Decimal, cycle entity.BillingCycle, status entity.SubscriptionStatus, startDate time.Time) error {
	if strings.TrimSpace(name) == "" {
		return domainerror.NewEntryError(
			domainerror.ErrCodeEmptyName,
			"name is required",
			domainerror.ErrEmptyName,
		)
	}

	if !amount.IsPositive() {
		return domainerror.NewEntryError(
			domainerror.ErrCodeInvalidAmount,
			"amount must be positive",
			domainerror.ErrInvalidAmount,
		)
	}

	if !entity.ValidBillingCycle(cycle) {
		return domainerror.NewEntryError(
			domainerror.ErrCodeInvalidBillingCycle,
			"billing cycle must be monthly, quarterly or yearly",
			domainerror.ErrInvalidBillingCycle,
		)
	}

	if !entity.ValidSubscriptionStatus(status) {
		return domainerror.NewEntryError(
			domainerror.ErrCodeInvalidSubscriptionStatus,
			"status must be active or cancelled",
			domainerror.ErrInvalidSubscriptionStatus,
		)
	}

	if startDate.IsZero() {
		return domainerror.NewEntryError(
			domainerror.ErrCodeInvalidEntryDate,
			"start date is required",
			domainerror.ErrInvalidEntryDate,
		)
	}

	return nil
}

package dto

import (
	"github.com/shopspring/decimal"

	"github.com/fintrack/backend/internal/domain/entity"
)

// SubscriptionRequest represents the payload for creating or replacing a subscription.
type SubscriptionRequest struct {
	Name         string          `json:"name" binding:"required"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	BillingCycle string          `json:"billingCycle" binding:"required"`
	StartDate    string          `json:"startDate" binding:"required"`
	Status       string          `json:"status" binding:"required"`
	Notes        string          `json:"notes"`
}

// SubscriptionResponse represents a subscription in API responses.
type SubscriptionResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Amount       string `json:"amount"`
	BillingCycle string `json:"billingCycle"`
	StartDate    string `json:"startDate"`
	Status       string `json:"status"`
	Notes        string `json:"notes,omitempty"`
}

// SubscriptionListResponse represents a user's subscriptions with their total.
type SubscriptionListResponse struct {
	Subscriptions []SubscriptionResponse `json:"subscriptions"`
	Total         string                 `json:"total"`
}

// ToSubscriptionResponse converts a subscription entity to its API representation.
func ToSubscriptionResponse(subscription *entity.Subscription) SubscriptionResponse {
	return SubscriptionResponse{
		ID:           subscription.ID.String(),
		Name:         subscription.Name,
		Amount:       subscription.Amount.String(),
		BillingCycle: string(subscription.BillingCycle),
		StartDate:    subscription.StartDate.Format(dateLayout),
		Status:       string(subscription.Status),
		Notes:        subscription.Notes,
	}
}

// ToSubscriptionListResponse converts a subscription collection to its API representation.
func ToSubscriptionListResponse(subscriptions []*entity.Subscription, total decimal.Decimal) SubscriptionListResponse {
	items := make([]SubscriptionResponse, 0, len(subscriptions))
	for _, subscription := range subscriptions {
		items = append(items, ToSubscriptionResponse(subscription))
	}
	return SubscriptionListResponse{
		Subscriptions: items,
		Total:         total.String(),
	}
}

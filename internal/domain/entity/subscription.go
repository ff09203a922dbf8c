// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BillingCycle represents the recurrence period of a subscription.
type BillingCycle string

const (
	BillingCycleMonthly   BillingCycle = "monthly"
	BillingCycleQuarterly BillingCycle = "quarterly"
	BillingCycleYearly    BillingCycle = "yearly"
)

// ValidBillingCycle reports whether the given billing cycle is accepted.
func ValidBillingCycle(c BillingCycle) bool {
	switch c {
	case BillingCycleMonthly, BillingCycleQuarterly, BillingCycleYearly:
		return true
	}
	return false
}

// SubscriptionStatus represents whether a subscription is currently active.
// Transitions are user-driven; there is no automatic expiry.
type SubscriptionStatus string

const (
	SubscriptionStatusActive    SubscriptionStatus = "active"
	SubscriptionStatusCancelled SubscriptionStatus = "cancelled"
)

// ValidSubscriptionStatus reports whether the given status is accepted.
func ValidSubscriptionStatus(s SubscriptionStatus) bool {
	return s == SubscriptionStatusActive || s == SubscriptionStatusCancelled
}

// Subscription represents a recurring subscription owned by one user.
type Subscription struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Name         string
	Amount       decimal.Decimal
	BillingCycle BillingCycle
	StartDate    time.Time
	Status       SubscriptionStatus
	Notes        string // Optional
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewSubscription creates a new Subscription entity with a server-assigned id.
func NewSubscription(
	userID uuid.UUID,
	name string,
	amount decimal.Decimal,
	billingCycle BillingCycle,
	startDate time.Time,
	status SubscriptionStatus,
	notes string,
) *Subscription {
	now := time.Now().UTC()

	return &Subscription{
		ID:           uuid.New(),
		UserID:       userID,
		Name:         name,
		Amount:       amount,
		BillingCycle: billingCycle,
		StartDate:    startDate,
		Status:       status,
		Notes:        notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

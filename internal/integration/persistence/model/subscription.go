// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintrack/backend/internal/domain/entity"
)

// SubscriptionModel represents the subscriptions table in the database.
type SubscriptionModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name         string          `gorm:"type:varchar(100);not null"`
	Amount       decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	BillingCycle string          `gorm:"type:varchar(10);not null"`
	StartDate    time.Time       `gorm:"type:date;not null;index"`
	Status       string          `gorm:"type:varchar(10);not null"`
	Notes        string          `gorm:"type:text"`
	CreatedAt    time.Time       `gorm:"not null"`
	UpdatedAt    time.Time       `gorm:"not null"`
}

// TableName returns the table name for the SubscriptionModel.
func (SubscriptionModel) TableName() string {
	return "subscriptions"
}

// ToEntity converts a SubscriptionModel to a domain Subscription entity.
func (m *SubscriptionModel) ToEntity() *entity.Subscription {
	return &entity.Subscription{
		ID:           m.ID,
		UserID:       m.UserID,
		Name:         m.Name,
		Amount:       m.Amount,
		BillingCycle: entity.BillingCycle(m.BillingCycle),
		StartDate:    m.StartDate,
		Status:       entity.SubscriptionStatus(m.Status),
		Notes:        m.Notes,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// SubscriptionFromEntity creates a SubscriptionModel from a domain Subscription entity.
func SubscriptionFromEntity(subscription *entity.Subscription) *SubscriptionModel {
	return &SubscriptionModel{
		ID:           subscription.ID,
		UserID:       subscription.UserID,
		Name:         subscription.Name,
		Amount:       subscription.Amount,
		BillingCycle: string(subscription.BillingCycle),
		StartDate:    subscription.StartDate,
		Status:       string(subscription.Status),
		Notes:        subscription.Notes,
		CreatedAt:    subscription.CreatedAt,
		UpdatedAt:    subscription.UpdatedAt,
	}
}

// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintrack/backend/internal/domain/entity"
)

// InvestmentModel represents the investments table in the database.
// Amount is stored denormalized but always derived from units and price.
type InvestmentModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name      string          `gorm:"type:varchar(100);not null"`
	Category  string          `gorm:"type:varchar(20);not null"`
	Units     decimal.Decimal `gorm:"type:decimal(15,4);not null"`
	Price     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Date      time.Time       `gorm:"type:date;not null;index"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for the InvestmentModel.
func (InvestmentModel) TableName() string {
	return "investments"
}

// ToEntity converts an InvestmentModel to a domain Investment entity.
func (m *InvestmentModel) ToEntity() *entity.Investment {
	return &entity.Investment{
		ID:        m.ID,
		UserID:    m.UserID,
		Name:      m.Name,
		Category:  entity.InvestmentCategory(m.Category),
		Units:     m.Units,
		Price:     m.Price,
		Amount:    m.Amount,
		Date:      m.Date,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// InvestmentFromEntity creates an InvestmentModel from a domain Investment entity.
func InvestmentFromEntity(investment *entity.Investment) *InvestmentModel {
	return &InvestmentModel{
		ID:        investment.ID,
		UserID:    investment.UserID,
		Name:      investment.Name,
		Category:  string(investment.Category),
		Units:     investment.Units,
		Price:     investment.Price,
		Amount:    investment.Amount,
		Date:      investment.Date,
		CreatedAt: investment.CreatedAt,
		UpdatedAt: investment.UpdatedAt,
	}
}

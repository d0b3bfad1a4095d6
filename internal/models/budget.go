package models

import (
	"errors"

	"github.com/m-tracker/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Budget is the spending plan for a single month.
//
// The month key is the primary key, so there is at most one plan per
// month. "No budget" is the absence of a row, never a zero plan.
type Budget struct {
	Month       types.Month     `json:"month" gorm:"primaryKey" example:"2025-01"`
	TotalBudget decimal.Decimal `json:"totalBudget" gorm:"type:DECIMAL(20,8)" example:"200000"`
	Timestamps
}

// BeforeSave validates the plan.
func (b *Budget) BeforeSave(_ *gorm.DB) (err error) {
	if !b.TotalBudget.IsPositive() {
		return ErrBudgetNotPositive
	}

	return nil
}

// SetBudget creates or updates the plan for a month.
//
// When a plan exists, only TotalBudget and UpdatedAt change; the
// original CreatedAt is preserved. This is the merge behavior of the
// mobile client's setMonthlyBudget.
func SetBudget(db *gorm.DB, month types.Month, totalBudget decimal.Decimal) (Budget, error) {
	var budget Budget
	err := db.First(&budget, "month = ?", month).Error
	if err != nil && !errors.Is(err, ErrResourceNotFound) {
		return Budget{}, err
	}

	budget.Month = month
	budget.TotalBudget = totalBudget

	err = db.Save(&budget).Error
	if err != nil {
		return Budget{}, err
	}

	return budget, nil
}

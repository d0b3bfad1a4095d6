package models_test

import (
	"testing"
	"time"

	"github.com/m-tracker/backend/internal/models"
	"github.com/m-tracker/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestSetBudgetCreates() {
	month := types.NewMonth(2025, time.January)

	budget, err := models.SetBudget(models.DB, month, decimal.NewFromInt(200000))
	suite.Require().Nil(err)

	suite.Assert().Equal(month, budget.Month)
	suite.Assert().True(budget.TotalBudget.Equal(decimal.NewFromInt(200000)))
}

// TestSetBudgetMerges verifies that setting the plan for an existing
// month updates the amount and keeps the creation time.
func (suite *TestSuiteStandard) TestSetBudgetMerges() {
	month := types.NewMonth(2025, time.January)

	first, err := models.SetBudget(models.DB, month, decimal.NewFromInt(200000))
	suite.Require().Nil(err)

	updated, err := models.SetBudget(models.DB, month, decimal.NewFromInt(300000))
	suite.Require().Nil(err)

	suite.Assert().True(updated.TotalBudget.Equal(decimal.NewFromInt(300000)))
	suite.Assert().True(first.CreatedAt.Equal(updated.CreatedAt), "CreatedAt changed from %s to %s", first.CreatedAt, updated.CreatedAt)

	var count int64
	suite.Require().Nil(models.DB.Model(&models.Budget{}).Count(&count).Error)
	suite.Assert().Equal(int64(1), count)
}

func (suite *TestSuiteStandard) TestSetBudgetInvalid() {
	month := types.NewMonth(2025, time.January)

	tests := []struct {
		name   string
		amount decimal.Decimal
	}{
		{"zero", decimal.Zero},
		{"negative", decimal.NewFromInt(-100)},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			_, err := models.SetBudget(models.DB, month, tt.amount)
			assert.ErrorIs(t, err, models.ErrBudgetNotPositive)
		})
	}
}

// TestBudgetMonthRoundtrip verifies that the month key survives the
// database roundtrip unchanged.
func (suite *TestSuiteStandard) TestBudgetMonthRoundtrip() {
	month := types.NewMonth(2024, time.December)

	_, err := models.SetBudget(models.DB, month, decimal.NewFromInt(1000))
	suite.Require().Nil(err)

	var budget models.Budget
	suite.Require().Nil(models.DB.First(&budget, "month = ?", month).Error)
	suite.Assert().Equal("2024-12", budget.Month.String())
}

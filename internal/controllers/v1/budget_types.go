package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/m-tracker/backend/internal/models"
	"github.com/m-tracker/backend/internal/report"
	"github.com/m-tracker/backend/internal/types"
	"github.com/shopspring/decimal"
)

type BudgetEditable struct {
	TotalBudget decimal.Decimal `json:"totalBudget" example:"200000"` // The planned spending for the month
}

type BudgetLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/budgets/2025-01"`          // The budget plan itself
	Status   string `json:"status" example:"https://example.com/api/v1/budgets/2025-01/status"` // Spending progress against the plan
	Previous string `json:"previous" example:"https://example.com/api/v1/budgets/2024-12"`      // The plan for the previous month
	Next     string `json:"next" example:"https://example.com/api/v1/budgets/2025-02"`          // The plan for the next month
}

// Budget is the representation of a Budget in API v1.
type Budget struct {
	Month types.Month `json:"month" example:"2025-01"` // The month the plan applies to
	BudgetEditable
	models.Timestamps
	Links BudgetLinks `json:"links"`
}

// newBudget returns the API v1 representation of the resource
func newBudget(c *gin.Context, model models.Budget) Budget {
	url := c.GetString(string(models.DBContextURL))

	return Budget{
		Month: model.Month,
		BudgetEditable: BudgetEditable{
			TotalBudget: model.TotalBudget,
		},
		Timestamps: model.Timestamps,
		Links: BudgetLinks{
			Self:     fmt.Sprintf("%s/v1/budgets/%s", url, model.Month),
			Status:   fmt.Sprintf("%s/v1/budgets/%s/status", url, model.Month),
			Previous: fmt.Sprintf("%s/v1/budgets/%s", url, model.Month.AddDate(0, -1)),
			Next:     fmt.Sprintf("%s/v1/budgets/%s", url, model.Month.AddDate(0, 1)),
		},
	}
}

type BudgetListResponse struct {
	Data  []Budget `json:"data"`                                             // List of budget plans
	Error *string  `json:"error" example:"the specified month is not valid"` // The error, if any occurred
}

type BudgetResponse struct {
	Error *string `json:"error" example:"the budget amount must be greater than zero"` // The error, if any occurred
	Data  *Budget `json:"data"`                                                        // The Budget data
}

// BudgetStatus is the spending progress for a month, calculated against
// its plan.
type BudgetStatus struct {
	Month       types.Month     `json:"month" example:"2025-01"`      // The month the status is calculated for
	TotalBudget decimal.Decimal `json:"totalBudget" example:"200000"` // The planned spending
	Spent       decimal.Decimal `json:"spent" example:"50000"`        // Money spent in the month, as a positive number
	report.BudgetStatus
}

type BudgetStatusResponse struct {
	Error *string       `json:"error" example:"there is no budget matching your query"` // The error, if any occurred
	Data  *BudgetStatus `json:"data"`                                                   // The status data
}

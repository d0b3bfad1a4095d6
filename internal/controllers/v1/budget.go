package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/m-tracker/backend/internal/httputil"
	"github.com/m-tracker/backend/internal/models"
	"github.com/m-tracker/backend/internal/report"
)

// RegisterBudgetRoutes registers the routes for budget plans with
// the RouterGroup that is passed.
func RegisterBudgetRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsBudgetList)
		r.GET("", GetBudgets)
	}

	// Budget for a specific month
	{
		r.OPTIONS("/:month", OptionsBudgetMonth)
		r.GET("/:month", GetBudget)
		r.PATCH("/:month", UpdateBudget)
		r.OPTIONS("/:month/status", OptionsBudgetStatus)
		r.GET("/:month/status", GetBudgetStatus)
	}
}

// OptionsBudgetList returns the allowed HTTP methods for the budget
// plan collection.
func OptionsBudgetList(c *gin.Context) {
	httputil.OptionsGet(c)
}

// OptionsBudgetMonth returns the allowed HTTP methods for the budget
// plan of a specific month.
//
// PATCH is always allowed since it creates the plan when there is none.
func OptionsBudgetMonth(c *gin.Context) {
	var uri URIMonth
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatch(c)
}

// OptionsBudgetStatus returns the allowed HTTP methods for the
// spending status of a specific month.
func OptionsBudgetStatus(c *gin.Context) {
	var uri URIMonth
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGet(c)
}

// GetBudgets returns all budget plans, newest month first.
func GetBudgets(c *gin.Context) {
	var budgets []models.Budget
	err := models.DB.Order("month DESC").Find(&budgets).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Budget, 0)
	for _, budget := range budgets {
		data = append(data, newBudget(c, budget))
	}

	c.JSON(http.StatusOK, BudgetListResponse{
		Data: data,
	})
}

// GetBudget returns the budget plan of a specific month.
func GetBudget(c *gin.Context) {
	var uri URIMonth
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &e,
		})
		return
	}

	var budget models.Budget
	err = models.DB.First(&budget, "month = ?", uri.Month).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &e,
		})
		return
	}

	data := newBudget(c, budget)
	c.JSON(http.StatusOK, BudgetResponse{Data: &data})
}

// UpdateBudget sets the budget plan for a month. The plan is created
// when there is none yet, otherwise only the amount is changed and the
// creation time of the plan is kept.
func UpdateBudget(c *gin.Context) {
	var uri URIMonth
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &e,
		})
		return
	}

	var editable BudgetEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &e,
		})
		return
	}

	budget, err := models.SetBudget(models.DB, uri.Month, editable.TotalBudget)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &e,
		})
		return
	}

	data := newBudget(c, budget)
	c.JSON(http.StatusOK, BudgetResponse{Data: &data})
}

// GetBudgetStatus returns the spending progress of a month against its
// plan. Months without a plan have no status, not a zero one.
func GetBudgetStatus(c *gin.Context) {
	var uri URIMonth
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetStatusResponse{
			Error: &e,
		})
		return
	}

	var budget models.Budget
	err = models.DB.First(&budget, "month = ?", uri.Month).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetStatusResponse{
			Error: &e,
		})
		return
	}

	var transactions []models.Transaction
	err = models.DB.Find(&transactions).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetStatusResponse{
			Error: &e,
		})
		return
	}

	spent := report.SpentInMonth(transactions, uri.Month)

	data := BudgetStatus{
		Month:        budget.Month,
		TotalBudget:  budget.TotalBudget,
		Spent:        spent,
		BudgetStatus: report.NewBudgetStatus(budget.TotalBudget, spent),
	}
	c.JSON(http.StatusOK, BudgetStatusResponse{Data: &data})
}

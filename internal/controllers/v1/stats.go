package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/m-tracker/backend/internal/httputil"
	"github.com/m-tracker/backend/internal/report"
)

// RegisterStatsRoutes registers the routes for statistics with
// the RouterGroup that is passed.
func RegisterStatsRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsStats)
	r.GET("", GetStats)

	r.OPTIONS("/history", OptionsStatsHistory)
	r.GET("/history", GetStatsHistory)
}

// OptionsStats returns the allowed HTTP methods for the stats endpoint.
func OptionsStats(c *gin.Context) {
	httputil.OptionsGet(c)
}

// OptionsStatsHistory returns the allowed HTTP methods for the history
// endpoint.
func OptionsStatsHistory(c *gin.Context) {
	httputil.OptionsGet(c)
}

// bindPeriod binds the period query parameter, defaulting to "all".
func bindPeriod(c *gin.Context) (report.Period, error) {
	var query StatsQuery
	_ = c.Bind(&query)

	if query.Period == "" {
		query.Period = report.PeriodAll
	}

	if !query.Period.Valid() {
		return "", errPeriodInvalid
	}

	return query.Period, nil
}

// GetStats returns the aggregated income, expenses and balance of the
// requested period.
func GetStats(c *gin.Context) {
	period, err := bindPeriod(c)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, StatsResponse{
			Error: &e,
		})
		return
	}

	records, err := periodRecords(period)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), StatsResponse{
			Error: &e,
		})
		return
	}

	summary := report.Totals(records)

	data := Stats{
		Period:  period,
		Count:   len(records),
		Summary: summary,
		// The income of the period takes the role of the budget here:
		// how much of what came in went out again?
		Consumption: report.NewBudgetStatus(summary.Income, summary.Expenses.Abs()),
	}
	c.JSON(http.StatusOK, StatsResponse{Data: &data})
}

// GetStatsHistory returns the transactions of the requested period,
// grouped by calendar day, newest day first.
func GetStatsHistory(c *gin.Context) {
	period, err := bindPeriod(c)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, HistoryResponse{
			Error: &e,
		})
		return
	}

	records, err := periodRecords(period)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), HistoryResponse{
			Error: &e,
		})
		return
	}

	data := make([]HistoryGroup, 0)
	for _, group := range report.GroupByDay(records, time.Now()) {
		data = append(data, newHistoryGroup(c, group))
	}

	c.JSON(http.StatusOK, HistoryResponse{
		Data: data,
	})
}

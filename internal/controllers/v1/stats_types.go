package v1

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/m-tracker/backend/internal/models"
	"github.com/m-tracker/backend/internal/report"
)

type StatsQuery struct {
	Period report.Period `form:"period" example:"month"` // Period to calculate over. Defaults to "all"
}

// Stats is the aggregated view over the transactions of a period.
type Stats struct {
	Period report.Period `json:"period" example:"month"` // The period the stats are calculated over
	Count  int           `json:"count" example:"12"`     // Number of records in the period
	report.Summary
	// Consumption describes how much of the period's income the
	// period's spending has used up.
	Consumption report.BudgetStatus `json:"consumption"`
}

type StatsResponse struct {
	Error *string `json:"error" example:"the specified period is invalid, allowed values are: week, month, all"` // The error, if any occurred
	Data  *Stats  `json:"data"`                                                                                  // The stats data
}

// HistoryGroup is one calendar day of transaction history.
type HistoryGroup struct {
	Key          string        `json:"key" example:"2025-01-10"` // The day, or "Unknown"
	Title        string        `json:"title" example:"Today"`    // Display title for the day
	Transactions []Transaction `json:"transactions"`             // Records of the day, newest first
}

// newHistoryGroup returns the API v1 representation of a day group.
func newHistoryGroup(c *gin.Context, group report.DayGroup) HistoryGroup {
	transactions := make([]Transaction, 0, len(group.Transactions))
	for _, transaction := range group.Transactions {
		transactions = append(transactions, newTransaction(c, transaction))
	}

	return HistoryGroup{
		Key:          group.Key,
		Title:        group.Title,
		Transactions: transactions,
	}
}

type HistoryResponse struct {
	Error *string        `json:"error" example:"the specified period is invalid, allowed values are: week, month, all"` // The error, if any occurred
	Data  []HistoryGroup `json:"data"`                                                                                  // The day groups, newest day first
}

// periodRecords loads the full record set and returns the slice of it
// that falls into the period.
func periodRecords(period report.Period) ([]models.Transaction, error) {
	var transactions []models.Transaction
	err := models.DB.
		Order("datetime(transactions.date) DESC, datetime(transactions.created_at) DESC").
		Find(&transactions).Error
	if err != nil {
		return nil, err
	}

	return report.FilterByPeriod(transactions, period, time.Now()), nil
}

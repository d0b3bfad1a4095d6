// Package report computes derived values over a snapshot of transaction
// records: totals, day groupings, period filters and budget consumption.
//
// Every function is pure. Callers pass the snapshot and the reference
// time explicitly, recompute on every snapshot change, and the latest
// result supersedes the previous one.
package report

import (
	"sort"
	"time"

	"github.com/m-tracker/backend/internal/models"
	"github.com/m-tracker/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// Period is a user-selected time window used to filter records before
// aggregation.
type Period string

const (
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodAll   Period = "all"
)

// Valid reports whether the period is one of the known windows.
func (p Period) Valid() bool {
	return slices.Contains([]Period{PeriodWeek, PeriodMonth, PeriodAll}, p)
}

// Summary is the income/expense/balance breakdown of a record set.
type Summary struct {
	Income   decimal.Decimal `json:"income" example:"50000"`    // Sum of all positive amounts
	Expenses decimal.Decimal `json:"expenses" example:"-20000"` // Sum of all negative amounts, never positive
	Balance  decimal.Decimal `json:"balance" example:"30000"`   // Income plus expenses
}

// Totals sums a record set. An empty set sums to all zeroes.
func Totals(records []models.Transaction) Summary {
	income := decimal.Zero
	expenses := decimal.Zero

	for _, record := range records {
		if record.Amount.IsPositive() {
			income = income.Add(record.Amount)
		} else if record.Amount.IsNegative() {
			expenses = expenses.Add(record.Amount)
		}
	}

	return Summary{
		Income:   income,
		Expenses: expenses,
		Balance:  income.Add(expenses),
	}
}

// UnknownDayKey is the bucket for records whose timestamps are unusable.
const UnknownDayKey = "Unknown"

// DayGroup is a set of records sharing a calendar day.
type DayGroup struct {
	Key          string               `json:"key" example:"2025-01-10"` // The day, or "Unknown"
	Title        string               `json:"title" example:"Today"`    // Display title for the day
	Transactions []models.Transaction `json:"transactions"`             // Records of the day, newest first
}

// recordTime returns the timestamp a record is aggregated under: the
// transaction date, falling back to the creation time.
func recordTime(record models.Transaction) time.Time {
	if !record.Date.IsZero() {
		return record.Date
	}

	return record.CreatedAt
}

// dayKey derives the calendar day bucket for a record.
func dayKey(record models.Transaction) string {
	t := recordTime(record)
	if t.IsZero() {
		return UnknownDayKey
	}

	return t.UTC().Format("2006-01-02")
}

// dayTitle maps a day key to its display title, relative to now.
func dayTitle(key string, now time.Time) string {
	if key == UnknownDayKey {
		return "Unknown date"
	}

	today := now.UTC().Format("2006-01-02")
	yesterday := now.UTC().AddDate(0, 0, -1).Format("2006-01-02")

	switch key {
	case today:
		return "Today"
	case yesterday:
		return "Yesterday"
	}

	day, err := time.Parse("2006-01-02", key)
	if err != nil {
		return key
	}

	return day.Format("Jan 2, 2006")
}

// GroupByDay partitions records into calendar-day groups.
//
// Every record lands in exactly one group. Groups are ordered newest
// first by key string comparison, which sorts the "Unknown" bucket
// before all dates. Within a group, records are ordered newest first.
func GroupByDay(records []models.Transaction, now time.Time) []DayGroup {
	buckets := make(map[string][]models.Transaction)
	for _, record := range records {
		key := dayKey(record)
		buckets[key] = append(buckets[key], record)
	}

	keys := make([]string, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))

	groups := make([]DayGroup, 0, len(keys))
	for _, key := range keys {
		items := buckets[key]
		sort.SliceStable(items, func(i, j int) bool {
			return recordTime(items[i]).After(recordTime(items[j]))
		})

		groups = append(groups, DayGroup{
			Key:          key,
			Title:        dayTitle(key, now),
			Transactions: items,
		})
	}

	return groups
}

// FilterByPeriod returns the records whose timestamp falls into the
// selected window, relative to now.
//
// "all" is the identity and keeps records with unusable timestamps.
// "month" and "week" span from the start of the current month or week
// (weeks start on Sunday) up to now, inclusive on both ends, and drop
// records with unusable timestamps.
func FilterByPeriod(records []models.Transaction, period Period, now time.Time) []models.Transaction {
	if period == PeriodAll {
		return records
	}

	now = now.UTC()

	var start time.Time
	switch period {
	case PeriodMonth:
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	case PeriodWeek:
		midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		start = midnight.AddDate(0, 0, -int(now.Weekday()))
	default:
		return records
	}

	filtered := make([]models.Transaction, 0, len(records))
	for _, record := range records {
		t := recordTime(record)
		if t.IsZero() {
			continue
		}

		t = t.UTC()
		if !t.Before(start) && !t.After(now) {
			filtered = append(filtered, record)
		}
	}

	return filtered
}

// BudgetStatus describes how far a monthly plan is consumed.
type BudgetStatus struct {
	// Fill ratio for a progress bar, clamped to [0, 1] so overspending
	// does not overflow the bar visual.
	Ratio float64 `json:"ratio" example:"0.25"`

	// Consumed percentage, rounded, deliberately NOT clamped: the
	// numeric readout communicates the overspend magnitude while the
	// bar stays bounded.
	Percent int64 `json:"percent" example:"25"`

	Remaining decimal.Decimal `json:"remaining" example:"75000"` // Budget minus spending, negative when over
	Over      bool            `json:"over" example:"false"`      // True when the plan is overspent
}

// NewBudgetStatus computes the consumption of a plan from the total
// budget and the absolute amount spent.
func NewBudgetStatus(totalBudget, spentAbs decimal.Decimal) BudgetStatus {
	remaining := totalBudget.Sub(spentAbs)

	status := BudgetStatus{
		Remaining: remaining,
		Over:      remaining.IsNegative(),
	}

	if !totalBudget.IsPositive() {
		return status
	}

	ratio, _ := spentAbs.Div(totalBudget).Float64()
	status.Ratio = min(max(ratio, 0), 1)
	status.Percent = spentAbs.Div(totalBudget).Mul(decimal.NewFromInt(100)).Round(0).IntPart()

	return status
}

// SpentInMonth returns the absolute sum of all expense amounts recorded
// in the month.
func SpentInMonth(records []models.Transaction, month types.Month) decimal.Decimal {
	spent := decimal.Zero
	for _, record := range records {
		t := recordTime(record)
		if t.IsZero() || !month.Contains(t) {
			continue
		}

		if record.Amount.IsNegative() {
			spent = spent.Add(record.Amount)
		}
	}

	return spent.Abs()
}

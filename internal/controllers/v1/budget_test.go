package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	v1 "github.com/m-tracker/backend/internal/controllers/v1"
	"github.com/m-tracker/backend/internal/models"
	"github.com/m-tracker/backend/internal/types"
	"github.com/m-tracker/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setTestBudget sets a budget plan via the v1 API.
func setTestBudget(t *testing.T, month string, totalBudget decimal.Decimal, expectedStatus ...int) v1.BudgetResponse {
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusOK)
	}

	r := test.Request(t, http.MethodPatch, fmt.Sprintf("http://example.com/v1/budgets/%s", month), v1.BudgetEditable{TotalBudget: totalBudget})
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var br v1.BudgetResponse
	test.DecodeResponse(t, &r, &br)

	return br
}

func (suite *TestSuiteStandard) TestBudgetsEmptyList() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budgets", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.NotNil(suite.T(), response.Data)
	assert.Len(suite.T(), response.Data, 0)
}

// TestBudgetsList verifies that plans are listed newest month first.
func (suite *TestSuiteStandard) TestBudgetsList() {
	_ = setTestBudget(suite.T(), "2024-12", decimal.NewFromInt(150000))
	_ = setTestBudget(suite.T(), "2025-02", decimal.NewFromInt(250000))
	_ = setTestBudget(suite.T(), "2025-01", decimal.NewFromInt(200000))

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budgets", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data, 3)
	assert.Equal(suite.T(), "2025-02", response.Data[0].Month.String())
	assert.Equal(suite.T(), "2025-01", response.Data[1].Month.String())
	assert.Equal(suite.T(), "2024-12", response.Data[2].Month.String())
}

func (suite *TestSuiteStandard) TestBudgetsGetSingle() {
	_ = setTestBudget(suite.T(), "2025-01", decimal.NewFromInt(200000))

	tests := []struct {
		name   string
		month  string
		status int
	}{
		{"Exists", "2025-01", http.StatusOK},
		{"No plan", "2025-02", http.StatusNotFound},
		{"Invalid month", "not-a-month", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/budgets/%s", tt.month), "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusOK {
				var response v1.BudgetResponse
				test.DecodeResponse(t, &r, &response)
				assert.True(t, response.Data.TotalBudget.Equal(decimal.NewFromInt(200000)))
				assert.Equal(t, "http://example.com/v1/budgets/2024-12", response.Data.Links.Previous)
				assert.Equal(t, "http://example.com/v1/budgets/2025-02", response.Data.Links.Next)
			}
		})
	}
}

// TestBudgetsUpdateMerges verifies that setting the plan for a month that
// already has one only changes the amount and keeps the creation time.
func (suite *TestSuiteStandard) TestBudgetsUpdateMerges() {
	first := setTestBudget(suite.T(), "2025-01", decimal.NewFromInt(200000))
	updated := setTestBudget(suite.T(), "2025-01", decimal.NewFromInt(300000))

	assert.True(suite.T(), updated.Data.TotalBudget.Equal(decimal.NewFromInt(300000)))
	assert.Equal(suite.T(), first.Data.CreatedAt, updated.Data.CreatedAt)

	// Still only one plan for the month
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budgets", "")
	var response v1.BudgetListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Len(suite.T(), response.Data, 1)
}

func (suite *TestSuiteStandard) TestBudgetsUpdateInvalid() {
	tests := []struct {
		name   string
		month  string
		body   any
		status int
	}{
		{"Zero amount", "2025-01", v1.BudgetEditable{}, http.StatusBadRequest},
		{"Negative amount", "2025-01", v1.BudgetEditable{TotalBudget: decimal.NewFromInt(-5)}, http.StatusBadRequest},
		{"Invalid month", "2025-13", v1.BudgetEditable{TotalBudget: decimal.NewFromInt(5)}, http.StatusBadRequest},
		{"Empty body", "2025-01", "", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, fmt.Sprintf("http://example.com/v1/budgets/%s", tt.month), tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

// TestBudgetsStatus verifies the spending progress calculation for the
// current month.
func (suite *TestSuiteStandard) TestBudgetsStatus() {
	now := time.Now().UTC()
	month := types.MonthOf(now)

	_ = setTestBudget(suite.T(), month.String(), decimal.NewFromInt(100000))

	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		Amount:       decimal.NewFromInt(20000),
		CategoryID:   "food",
		CategoryType: models.CategoryTypeExpense,
		Date:         now,
	})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		Amount:       decimal.NewFromInt(5000),
		CategoryID:   "transport",
		CategoryType: models.CategoryTypeExpense,
		Date:         now,
	})
	// Income must not count as spending
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		Amount:       decimal.NewFromInt(50000),
		CategoryID:   "salary",
		CategoryType: models.CategoryTypeIncome,
		Date:         now,
	})

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/budgets/%s/status", month), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetStatusResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Data)
	assert.True(suite.T(), response.Data.Spent.Equal(decimal.NewFromInt(25000)), "spent is %s", response.Data.Spent)
	assert.True(suite.T(), response.Data.Remaining.Equal(decimal.NewFromInt(75000)), "remaining is %s", response.Data.Remaining)
	assert.InDelta(suite.T(), 0.25, response.Data.Ratio, 0.0001)
	assert.Equal(suite.T(), int64(25), response.Data.Percent)
	assert.False(suite.T(), response.Data.Over)
}

// TestBudgetsStatusOverspent verifies that the ratio is capped while the
// percentage keeps growing.
func (suite *TestSuiteStandard) TestBudgetsStatusOverspent() {
	now := time.Now().UTC()
	month := types.MonthOf(now)

	_ = setTestBudget(suite.T(), month.String(), decimal.NewFromInt(10000))
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		Amount:       decimal.NewFromInt(12000),
		CategoryID:   "food",
		CategoryType: models.CategoryTypeExpense,
		Date:         now,
	})

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/budgets/%s/status", month), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetStatusResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Data)
	assert.InDelta(suite.T(), 1.0, response.Data.Ratio, 0.0001)
	assert.Equal(suite.T(), int64(120), response.Data.Percent)
	assert.True(suite.T(), response.Data.Over)
	assert.True(suite.T(), response.Data.Remaining.Equal(decimal.NewFromInt(-2000)))
}

// TestBudgetsStatusNoPlan verifies that months without a plan do not have
// a status.
func (suite *TestSuiteStandard) TestBudgetsStatusNoPlan() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budgets/2025-03/status", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestBudgetsDatabaseError() {
	tests := []struct {
		name   string
		path   string
		method string
		body   string
	}{
		{"GET Collection", "", http.MethodGet, ""},
		{"GET Single", "/2025-01", http.MethodGet, ""},
		{"PATCH Single", "/2025-01", http.MethodPatch, `{"totalBudget": "100"}`},
		{"GET Status", "/2025-01/status", http.MethodGet, ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.CloseDB()

			recorder := test.Request(t, tt.method, fmt.Sprintf("http://example.com/v1/budgets%s", tt.path), tt.body)
			test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)
		})
	}
}

package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/m-tracker/backend/internal/controllers/v1"
	"github.com/m-tracker/backend/internal/models"
	"github.com/m-tracker/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createTestCategory creates a test category via the v1 API.
func createTestCategory(t *testing.T, category v1.CategoryEditable, expectedStatus ...int) v1.CategoryResponse {
	if category.Type == "" {
		category.Type = models.CategoryTypeExpense
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	reqBody := []v1.CategoryEditable{category}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/categories", reqBody)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var cr v1.CategoryCreateResponse
	test.DecodeResponse(t, &r, &cr)

	return cr.Data[0]
}

// TestCategoriesSeeded verifies that a fresh database starts out with the
// default categories.
func (suite *TestSuiteStandard) TestCategoriesSeeded() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/categories", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Len(suite.T(), response.Data, 11)

	ids := make([]string, 0, len(response.Data))
	for _, category := range response.Data {
		ids = append(ids, category.ID)
	}
	assert.Contains(suite.T(), ids, "food")
	assert.Contains(suite.T(), ids, "salary")
	assert.Contains(suite.T(), ids, "other-expense")
	assert.Contains(suite.T(), ids, "other-income")
}

func (suite *TestSuiteStandard) TestCategoriesGetFiltered() {
	tests := []struct {
		name   string
		query  string
		status int
		len    int
	}{
		{"Expense categories", "type=expense", http.StatusOK, 6},
		{"Income categories", "type=income", http.StatusOK, 5},
		{"Invalid type", "type=subscription", http.StatusBadRequest, 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/categories?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusOK {
				var response v1.CategoryListResponse
				test.DecodeResponse(t, &r, &response)
				assert.Len(t, response.Data, tt.len)
			}
		})
	}
}

// TestCategoriesCreateSlug verifies that the category ID is derived from
// the label.
func (suite *TestSuiteStandard) TestCategoriesCreateSlug() {
	tests := []struct {
		label string
		id    string
	}{
		{"Groceries", "groceries"},
		{"Pet  Food", "pet-food"},
		{"  Side Hustle ", "side-hustle"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.label, func(t *testing.T) {
			category := createTestCategory(t, v1.CategoryEditable{Label: tt.label})
			assert.Equal(t, tt.id, category.Data.ID)
		})
	}
}

func (suite *TestSuiteStandard) TestCategoriesCreateInvalid() {
	tests := []struct {
		name     string
		editable v1.CategoryEditable
		err      error
	}{
		{
			"Empty label",
			v1.CategoryEditable{Type: models.CategoryTypeExpense},
			models.ErrCategoryLabelEmpty,
		},
		{
			"Invalid type",
			v1.CategoryEditable{Label: "Subscriptions", Type: "subscription"},
			models.ErrCategoryTypeInvalid,
		},
		{
			"Duplicate label",
			v1.CategoryEditable{Label: "food", Type: models.CategoryTypeExpense},
			models.ErrCategoryLabelExists,
		},
		{
			"Duplicate label different case",
			v1.CategoryEditable{Label: "FOOD", Type: models.CategoryTypeExpense},
			models.ErrCategoryLabelExists,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			response := createTestCategory(t, tt.editable, http.StatusBadRequest)

			require.NotNil(t, response.Error)
			assert.Equal(t, tt.err.Error(), *response.Error)
		})
	}
}

// TestCategoriesCreateSameLabelOtherType verifies that a label can exist
// once per type.
func (suite *TestSuiteStandard) TestCategoriesCreateSameLabelOtherType() {
	_ = createTestCategory(suite.T(), v1.CategoryEditable{Label: "Refund", Type: models.CategoryTypeIncome})
	_ = createTestCategory(suite.T(), v1.CategoryEditable{Label: "Refund", Type: models.CategoryTypeExpense}, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCategoriesGetSingle() {
	tests := []struct {
		name   string
		slug   string
		status int
	}{
		{"Seeded category", "food", http.StatusOK},
		{"Does not exist", "does-not-exist", http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/categories/%s", tt.slug), "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusOK {
				var response v1.CategoryResponse
				test.DecodeResponse(t, &r, &response)
				assert.Equal(t, tt.slug, response.Data.ID)
				assert.Equal(t, "Food", response.Data.Label)
			}
		})
	}
}

// TestCategoriesImmutable verifies that categories can not be changed or
// removed once created.
func (suite *TestSuiteStandard) TestCategoriesImmutable() {
	r := test.Request(suite.T(), http.MethodPatch, "http://example.com/v1/categories/food", `{"label": "Renamed"}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusMethodNotAllowed)

	r = test.Request(suite.T(), http.MethodDelete, "http://example.com/v1/categories/food", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusMethodNotAllowed)
}

func (suite *TestSuiteStandard) TestCategoriesDatabaseError() {
	tests := []struct {
		name   string
		path   string
		method string
	}{
		{"GET Collection", "", http.MethodGet},
		{"OPTIONS Single", "/food", http.MethodOptions},
		{"GET Single", "/food", http.MethodGet},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.CloseDB()

			recorder := test.Request(t, tt.method, fmt.Sprintf("http://example.com/v1/categories%s", tt.path), "")
			test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)
		})
	}
}

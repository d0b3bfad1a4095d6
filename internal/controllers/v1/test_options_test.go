package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/m-tracker/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestOptionsHeaderResources() {
	optionsHeaderTests := []struct {
		path     string
		response string
	}{
		{"http://example.com/v1", "OPTIONS, GET"},
		{"http://example.com/v1/transactions", "OPTIONS, GET, POST"},
		{"http://example.com/v1/categories", "OPTIONS, GET, POST"},
		{"http://example.com/v1/budgets", "OPTIONS, GET"},
		{"http://example.com/v1/budgets/2025-01", "OPTIONS, GET, PATCH"},
		{"http://example.com/v1/budgets/2025-01/status", "OPTIONS, GET"},
		{"http://example.com/v1/stats", "OPTIONS, GET"},
		{"http://example.com/v1/stats/history", "OPTIONS, GET"},
		{"http://example.com/v1/currencies", "OPTIONS, GET"},
		{"http://example.com/v1/currencies/active", "OPTIONS, GET, PATCH"},
	}

	for _, tt := range optionsHeaderTests {
		suite.T().Run(tt.path, func(t *testing.T) {
			recorder := test.Request(suite.T(), http.MethodOptions, tt.path, "")

			assert.Equal(t, http.StatusNoContent, recorder.Code)
			assert.Equal(t, recorder.Header().Get("allow"), tt.response)
		})
	}
}

// TestMethodNotAllowed tests some endpoints with disallowed HTTP methods
// to verify that the HTTP 405 - Method Not Allowed status is returned
// correctly
func (suite *TestSuiteStandard) TestMethodNotAllowed() {
	tests := []struct {
		path   string
		method string
	}{
		{"/", http.MethodPost},
		{"/", http.MethodDelete},
		{"http://example.com/v1", http.MethodPost},
		{"http://example.com/v1/budgets", http.MethodHead},
		{"http://example.com/v1/budgets", http.MethodPut},
	}

	for _, tt := range tests {
		suite.T().Run(fmt.Sprintf("%s - %s", tt.path, tt.method), func(t *testing.T) {
			recorder := test.Request(t, tt.method, tt.path, "")

			test.AssertHTTPStatus(t, &recorder, http.StatusMethodNotAllowed)
		})
	}
}

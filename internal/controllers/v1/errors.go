package v1

import (
	"errors"
	"net/http"

	"github.com/m-tracker/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"An ID specified in the query string was not a valid UUID"`
}

// status returns the appropriate status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

// Stats errors
var errPeriodInvalid = errors.New("the specified period is invalid, allowed values are: week, month, all")

// Transaction errors
var errCategoryTypeInvalid = errors.New("the specified category type is invalid, allowed values are: expense, income")

// Currency errors
var errCurrencyInvalid = errors.New("the specified currency code is not supported")

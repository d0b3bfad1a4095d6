package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrTransactionAmountZero = errors.New("the transaction amount must not be zero")
	ErrCategoryTypeInvalid   = errors.New("the category type must be \"expense\" or \"income\"")
	ErrCategoryLabelEmpty    = errors.New("the category label must be set")
	ErrCategoryLabelExists   = errors.New("a category with this label already exists")
	ErrCategoryIDNotUnique   = errors.New("a category with this ID already exists")
	ErrBudgetNotPositive     = errors.New("the budget amount must be greater than zero")
	ErrBudgetMonthNotUnique  = errors.New("you can not create multiple budget plans for the same month")
)

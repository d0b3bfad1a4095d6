package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// Transaction represents a single income or expense record.
type Transaction struct {
	DefaultModel
	Date         time.Time       `json:"date"`
	Amount       decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)"`
	Title        string          `json:"title"`
	CategoryID   string          `json:"categoryId"`
	CategoryType CategoryType    `json:"categoryType"`
	Note         string          `json:"note"`
	ImageURI     string          `json:"imageUri"`
}

// AfterFind updates the date to use UTC as timezone, not +0000.
// See Timestamps.AfterFind.
func (t *Transaction) AfterFind(tx *gorm.DB) (err error) {
	t.Date = t.Date.In(time.UTC)
	return t.Timestamps.AfterFind(tx)
}

// BeforeSave defaults the date to now, validates the record and
// normalizes the sign of the amount.
//
// The sign is derived from the category type, like the mobile client
// derived it from the expense/income toggle: expenses are stored
// negative, income positive. After that, only the sign of the amount is
// authoritative for aggregation.
func (t *Transaction) BeforeSave(_ *gorm.DB) (err error) {
	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}

	t.Title = strings.TrimSpace(t.Title)
	t.Note = strings.TrimSpace(t.Note)

	if !slices.Contains([]CategoryType{CategoryTypeExpense, CategoryTypeIncome}, t.CategoryType) {
		return ErrCategoryTypeInvalid
	}

	if t.Amount.IsZero() {
		return ErrTransactionAmountZero
	}

	if t.CategoryType == CategoryTypeExpense {
		t.Amount = t.Amount.Abs().Neg()
	} else {
		t.Amount = t.Amount.Abs()
	}

	return nil
}

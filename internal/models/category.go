package models

import (
	"strings"

	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// CategoryType partitions categories into two disjoint lists.
type CategoryType string

const (
	CategoryTypeExpense CategoryType = "expense"
	CategoryTypeIncome  CategoryType = "income"
)

// Category represents a transaction category.
//
// The ID is a slug derived from the label at creation time. Transactions
// reference it as a loose string, not as a foreign key: a record keeps
// its category ID and title snapshot even when the category vanishes.
type Category struct {
	ID    string       `json:"id" gorm:"primaryKey" example:"other-expense"`
	Label string       `json:"label" example:"Other"`
	Type  CategoryType `json:"type" example:"expense"`
	Timestamps
}

// Categories are never edited or deleted, so defaults only need to be
// written once, when the table is empty.
var defaultCategories = []Category{
	{ID: "food", Label: "Food", Type: CategoryTypeExpense},
	{ID: "transport", Label: "Transport", Type: CategoryTypeExpense},
	{ID: "bills", Label: "Bills", Type: CategoryTypeExpense},
	{ID: "shopping", Label: "Shopping", Type: CategoryTypeExpense},
	{ID: "entertainment", Label: "Entertainment", Type: CategoryTypeExpense},
	{ID: "other-expense", Label: "Other", Type: CategoryTypeExpense},
	{ID: "salary", Label: "Salary", Type: CategoryTypeIncome},
	{ID: "freelance", Label: "Freelance", Type: CategoryTypeIncome},
	{ID: "bonus", Label: "Bonus", Type: CategoryTypeIncome},
	{ID: "investment", Label: "Investment", Type: CategoryTypeIncome},
	{ID: "other-income", Label: "Other income", Type: CategoryTypeIncome},
}

// Slug derives a category ID from a label: lowercased, whitespace
// replaced with hyphens.
func Slug(label string) string {
	return strings.Join(strings.Fields(strings.ToLower(label)), "-")
}

// BeforeCreate validates the category and derives its ID from the label
// when the caller did not set one.
func (c *Category) BeforeCreate(_ *gorm.DB) (err error) {
	c.Label = strings.TrimSpace(c.Label)
	if c.Label == "" {
		return ErrCategoryLabelEmpty
	}

	if !slices.Contains([]CategoryType{CategoryTypeExpense, CategoryTypeIncome}, c.Type) {
		return ErrCategoryTypeInvalid
	}

	if c.ID == "" {
		c.ID = Slug(c.Label)
	}

	return nil
}

// CategoryLabelExists reports whether a category of the given type
// already uses the label, compared case-insensitively. This mirrors the
// de-duplication of the mobile client, which matched on the label only.
func CategoryLabelExists(db *gorm.DB, t CategoryType, label string) (bool, error) {
	var count int64
	err := db.Model(&Category{}).
		Where("type = ?", t).
		Where("LOWER(label) = ?", strings.ToLower(strings.TrimSpace(label))).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// seedCategories writes the default categories on first use.
func seedCategories(db *gorm.DB) error {
	var count int64
	err := db.Model(&Category{}).Count(&count).Error
	if err != nil {
		return err
	}

	if count > 0 {
		return nil
	}

	categories := make([]Category, len(defaultCategories))
	copy(categories, defaultCategories)

	return db.Create(&categories).Error
}

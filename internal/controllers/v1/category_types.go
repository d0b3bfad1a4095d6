package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/m-tracker/backend/internal/models"
)

type CategoryEditable struct {
	Label string              `json:"label" example:"Groceries"`      // Display label for the category
	Type  models.CategoryType `json:"type" example:"expense"`         // Is this an expense or an income category?
}

// model returns the database resource for the API representation of the editable fields
func (editable CategoryEditable) model() models.Category {
	return models.Category{
		Label: editable.Label,
		Type:  editable.Type,
	}
}

type CategoryLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/categories/groceries"`              // The category itself
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?category=groceries"` // Transactions referencing the category
}

// Category is the representation of a Category in API v1.
type Category struct {
	ID string `json:"id" example:"groceries"` // The slug derived from the label at creation time
	CategoryEditable
	models.Timestamps
	Links CategoryLinks `json:"links"`
}

// newCategory returns the API v1 representation of the resource
func newCategory(c *gin.Context, model models.Category) Category {
	url := c.GetString(string(models.DBContextURL))

	return Category{
		ID: model.ID,
		CategoryEditable: CategoryEditable{
			Label: model.Label,
			Type:  model.Type,
		},
		Timestamps: model.Timestamps,
		Links: CategoryLinks{
			Self:         fmt.Sprintf("%s/v1/categories/%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?category=%s", url, model.ID),
		},
	}
}

type CategoryListResponse struct {
	Data  []Category `json:"data"`                                                    // List of categories
	Error *string    `json:"error" example:"the specified category type is invalid"` // The error, if any occurred
}

type CategoryCreateResponse struct {
	Error *string            `json:"error" example:"the category label must be set"` // The error, if any occurred
	Data  []CategoryResponse `json:"data"`                                           // List of created Categories
}

func (t *CategoryCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, CategoryResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type CategoryResponse struct {
	Error *string   `json:"error" example:"the category label must be set"` // The error, if any occurred for this category
	Data  *Category `json:"data"`                                           // The Category data, if creation was successful
}

type CategoryQueryFilter struct {
	Type models.CategoryType `form:"type" filterField:"false"` // Type of the category
}

package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/m-tracker/backend/internal/httputil"
	"github.com/m-tracker/backend/internal/models"
	"golang.org/x/exp/slices"
)

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
//
// Categories can not be updated or deleted. Transactions keep their
// category ID and title snapshot, so removing a category would leave
// records pointing at nothing without making them any more useful.
func RegisterCategoryRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsCategoryList)
		r.GET("", GetCategories)
		r.POST("", CreateCategories)
	}

	// Category with slug
	{
		r.OPTIONS("/:slug", OptionsCategoryDetail)
		r.GET("/:slug", GetCategory)
	}
}

// OptionsCategoryList returns the allowed HTTP methods for the
// category collection.
func OptionsCategoryList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// OptionsCategoryDetail returns the allowed HTTP methods for a
// specific category.
func OptionsCategoryDetail(c *gin.Context) {
	var uri URISlug
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Category{}, "id = ?", uri.Slug).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGet(c)
}

// CreateCategories creates categories from the list of submitted
// category data. The response code is the highest response code number
// that a single category creation would have caused.
func CreateCategories(c *gin.Context) {
	var editables []CategoryEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := CategoryCreateResponse{}

	for _, editable := range editables {
		category := editable.model()

		// Labels are deduplicated per type, matching is case-insensitive
		exists, err := models.CategoryLabelExists(models.DB, category.Type, category.Label)
		if err != nil {
			status = r.appendError(err, status)
			continue
		}
		if exists {
			status = r.appendError(models.ErrCategoryLabelExists, status)
			continue
		}

		err = models.DB.Create(&category).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newCategory(c, category)
		r.Data = append(r.Data, CategoryResponse{Data: &data})
	}

	c.JSON(status, r)
}

// GetCategories returns a list of categories, optionally filtered to a
// single type.
func GetCategories(c *gin.Context) {
	var filter CategoryQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	q := models.DB.Order("label ASC")

	if filter.Type != "" {
		if !slices.Contains([]models.CategoryType{models.CategoryTypeExpense, models.CategoryTypeIncome}, filter.Type) {
			s := errCategoryTypeInvalid.Error()
			c.JSON(http.StatusBadRequest, CategoryListResponse{
				Error: &s,
			})
			return
		}

		q = q.Where("categories.type = ?", filter.Type)
	}

	var categories []models.Category
	err := q.Find(&categories).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Category, 0)
	for _, category := range categories {
		data = append(data, newCategory(c, category))
	}

	c.JSON(http.StatusOK, CategoryListResponse{
		Data: data,
	})
}

// GetCategory returns a specific category.
func GetCategory(c *gin.Context) {
	var uri URISlug
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryResponse{
			Error: &s,
		})
		return
	}

	var category models.Category
	err = models.DB.First(&category, "id = ?", uri.Slug).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryResponse{
			Error: &s,
		})
		return
	}

	data := newCategory(c, category)
	c.JSON(http.StatusOK, CategoryResponse{Data: &data})
}

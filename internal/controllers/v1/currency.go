package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/m-tracker/backend/internal/currency"
	"github.com/m-tracker/backend/internal/httputil"
	"github.com/m-tracker/backend/internal/models"
)

// RegisterCurrencyRoutes registers the routes for display currencies
// with the RouterGroup that is passed.
func RegisterCurrencyRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsCurrencies)
	r.GET("", GetCurrencies)

	r.OPTIONS("/active", OptionsActiveCurrency)
	r.GET("/active", GetActiveCurrency)
	r.PATCH("/active", UpdateActiveCurrency)
}

// OptionsCurrencies returns the allowed HTTP methods for the currency
// registry.
func OptionsCurrencies(c *gin.Context) {
	httputil.OptionsGet(c)
}

// OptionsActiveCurrency returns the allowed HTTP methods for the
// active currency.
func OptionsActiveCurrency(c *gin.Context) {
	httputil.OptionsGetPatch(c)
}

type CurrencyListResponse struct {
	Data []currency.Currency `json:"data"` // All supported currencies
}

type CurrencyResponse struct {
	Error *string            `json:"error" example:"the specified currency code is not supported"` // The error, if any occurred
	Data  *currency.Currency `json:"data"`                                                         // The currency data
}

type CurrencyEditable struct {
	Code string `json:"code" example:"USD"` // Code of the currency to activate
}

// GetCurrencies returns all supported display currencies.
func GetCurrencies(c *gin.Context) {
	c.JSON(http.StatusOK, CurrencyListResponse{
		Data: currency.All(),
	})
}

// GetActiveCurrency returns the active display currency. When none has
// been selected yet, the default currency is returned.
func GetActiveCurrency(c *gin.Context) {
	active := currency.Default()

	setting, err := models.GetSetting(models.DB, models.SettingCurrency)
	if err != nil && !errors.Is(err, models.ErrResourceNotFound) {
		e := err.Error()
		c.JSON(status(err), CurrencyResponse{
			Error: &e,
		})
		return
	}

	if err == nil {
		if selected, ok := currency.ByCode(setting.Value); ok {
			active = selected
		}
	}

	c.JSON(http.StatusOK, CurrencyResponse{Data: &active})
}

// UpdateActiveCurrency sets the active display currency.
func UpdateActiveCurrency(c *gin.Context) {
	var editable CurrencyEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CurrencyResponse{
			Error: &e,
		})
		return
	}

	selected, ok := currency.ByCode(editable.Code)
	if !ok {
		e := errCurrencyInvalid.Error()
		c.JSON(http.StatusBadRequest, CurrencyResponse{
			Error: &e,
		})
		return
	}

	_, err = models.SetSetting(models.DB, models.SettingCurrency, selected.Code)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CurrencyResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, CurrencyResponse{Data: &selected})
}

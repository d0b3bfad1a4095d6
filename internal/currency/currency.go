// Package currency holds the fixed registry of display currencies.
//
// The active currency only affects how amounts are rendered by clients;
// none of the aggregation logic consumes it.
package currency

// Currency describes a display currency.
type Currency struct {
	Code   string `json:"code" example:"NGN"`
	Symbol string `json:"symbol" example:"₦"`
	Label  string `json:"label" example:"₦ Nigerian Naira"`
}

var currencies = []Currency{
	{Code: "NGN", Symbol: "₦", Label: "₦ Nigerian Naira"},
	{Code: "USD", Symbol: "$", Label: "$ US Dollar"},
	{Code: "EUR", Symbol: "€", Label: "€ Euro"},
	{Code: "GBP", Symbol: "£", Label: "£ British Pound"},
}

// All returns the registry. The first entry is the default.
func All() []Currency {
	return currencies
}

// Default returns the currency used when none has been selected.
func Default() Currency {
	return currencies[0]
}

// ByCode looks a currency up by its code.
func ByCode(code string) (Currency, bool) {
	for _, c := range currencies {
		if c.Code == code {
			return c, true
		}
	}

	return Currency{}, false
}

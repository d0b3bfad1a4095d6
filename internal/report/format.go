package report

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatNumber renders an amount for display: absolute value, rounded
// to the nearest integer, grouped in thousands. The sign and the
// currency symbol are applied by the caller.
func FormatNumber(amount decimal.Decimal) string {
	return printer.Sprintf("%d", amount.Abs().Round(0).IntPart())
}

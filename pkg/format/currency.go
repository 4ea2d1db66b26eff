// Package format renders plain numbers for display. The engines emit raw
// floats; everything locale-shaped lives here.
package format

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Indian is the locale tag used for all currency display. en-IN grouping
// places the last three digits in one group and pairs before it (12,34,567).
var Indian = language.MustParse("en-IN")

var printer = message.NewPrinter(Indian)

// Rupee returns an Indian-grouped rupee string with no fraction digits
// (e.g., "₹12,34,567"). Values are rounded to the nearest rupee.
func Rupee(amount float64) string {
	if amount < 0 {
		return "-₹" + printer.Sprintf("%d", int64(math.Round(-amount)))
	}
	return "₹" + printer.Sprintf("%d", int64(math.Round(amount)))
}

// Numeric returns the grouped number without a currency symbol.
func Numeric(amount float64) string {
	return printer.Sprintf("%d", int64(math.Round(amount)))
}

// Percent renders a ratio as a percentage with one decimal (e.g., "58.0%").
func Percent(ratio float64) string {
	return fmt.Sprintf("%.1f%%", ratio*100)
}

package pricing

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatRs renders an amount in rupees with thousands separators, e.g.
// "Rs. 15,000". Fractional amounts keep two decimals.
func FormatRs(v float64) string {
	if v == math.Trunc(v) {
		return printer.Sprintf("Rs. %d", int64(v))
	}
	return printer.Sprintf("Rs. %.2f", v)
}

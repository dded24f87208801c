package chrome

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.Korean)

// FormatNumber renders v with Korean-locale grouping, keeping at most
// three fraction digits. NaN and infinities render however the locale
// formatter defines them; validating v is the caller's concern.
func FormatNumber(v float64) string {
	return printer.Sprint(number.Decimal(v, number.MaxFractionDigits(3)))
}

// FormatInt renders n with Korean-locale grouping.
func FormatInt(n int64) string {
	return printer.Sprintf("%d", n)
}

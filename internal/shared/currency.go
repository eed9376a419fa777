package shared

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var inr = message.NewPrinter(language.MustParse("en-IN"))

// FormatINR renders an amount with Indian digit grouping and the rupee sign,
// e.g. 125000.5 -> "₹1,25,000.50".
func FormatINR(amount float64) string {
	return inr.Sprintf("₹%v", number.Decimal(amount,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2)))
}

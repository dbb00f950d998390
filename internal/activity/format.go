package activity

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	printer = message.NewPrinter(language.English)
	titler  = cases.Title(language.English)
)

// FormatMoney renders an amount with a currency sign and grouping, e.g. $1,234.50
func FormatMoney(amount float64) string {
	if amount < 0 {
		return printer.Sprintf("-$%.2f", -amount)
	}
	return printer.Sprintf("$%.2f", amount)
}

// FormatHours renders a time amount, e.g. 2.5h
func FormatHours(hours float64) string {
	return printer.Sprintf("%.1fh", hours)
}

// Title capitalizes a label for display
func Title(s string) string {
	return titler.String(s)
}

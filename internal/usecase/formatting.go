package usecase

import (
	"fmt"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/pricepersize/backend/internal/domain"
)

// printer renders numbers in en-US conventions (grouping, decimal point),
// matching what the web UI shows.
var printer = message.NewPrinter(language.AmericanEnglish)

// FormatCurrency renders an amount with its currency symbol. Precision
// escalates as the magnitude shrinks so tiny per-unit prices stay
// legible: 2 decimals generally, 3 below 0.10, 4 below 0.01. Codes that
// are not valid ISO currencies fall back to "<amount> <code>".
func FormatCurrency(amount float64, code string) string {
	if code == "" {
		code = "USD"
	}

	maxDigits := 2
	if amount < 0.01 {
		maxDigits = 4
	} else if amount < 0.1 {
		maxDigits = 3
	}

	if _, err := currency.ParseISO(code); err != nil {
		return fmt.Sprintf("%.*f %s", maxDigits, amount, code)
	}

	formatted := printer.Sprint(number.Decimal(amount,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(maxDigits),
	))
	return domain.CurrencySymbol(code) + formatted
}

// FormatUnit renders a quantity with its unit label. Larger quantities
// need less precision: 0 decimals at >=100, 1 at >=10, else 2.
func FormatUnit(quantity float64, unit string) string {
	decimals := 2
	if quantity >= 100 {
		decimals = 0
	} else if quantity >= 10 {
		decimals = 1
	}
	return fmt.Sprintf("%.*f %s", decimals, quantity, unit)
}

// FormatPercentage renders a percentage with one decimal place.
func FormatPercentage(value float64) string {
	return fmt.Sprintf("%.1f%%", value)
}

// FormatPerUnitPrice renders strings like "$0.0027/ml".
func FormatPerUnitPrice(perUnitPrice float64, code, unit string) string {
	return FormatCurrency(perUnitPrice, code) + "/" + unit
}

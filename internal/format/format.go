// Package format provides display formatting for amounts and dates according
// to the user's stored preferences.
package format

import (
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/fintrack/backend/internal/domain/entity"
)

// InvalidDate is returned for dates that cannot be parsed or formatted.
const InvalidDate = "Invalid date"

// printer renders numbers with en-US grouping, matching the web client's
// Intl.NumberFormat("en-US") behaviour.
var printer = message.NewPrinter(language.AmericanEnglish)

// dateLayouts maps the supported preference patterns to Go reference layouts.
var dateLayouts = map[entity.DateFormat]string{
	entity.DateFormatDMY: "02/01/2006",
	entity.DateFormatMDY: "01/02/2006",
	entity.DateFormatYMD: "2006-01-02",
}

// parseLayouts are the accepted input layouts for DateString, most specific first.
var parseLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Currency renders an amount as a localized currency string for the given ISO
// code. Unknown codes fall back to "<code> <amount>".
func Currency(amount decimal.Decimal, code entity.Currency) string {
	unit, err := currency.ParseISO(string(code))
	if err != nil {
		return string(code) + " " + amount.StringFixed(2)
	}

	value, _ := amount.Float64()
	return printer.Sprintf("%v", currency.Symbol(unit.Amount(value)))
}

// Date renders a date according to one of the supported preference patterns.
// The zero time is treated as invalid. An unknown pattern falls back to the
// default DD/MM/YYYY.
func Date(t time.Time, pattern entity.DateFormat) string {
	if t.IsZero() {
		return InvalidDate
	}

	layout, ok := dateLayouts[pattern]
	if !ok {
		layout = dateLayouts[entity.DateFormatDMY]
	}
	return t.Format(layout)
}

// DateString parses a date string and renders it according to the given
// pattern. Unparseable input yields the literal "Invalid date".
func DateString(value string, pattern entity.DateFormat) string {
	for _, layout := range parseLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return Date(t, pattern)
		}
	}
	return InvalidDate
}

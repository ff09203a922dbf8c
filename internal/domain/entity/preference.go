// Package entity defines the core business entities for the domain layer.
package entity

// Currency represents the user's preferred display currency.
type Currency string

const (
	CurrencyINR Currency = "INR"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
)

// ValidCurrency reports whether the given currency is supported.
func ValidCurrency(c Currency) bool {
	switch c {
	case CurrencyINR, CurrencyUSD, CurrencyEUR, CurrencyGBP:
		return true
	}
	return false
}

// DateFormat represents the user's preferred date display pattern.
type DateFormat string

const (
	DateFormatDMY DateFormat = "DD/MM/YYYY"
	DateFormatMDY DateFormat = "MM/DD/YYYY"
	DateFormatYMD DateFormat = "YYYY-MM-DD"
)

// ValidDateFormat reports whether the given date format is supported.
func ValidDateFormat(f DateFormat) bool {
	switch f {
	case DateFormatDMY, DateFormatMDY, DateFormatYMD:
		return true
	}
	return false
}

// Preferences holds a user's display preferences. Exactly one value per user;
// missing preferences resolve to the defaults.
type Preferences struct {
	Currency   Currency   `json:"currency"`
	DateFormat DateFormat `json:"dateFormat"`
}

// DefaultPreferences returns the preferences applied before a user has saved any.
func DefaultPreferences() *Preferences {
	return &Preferences{
		Currency:   CurrencyINR,
		DateFormat: DateFormatDMY,
	}
}

package format

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fintrack/backend/internal/domain/entity"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		name     string
		amount   decimal.Decimal
		code     entity.Currency
		contains string
	}{
		{
			name:     "USD amount",
			amount:   decimal.NewFromFloat(1234.5),
			code:     entity.CurrencyUSD,
			contains: "1,234.5",
		},
		{
			name:     "INR amount",
			amount:   decimal.NewFromInt(500),
			code:     entity.CurrencyINR,
			contains: "500",
		},
		{
			name:     "EUR amount",
			amount:   decimal.NewFromFloat(99.99),
			code:     entity.CurrencyEUR,
			contains: "99.99",
		},
		{
			name:     "GBP amount",
			amount:   decimal.NewFromFloat(0.5),
			code:     entity.CurrencyGBP,
			contains: "0.5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Currency(tt.amount, tt.code)

			if !strings.Contains(got, tt.contains) {
				t.Errorf("Currency(%s, %s) = %q, want it to contain %q", tt.amount, tt.code, got, tt.contains)
			}
			if got == tt.amount.String() {
				t.Errorf("Currency(%s, %s) = %q, expected a currency marker", tt.amount, tt.code, got)
			}
		})
	}
}

func TestCurrencyUnknownCode(t *testing.T) {
	got := Currency(decimal.NewFromInt(10), entity.Currency("???"))
	if got != "??? 10.00" {
		t.Errorf("Currency with unknown code = %q, want %q", got, "??? 10.00")
	}
}

func TestDate(t *testing.T) {
	date := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		pattern entity.DateFormat
		want    string
	}{
		{"day month year", entity.DateFormatDMY, "05/03/2024"},
		{"month day year", entity.DateFormatMDY, "03/05/2024"},
		{"iso", entity.DateFormatYMD, "2024-03-05"},
		{"unknown pattern falls back", entity.DateFormat("YY.MM"), "05/03/2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Date(date, tt.pattern); got != tt.want {
				t.Errorf("Date(%v, %s) = %q, want %q", date, tt.pattern, got, tt.want)
			}
		})
	}
}

func TestDateZeroTime(t *testing.T) {
	if got := Date(time.Time{}, entity.DateFormatYMD); got != InvalidDate {
		t.Errorf("Date(zero) = %q, want %q", got, InvalidDate)
	}
}

func TestDateString(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		pattern entity.DateFormat
		want    string
	}{
		{"iso date", "2024-03-15", entity.DateFormatDMY, "15/03/2024"},
		{"rfc3339", "2024-03-15T10:30:00Z", entity.DateFormatMDY, "03/15/2024"},
		{"datetime without zone", "2024-12-01T08:00:00", entity.DateFormatYMD, "2024-12-01"},
		{"garbage", "not-a-date", entity.DateFormatYMD, InvalidDate},
		{"empty", "", entity.DateFormatDMY, InvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DateString(tt.value, tt.pattern); got != tt.want {
				t.Errorf("DateString(%q, %s) = %q, want %q", tt.value, tt.pattern, got, tt.want)
			}
		})
	}
}

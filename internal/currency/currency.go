package currency

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Default is the currency reported when none is configured.
const Default = "EUR"

// Zero-decimal currencies per ISO 4217: no minor units (e.g. KRW, JPY)
var zeroDecimalCurrencies = map[string]bool{
	"BIF": true, "CLP": true, "DJF": true, "GNF": true,
	"JPY": true, "KMF": true, "KRW": true, "MGA": true,
	"PYG": true, "RWF": true, "UGX": true, "VND": true,
	"VUV": true, "XAF": true, "XOF": true, "XPF": true,
}

// Normalize returns the upper-case ISO code, or Default when c is empty.
func Normalize(c string) string {
	c = strings.ToUpper(strings.TrimSpace(c))
	if c == "" {
		return Default
	}
	return c
}

// IsZeroDecimal returns true for currencies with no decimal places (KRW, JPY, etc.)
func IsZeroDecimal(c string) bool {
	return zeroDecimalCurrencies[strings.ToUpper(c)]
}

// DecimalPlaces returns the number of decimal places for the currency.
func DecimalPlaces(c string) int32 {
	if IsZeroDecimal(c) {
		return 0
	}
	return 2
}

// Round rounds amount to the appropriate precision for the currency.
func Round(amount decimal.Decimal, c string) decimal.Decimal {
	return amount.Round(DecimalPlaces(c))
}

// Float rounds amount for the currency and converts it for JSON output.
func Float(amount decimal.Decimal, c string) float64 {
	return Round(amount, c).InexactFloat64()
}

package currency

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "EUR", Normalize(""))
	assert.Equal(t, "EUR", Normalize(" eur "))
	assert.Equal(t, "USD", Normalize("usd"))
}

func TestRound(t *testing.T) {
	tests := []struct {
		amount   string
		currency string
		want     string
	}{
		{"10.005", "EUR", "10.01"},
		{"10.004", "eur", "10"},
		{"1234.5", "JPY", "1235"},
		{"99.99", "KRW", "100"},
	}
	for _, tt := range tests {
		got := Round(decimal.RequireFromString(tt.amount), tt.currency)
		assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "%s %s: got %s", tt.amount, tt.currency, got)
	}
}

func TestFloat(t *testing.T) {
	assert.Equal(t, 600.0, Float(decimal.RequireFromString("600.00"), "EUR"))
	assert.Equal(t, 33.33, Float(decimal.RequireFromString("33.3333"), "EUR"))
	assert.Equal(t, 0.0, Float(decimal.Zero, "EUR"))
}

func TestDecimalPlaces(t *testing.T) {
	assert.Equal(t, int32(2), DecimalPlaces("EUR"))
	assert.Equal(t, int32(0), DecimalPlaces("jpy"))
	assert.True(t, IsZeroDecimal("VND"))
	assert.False(t, IsZeroDecimal("GBP"))
}

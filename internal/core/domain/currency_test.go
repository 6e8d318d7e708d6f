package domain_test

import (
	"testing"

	"catalog-service/internal/core/domain"

	"github.com/stretchr/testify/assert"
)

func TestConvertPrice(t *testing.T) {
	usd := fptr(100000)

	aed := domain.ConvertPrice(usd, domain.CurrencyAED)
	assert.InDelta(t, 367000, *aed, 0.001)

	eur := domain.ConvertPrice(usd, domain.CurrencyEUR)
	assert.InDelta(t, 91000, *eur, 0.001)

	same := domain.ConvertPrice(usd, domain.CurrencyUSD)
	assert.InDelta(t, 100000, *same, 0.001)

	assert.Nil(t, domain.ConvertPrice(nil, domain.CurrencyAED))
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		name     string
		amount   *float64
		currency domain.Currency
		status   domain.CarStatus
		want     string
	}{
		{"aed with grouping", fptr(100000), domain.CurrencyAED, domain.StatusAvailable, "AED 367,000"},
		{"usd", fptr(1250000), domain.CurrencyUSD, domain.StatusAvailable, "$ 1,250,000"},
		{"eur", fptr(100000), domain.CurrencyEUR, domain.StatusAvailable, "€ 91,000"},
		{"sold wins over price", fptr(100000), domain.CurrencyUSD, domain.StatusSold, "Sold"},
		{"sold wins over missing price", nil, domain.CurrencyAED, domain.StatusSold, "Sold"},
		{"price on request", nil, domain.CurrencyUSD, domain.StatusAvailable, "Price on Request"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.FormatPrice(tt.amount, tt.currency, tt.status))
		})
	}
}

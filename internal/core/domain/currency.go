package domain

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Фиксированные мультипликаторы курсов. Это осознанное упрощение,
// а не заглушка: сайт показывает ориентировочные цены, живые курсы
// не требуются. Точка расширения — см. DESIGN.md (RateProvider).
const (
	AEDPerUSD = 3.67
	EURPerUSD = 0.91
)

var currencySymbols = map[Currency]string{
	CurrencyUSD: "$",
	CurrencyAED: "AED",
	CurrencyEUR: "€",
}

// Принтер с группировкой разрядов в формате en-US ("367,000").
var pricePrinter = message.NewPrinter(language.AmericanEnglish)

// ConvertPrice переводит каноническую цену в USD в целевую валюту.
// nil на входе (цена по запросу) остается nil на выходе.
func ConvertPrice(amountUSD *float64, target Currency) *float64 {
	if amountUSD == nil {
		return nil
	}

	converted := *amountUSD
	switch target {
	case CurrencyAED:
		converted *= AEDPerUSD
	case CurrencyEUR:
		converted *= EURPerUSD
	}
	return &converted
}

// FormatPrice возвращает строку цены для карточки автомобиля.
// Проданный автомобиль всегда подписывается "Sold", отсутствующая цена —
// "Price on Request". Конвертация выполняется до форматирования.
func FormatPrice(amountUSD *float64, target Currency, status CarStatus) string {
	if status == StatusSold {
		return "Sold"
	}

	converted := ConvertPrice(amountUSD, target)
	if converted == nil {
		return "Price on Request"
	}

	return fmt.Sprintf("%s %s", currencySymbols[target], pricePrinter.Sprintf("%.0f", *converted))
}

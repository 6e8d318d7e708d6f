package domain

import (
	"sort"
)

// SortCars возвращает новый список, упорядоченный согласно order.
// Сортировка стабильная: элементы с равными ключами сохраняют исходный
// порядок — это гарантирует детерминированную пагинацию при повторных
// запросах с теми же критериями. Вход не модифицируется.
//
// Для ценовых сортировок проданные автомобили всегда уходят в конец
// выдачи независимо от цены; их взаимный порядок сохраняется.
// Для newest/oldest статус на порядок не влияет.
func SortCars(cars []Car, order SortOrder) []Car {
	sorted := make([]Car, len(cars))
	copy(sorted, cars)

	switch order {
	case SortPriceHigh:
		sort.SliceStable(sorted, func(i, j int) bool {
			if less, decided := soldLast(sorted[i], sorted[j]); decided {
				return less
			}
			return priceOrZero(sorted[i]) > priceOrZero(sorted[j])
		})
	case SortPriceLow:
		sort.SliceStable(sorted, func(i, j int) bool {
			if less, decided := soldLast(sorted[i], sorted[j]); decided {
				return less
			}
			return priceOrZero(sorted[i]) < priceOrZero(sorted[j])
		})
	case SortNewest:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Year > sorted[j].Year
		})
	case SortOldest:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Year < sorted[j].Year
		})
	}

	return sorted
}

// soldLast решает пару, в которой статусы различаются: доступный всегда
// раньше проданного. Пара из двух проданных считается равной (decided=true,
// less=false), чтобы стабильная сортировка не трогала их взаимный порядок.
func soldLast(a, b Car) (less, decided bool) {
	if a.IsSold() || b.IsSold() {
		return !a.IsSold() && b.IsSold(), true
	}
	return false, false
}

func priceOrZero(c Car) float64 {
	if c.PriceUSD == nil {
		return 0
	}
	return *c.PriceUSD
}

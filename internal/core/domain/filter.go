package domain

import (
	"strings"
)

// filterStage — один предикат конвейера фильтрации. Возвращает true,
// если автомобиль проходит стадию (или её критерий не задан).
type filterStage func(Car, SearchCriteria) bool

// Порядок стадий фиксирован. На итоговое множество он не влияет
// (стадии — чистые предикаты), но единый порядок упрощает чтение и отладку.
var filterStages = []filterStage{
	keywordStage,
	makeStage,
	modelStage,
	bodyTypeStage,
	yearStage,
	priceCeilingStage,
	mileageStage,
	statusStage,
}

// ApplyFilters применяет все стадии фильтрации к списку.
// Функция чистая и сохраняет исходный порядок прошедших элементов.
func ApplyFilters(cars []Car, c SearchCriteria) []Car {
	result := make([]Car, 0, len(cars))
	for _, car := range cars {
		if passesAllStages(car, c) {
			result = append(result, car)
		}
	}
	return result
}

func passesAllStages(car Car, c SearchCriteria) bool {
	for _, stage := range filterStages {
		if !stage(car, c) {
			return false
		}
	}
	return true
}

// keywordStage — поиск подстроки без учета регистра по полям
// name, make, model и engine. Достаточно совпадения в любом из них.
func keywordStage(car Car, c SearchCriteria) bool {
	if c.Keyword == "" {
		return true
	}
	keyword := strings.ToLower(c.Keyword)
	for _, field := range []string{car.Name, car.Make, car.Model, car.Engine} {
		if strings.Contains(strings.ToLower(field), keyword) {
			return true
		}
	}
	return false
}

// makeStage — равенство без учета регистра. Для марки "mercedes" действует
// особое правило: совпадение по префиксу, чтобы под критерий "mercedes"
// попадали и "mercedes", и "mercedes-benz". Это именованное исключение,
// а не общее правило для всех марок.
func makeStage(car Car, c SearchCriteria) bool {
	if c.Make == "" {
		return true
	}
	wanted := strings.ToLower(c.Make)
	carMake := strings.ToLower(car.Make)
	if wanted == "mercedes" {
		return strings.HasPrefix(carMake, wanted)
	}
	return carMake == wanted
}

// modelStage — либо точное совпадение поля model (без учета регистра),
// либо вхождение критерия в name: в части объявлений модель не вынесена
// в отдельное поле и присутствует только в названии.
func modelStage(car Car, c SearchCriteria) bool {
	if c.Model == "" {
		return true
	}
	wanted := strings.ToLower(c.Model)
	if strings.ToLower(car.Model) == wanted {
		return true
	}
	return strings.Contains(strings.ToLower(car.Name), wanted)
}

func bodyTypeStage(car Car, c SearchCriteria) bool {
	if c.BodyType == "" {
		return true
	}
	return strings.EqualFold(car.BodyType, c.BodyType)
}

func yearStage(car Car, c SearchCriteria) bool {
	if c.Year == 0 {
		return true
	}
	return car.Year == c.Year
}

// priceCeilingStage — потолок цены задается в AED, цена хранится в USD.
// Автомобили без цены не проходят: их нельзя доказать уложившимися в бюджет.
func priceCeilingStage(car Car, c SearchCriteria) bool {
	if c.PriceCeilingAED == 0 {
		return true
	}
	if car.PriceUSD == nil {
		return false
	}
	return *car.PriceUSD*AEDPerUSD <= c.PriceCeilingAED
}

// mileageStage — попадание пробега в диапазон. Непарсящийся пробег
// превращается в 0 и поэтому проходит любой диапазон с нижней границей 0
// (сохранённое поведение исходной системы).
func mileageStage(car Car, c SearchCriteria) bool {
	if c.Mileage == nil {
		return true
	}
	km := MileageKm(car.Mileage)
	if km < c.Mileage.Min {
		return false
	}
	if c.Mileage.OpenEnded {
		return true
	}
	return km <= c.Mileage.Max
}

func statusStage(car Car, c SearchCriteria) bool {
	switch c.Status {
	case StatusFilterAvailable:
		return car.Status == StatusAvailable
	case StatusFilterSold:
		return car.Status == StatusSold
	default:
		return true
	}
}

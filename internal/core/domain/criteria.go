package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// SortOrder — порядок сортировки выдачи.
type SortOrder string

const (
	SortNone      SortOrder = ""
	SortPriceHigh SortOrder = "price_high"
	SortPriceLow  SortOrder = "price_low"
	SortNewest    SortOrder = "newest"
	SortOldest    SortOrder = "oldest"
)

// StatusFilter — фильтр по статусу объявления.
type StatusFilter string

const (
	StatusFilterAll       StatusFilter = "all"
	StatusFilterAvailable StatusFilter = "available"
	StatusFilterSold      StatusFilter = "sold"
)

// Currency — валюта отображения цены.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyAED Currency = "AED"
	CurrencyEUR Currency = "EUR"
)

// MileageRange — диапазон пробега. Min всегда включительно.
// OpenEnded=true означает "от Min и выше", Max при этом игнорируется.
type MileageRange struct {
	Min       int
	Max       int
	OpenEnded bool
}

// SearchCriteria — полный запрос пользователя к каталогу: фильтры,
// сортировка, страница и валюта. Нулевые значения полей означают
// "ограничение не задано".
type SearchCriteria struct {
	Keyword         string
	Make            string
	Model           string
	BodyType        string
	Year            int
	PriceCeilingAED float64
	Mileage         *MileageRange
	Status          StatusFilter
	Sort            SortOrder
	Page            int
	Currency        Currency
}

// Ключи плоской карты параметров (совпадают с query-string фронтенда).
const (
	paramKeyword  = "keyword"
	paramMake     = "make"
	paramModel    = "model"
	paramBodyType = "body_type"
	paramYear     = "year"
	paramPrice    = "price"
	paramMileage  = "mileage"
	paramSort     = "sort"
	paramStatus   = "status"
	paramCurrency = "currency"
	paramPage     = "page"
)

// ParseCriteria восстанавливает критерии из плоской строковой карты.
// Некорректные значения деградируют до "ограничение не задано",
// парсинг никогда не возвращает ошибку.
func ParseCriteria(params map[string]string) SearchCriteria {
	c := SearchCriteria{
		Status:   StatusFilterAll,
		Currency: CurrencyUSD,
		Page:     1,
	}

	c.Keyword = strings.TrimSpace(params[paramKeyword])
	c.Make = strings.TrimSpace(params[paramMake])
	c.Model = strings.TrimSpace(params[paramModel])
	c.BodyType = strings.TrimSpace(params[paramBodyType])

	if year, err := strconv.Atoi(params[paramYear]); err == nil && year > 0 {
		c.Year = year
	}
	if price, err := strconv.ParseFloat(params[paramPrice], 64); err == nil && price > 0 {
		c.PriceCeilingAED = price
	}
	c.Mileage = parseMileageRange(params[paramMileage])

	switch SortOrder(params[paramSort]) {
	case SortPriceHigh, SortPriceLow, SortNewest, SortOldest:
		c.Sort = SortOrder(params[paramSort])
	}

	switch StatusFilter(params[paramStatus]) {
	case StatusFilterAvailable, StatusFilterSold:
		c.Status = StatusFilter(params[paramStatus])
	}

	switch Currency(params[paramCurrency]) {
	case CurrencyAED, CurrencyEUR:
		c.Currency = Currency(params[paramCurrency])
	}

	if page, err := strconv.Atoi(params[paramPage]); err == nil && page > 1 {
		c.Page = page
	}

	return c
}

// Params сериализует критерии обратно в плоскую карту.
// Незаданные поля и значения по умолчанию опускаются, поэтому
// ParseCriteria(c.Params()) == c для любых критериев.
func (c SearchCriteria) Params() map[string]string {
	params := make(map[string]string)

	if c.Keyword != "" {
		params[paramKeyword] = c.Keyword
	}
	if c.Make != "" {
		params[paramMake] = c.Make
	}
	if c.Model != "" {
		params[paramModel] = c.Model
	}
	if c.BodyType != "" {
		params[paramBodyType] = c.BodyType
	}
	if c.Year > 0 {
		params[paramYear] = strconv.Itoa(c.Year)
	}
	if c.PriceCeilingAED > 0 {
		params[paramPrice] = strconv.FormatFloat(c.PriceCeilingAED, 'f', -1, 64)
	}
	if c.Mileage != nil {
		params[paramMileage] = formatMileageRange(*c.Mileage)
	}
	if c.Sort != SortNone {
		params[paramSort] = string(c.Sort)
	}
	if c.Status != StatusFilterAll {
		params[paramStatus] = string(c.Status)
	}
	if c.Currency != CurrencyUSD {
		params[paramCurrency] = string(c.Currency)
	}
	if c.Page > 1 {
		params[paramPage] = strconv.Itoa(c.Page)
	}

	return params
}

// parseMileageRange понимает два формата: "min-max" и "min+" (без верхней
// границы). Всё остальное считается отсутствием ограничения.
func parseMileageRange(raw string) *MileageRange {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	if min, ok := strings.CutSuffix(raw, "+"); ok {
		minValue, err := strconv.Atoi(min)
		if err != nil || minValue < 0 {
			return nil
		}
		return &MileageRange{Min: minValue, OpenEnded: true}
	}

	minStr, maxStr, ok := strings.Cut(raw, "-")
	if !ok {
		return nil
	}
	minValue, err := strconv.Atoi(minStr)
	if err != nil || minValue < 0 {
		return nil
	}
	maxValue, err := strconv.Atoi(maxStr)
	if err != nil || maxValue < minValue {
		return nil
	}
	return &MileageRange{Min: minValue, Max: maxValue}
}

func formatMileageRange(r MileageRange) string {
	if r.OpenEnded {
		return fmt.Sprintf("%d+", r.Min)
	}
	return fmt.Sprintf("%d-%d", r.Min, r.Max)
}

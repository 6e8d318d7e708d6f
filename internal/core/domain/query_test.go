package domain_test

import (
	"testing"

	"catalog-service/internal/core/domain"

	"github.com/stretchr/testify/assert"
)

func TestRunQueryComposition(t *testing.T) {
	catalog := make([]domain.Car, 0, 30)
	for i := 1; i <= 30; i++ {
		status := domain.StatusAvailable
		if i%3 == 0 {
			status = domain.StatusSold
		}
		catalog = append(catalog, domain.Car{
			ID:       i,
			Make:     "bmw",
			Year:     2000 + i%10,
			PriceUSD: fptr(float64(10000 * i)),
			Status:   status,
		})
	}

	result := domain.RunQuery(catalog, domain.SearchCriteria{
		Status: domain.StatusFilterAvailable,
		Sort:   domain.SortPriceLow,
		Page:   1,
	})

	// 30 машин, каждая третья продана: совпало 20, страниц ceil(20/12) = 2.
	assert.Equal(t, 20, result.TotalMatched)
	assert.Equal(t, 2, result.TotalPages)
	assert.Len(t, result.PageItems, domain.PageSize)

	// Сортировка применена до пагинации.
	for i := 1; i < len(result.PageItems); i++ {
		assert.LessOrEqual(t, *result.PageItems[i-1].PriceUSD, *result.PageItems[i].PriceUSD)
	}
}

func TestRunQueryIsPure(t *testing.T) {
	catalog := testCatalog()
	criteria := domain.SearchCriteria{Make: "mercedes", Sort: domain.SortPriceHigh, Page: 1}

	first := domain.RunQuery(catalog, criteria)
	second := domain.RunQuery(catalog, criteria)

	assert.Equal(t, first, second)
}

func TestRunQueryEmptyPageBeyondRange(t *testing.T) {
	catalog := testCatalog()

	result := domain.RunQuery(catalog, domain.SearchCriteria{Page: 42})

	assert.Empty(t, result.PageItems)
	assert.Equal(t, len(catalog), result.TotalMatched)
	assert.Equal(t, 1, result.TotalPages)
}

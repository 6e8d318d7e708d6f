package usecase_test

import (
	"context"
	"errors"
	"testing"

	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fptr(v float64) *float64 { return &v }

func sampleCatalog() []domain.Car {
	return []domain.Car{
		{ID: 1, Name: "Mercedes-Benz G63", Make: "mercedes-benz", Model: "G63", Year: 2022, PriceUSD: fptr(200000), BodyType: "SUV", Status: domain.StatusAvailable},
		{ID: 2, Name: "BMW M4", Make: "bmw", Model: "M4", Year: 2023, PriceUSD: fptr(95000), BodyType: "Coupe", Status: domain.StatusAvailable},
		{ID: 3, Name: "Audi RS6", Make: "audi", Model: "RS6", Year: 2022, PriceUSD: fptr(130000), BodyType: "Wagon", Status: domain.StatusSold},
		{ID: 4, Name: "Mercedes S500", Make: "mercedes", Model: "S500", Year: 2020, PriceUSD: nil, BodyType: "Sedan", Status: domain.StatusAvailable},
	}
}

func TestSearchInventoryAppliesEngine(t *testing.T) {
	source := &fakeCatalogSource{cars: sampleCatalog()}
	uc := usecase.NewSearchInventoryUseCase(source)

	result, err := uc.Execute(context.Background(), domain.SearchCriteria{
		Make: "mercedes",
		Page: 1,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, result.TotalMatched)
	assert.Equal(t, 1, result.TotalPages)
	assert.Len(t, result.PageItems, 2)
}

func TestSearchInventorySortAndPaginate(t *testing.T) {
	source := &fakeCatalogSource{cars: sampleCatalog()}
	uc := usecase.NewSearchInventoryUseCase(source)

	result, err := uc.Execute(context.Background(), domain.SearchCriteria{
		Sort: domain.SortPriceLow,
		Page: 1,
	})
	require.NoError(t, err)

	// Без цены сортируется как 0, проданный уходит в конец.
	assert.Equal(t, []int{4, 2, 1, 3}, idsOf(result.PageItems))
}

func TestSearchInventoryCatalogUnavailable(t *testing.T) {
	source := &fakeCatalogSource{err: errors.New("connection refused")}
	uc := usecase.NewSearchInventoryUseCase(source)

	_, err := uc.Execute(context.Background(), domain.SearchCriteria{Page: 1})
	assert.ErrorIs(t, err, domain.ErrCatalogUnavailable)
}

func idsOf(cars []domain.Car) []int {
	ids := make([]int, len(cars))
	for i, car := range cars {
		ids[i] = car.ID
	}
	return ids
}

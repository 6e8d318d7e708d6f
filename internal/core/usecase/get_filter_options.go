package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"catalog-service/internal/contextkeys"
	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/port"
)

// GetFilterOptionsUseCase собирает уникальные значения для выпадающих
// списков поисковой формы: марки, типы кузова, годы.
type GetFilterOptionsUseCase struct {
	catalog port.CatalogSourcePort
}

func NewGetFilterOptionsUseCase(catalog port.CatalogSourcePort) *GetFilterOptionsUseCase {
	return &GetFilterOptionsUseCase{catalog: catalog}
}

func (uc *GetFilterOptionsUseCase) Execute(ctx context.Context) (*domain.FilterOptions, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "GetFilterOptions"})

	cars, err := uc.catalog.FetchCatalog(ctx)
	if err != nil {
		ucLogger.Error("Catalog source returned an error", err, nil)
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}

	makes := make(map[string]struct{})
	bodyTypes := make(map[string]struct{})
	years := make(map[int]struct{})

	for _, car := range cars {
		if m := strings.ToLower(strings.TrimSpace(car.Make)); m != "" {
			makes[m] = struct{}{}
		}
		if b := strings.TrimSpace(car.BodyType); b != "" {
			bodyTypes[b] = struct{}{}
		}
		if car.Year > 0 {
			years[car.Year] = struct{}{}
		}
	}

	options := &domain.FilterOptions{
		Makes:     sortedStrings(makes),
		BodyTypes: sortedStrings(bodyTypes),
		Years:     sortedYearsDesc(years),
		Count:     len(cars),
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"makes":      len(options.Makes),
		"body_types": len(options.BodyTypes),
		"years":      len(options.Years),
	})
	return options, nil
}

func sortedStrings(set map[string]struct{}) []string {
	values := make([]string, 0, len(set))
	for v := range set {
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

func sortedYearsDesc(set map[int]struct{}) []int {
	values := make([]int, 0, len(set))
	for v := range set {
		values = append(values, v)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(values)))
	return values
}

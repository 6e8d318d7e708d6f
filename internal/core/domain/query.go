package domain

// QueryResult — результат полного прогона запроса по каталогу.
type QueryResult struct {
	PageItems    []Car
	TotalPages   int
	TotalMatched int
}

// RunQuery — композиция движка: фильтрация → сортировка → пагинация.
// Функция чистая: одинаковые входы всегда дают одинаковый результат,
// скрытого состояния и кеширования здесь нет. Пересчет на каждом запросе
// допустим — каталог ограничен несколькими тысячами позиций.
func RunQuery(catalog []Car, c SearchCriteria) QueryResult {
	filtered := ApplyFilters(catalog, c)
	sorted := SortCars(filtered, c.Sort)
	page := Paginate(sorted, c.Page, PageSize)

	return QueryResult{
		PageItems:    page.PageItems,
		TotalPages:   page.TotalPages,
		TotalMatched: len(filtered),
	}
}

package domain

// PageSize — фиксированный размер страницы каталога.
const PageSize = 12

// PageResult — одна страница выдачи и общее число страниц.
type PageResult struct {
	PageItems  []Car
	TotalPages int
}

// Paginate нарезает упорядоченный список на страницы фиксированного размера.
// Запрос страницы за пределами диапазона возвращает пустой срез, а не ошибку:
// не показывать навигацию на несуществующие страницы — обязанность
// отображающего слоя. TotalPages <= 1 — сигнал, что пагинацию в UI
// можно не рисовать.
func Paginate(cars []Car, page, pageSize int) PageResult {
	if pageSize <= 0 {
		return PageResult{PageItems: []Car{}}
	}

	totalPages := (len(cars) + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	if page < 1 || start >= len(cars) {
		return PageResult{PageItems: []Car{}, TotalPages: totalPages}
	}

	end := start + pageSize
	if end > len(cars) {
		end = len(cars)
	}

	return PageResult{PageItems: cars[start:end], TotalPages: totalPages}
}

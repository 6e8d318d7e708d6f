package domain

// FilterOptions — доступные значения фильтров для выпадающих списков
// поисковой формы, собранные по текущему каталогу.
type FilterOptions struct {
	Makes     []string
	BodyTypes []string
	Years     []int // по убыванию, свежие годы первыми
	Count     int   // размер каталога, по которому собраны значения
}

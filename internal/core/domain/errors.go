package domain

import "errors"

// Ошибки уровня домена. Ни одна из них не фатальна для процесса:
// обработчики переводят их в пользовательские ответы.
var (
	ErrCatalogUnavailable = errors.New("catalog source unavailable")
	ErrCarNotFound        = errors.New("car not found")
	ErrAlreadyCompared    = errors.New("car already in compare set")
	ErrCompareFull        = errors.New("compare set capacity exceeded")
	ErrSnapshotNotFound   = errors.New("view state snapshot not found")
)

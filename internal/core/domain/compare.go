package domain

// CompareCapacity — максимальное количество автомобилей в наборе сравнения.
const CompareCapacity = 10

// compareThreshold — размер набора, при достижении которого фронтенду
// имеет смысл предложить переход на страницу сравнения.
const compareThreshold = 2

// CompareSet — набор автомобилей для сравнения: упорядочен по времени
// добавления, без дубликатов по ID, емкость ограничена CompareCapacity.
// Записи — снимки данных на момент добавления, а не живые ссылки:
// последующие правки каталога не меняют уже сохраненную запись, и страница
// сравнения может отрисоваться без повторной загрузки каталога.
type CompareSet struct {
	Cars []Car `json:"cars"`
}

// AddOutcome — результат успешного добавления.
type AddOutcome struct {
	// ReachedCompareThreshold выставляется, когда набор достиг размера
	// ровно в compareThreshold элементов. Навигация на страницу сравнения —
	// политика UI, ядро лишь сигнализирует о моменте.
	ReachedCompareThreshold bool
}

// Add добавляет снимок автомобиля в конец набора.
// Возвращает ErrAlreadyCompared для дубликата и ErrCompareFull при
// исчерпанной емкости; набор в обоих случаях не меняется.
func (s *CompareSet) Add(car Car) (AddOutcome, error) {
	if s.Contains(car.ID) {
		return AddOutcome{}, ErrAlreadyCompared
	}
	if len(s.Cars) >= CompareCapacity {
		return AddOutcome{}, ErrCompareFull
	}

	s.Cars = append(s.Cars, car)
	return AddOutcome{ReachedCompareThreshold: len(s.Cars) == compareThreshold}, nil
}

// Remove удаляет запись с данным ID. Отсутствие записи — не ошибка.
func (s *CompareSet) Remove(carID int) {
	for i, car := range s.Cars {
		if car.ID == carID {
			s.Cars = append(s.Cars[:i], s.Cars[i+1:]...)
			return
		}
	}
}

// Contains сообщает, есть ли в наборе автомобиль с данным ID.
func (s *CompareSet) Contains(carID int) bool {
	for _, car := range s.Cars {
		if car.ID == carID {
			return true
		}
	}
	return false
}

// Size возвращает текущий размер набора.
func (s *CompareSet) Size() int {
	return len(s.Cars)
}

// CompareReady сообщает, достаточно ли в наборе записей для осмысленного
// сравнения (как минимум две).
func (s *CompareSet) CompareReady() bool {
	return len(s.Cars) >= compareThreshold
}

package domain

import (
	"time"
)

// CarStatus — статус объявления в каталоге.
type CarStatus string

const (
	StatusAvailable CarStatus = "Available"
	StatusSold      CarStatus = "Sold"
)

// Car — одно объявление о продаже автомобиля.
// PriceUSD — единственный источник истины для всех валют: цены в AED и EUR
// всегда вычисляются из него, нигде отдельно не хранятся.
type Car struct {
	ID       int       `json:"id"`
	Name     string    `json:"name"`
	Make     string    `json:"make"` // каноническое значение в нижнем регистре
	Model    string    `json:"model"`
	BodyType string    `json:"body_type"`
	Year     int       `json:"year"`
	PriceUSD *float64  `json:"price_usd"` // nil — цена по запросу
	Mileage  string    `json:"mileage"`   // сырая строка, парсится защитно
	Color    string    `json:"color"`
	Engine   string    `json:"engine"`
	Location string    `json:"location"`
	Status   CarStatus `json:"status"`
	Images   []string  `json:"images"` // первая — основная
	CreatedAt time.Time `json:"created_at"`

	// Поля, которые показываются только на странице деталей.
	Specs        string `json:"specs,omitempty"`
	Warranty     string `json:"warranty,omitempty"`
	Transmission string `json:"transmission,omitempty"`
	FuelType     string `json:"fuel_type,omitempty"`
	Doors        int    `json:"doors,omitempty"`
	Horsepower   int    `json:"horsepower,omitempty"`
}

// IsSold сообщает, продан ли автомобиль.
func (c Car) IsSold() bool {
	return c.Status == StatusSold
}

// MileageKm парсит пробег как целое число километров.
// Берется ведущая последовательность цифр (разделители тысяч пропускаются),
// хвост вроде " km" игнорируется. Нечисловое значение превращается в 0 —
// это сохранённое поведение исходной системы, см. DESIGN.md.
func MileageKm(raw string) int {
	value := 0
	seen := false
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			value = value*10 + int(r-'0')
			seen = true
		case r == ',':
			// разделитель тысяч внутри числа пропускаем
			continue
		case r == ' ':
			if seen {
				return value
			}
			continue
		default:
			if seen {
				return value
			}
			return 0
		}
	}
	return value
}

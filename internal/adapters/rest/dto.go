package rest

import (
	"time"

	"catalog-service/internal/core/domain"
)

// CarCardResponse - карточка автомобиля в списочной выдаче.
// Цена уже отформатирована в валюте запроса ("AED 367,000", "Sold",
// "Price on Request") - фронтенд показывает строку как есть.
type CarCardResponse struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Make         string `json:"make"`
	Model        string `json:"model"`
	BodyType     string `json:"body_type"`
	Year         int    `json:"year"`
	PriceDisplay string `json:"price_display"`
	Mileage      string `json:"mileage"`
	Image        string `json:"image"`
	Status       string `json:"status"`
}

// CarDetailsResponse - полная карточка для страницы деталей.
type CarDetailsResponse struct {
	CarCardResponse
	Color        string   `json:"color"`
	Engine       string   `json:"engine"`
	Location     string   `json:"location"`
	Images       []string `json:"images"`
	CreatedAt    string   `json:"created_at"`
	Specs        string   `json:"specs,omitempty"`
	Warranty     string   `json:"warranty,omitempty"`
	Transmission string   `json:"transmission,omitempty"`
	FuelType     string   `json:"fuel_type,omitempty"`
	Doors        int      `json:"doors,omitempty"`
	Horsepower   int      `json:"horsepower,omitempty"`
}

// PaginatedInventoryResponse - страница выдачи каталога.
type PaginatedInventoryResponse struct {
	Data         []CarCardResponse `json:"data"`
	Page         int               `json:"page"`
	TotalPages   int               `json:"total_pages"`
	TotalMatched int               `json:"total_matched"`
}

// AddCompareRequest - тело запроса для добавления в сравнение.
type AddCompareRequest struct {
	CarID int `json:"car_id"`
}

// AddCompareResponse - результат добавления в сравнение.
type AddCompareResponse struct {
	CompareReady bool `json:"compare_ready"`
}

// CompareSetResponse - текущий набор сравнения.
type CompareSetResponse struct {
	Data         []CarCardResponse `json:"data"`
	Size         int               `json:"size"`
	Capacity     int               `json:"capacity"`
	CompareReady bool              `json:"compare_ready"`
}

// ViewSnapshotRequest - тело запроса сохранения состояния страницы.
type ViewSnapshotRequest struct {
	Page         int               `json:"page"`
	Status       string            `json:"status"`
	Currency     string            `json:"currency"`
	ScrollOffset float64           `json:"scroll_offset"`
	Params       map[string]string `json:"params"`
}

// ViewSnapshotResponse - восстановленный снимок состояния.
type ViewSnapshotResponse struct {
	Page         int               `json:"page"`
	Status       string            `json:"status"`
	Currency     string            `json:"currency"`
	ScrollOffset float64           `json:"scroll_offset"`
	Params       map[string]string `json:"params"`
}

// FilterOptionsResponse - доступные значения фильтров.
type FilterOptionsResponse struct {
	Makes     []string `json:"makes"`
	BodyTypes []string `json:"body_types"`
	Years     []int    `json:"years"`
	Count     int      `json:"count"`
}

// ErrorResponse - стандартная структура для ответа с ошибкой.
type ErrorResponse struct {
	Error string `json:"error"`
}

// toCardResponse маппит доменную модель в карточку выдачи.
func toCardResponse(car domain.Car, currency domain.Currency) CarCardResponse {
	image := ""
	if len(car.Images) > 0 {
		image = car.Images[0]
	}
	return CarCardResponse{
		ID:           car.ID,
		Name:         car.Name,
		Make:         car.Make,
		Model:        car.Model,
		BodyType:     car.BodyType,
		Year:         car.Year,
		PriceDisplay: domain.FormatPrice(car.PriceUSD, currency, car.Status),
		Mileage:      car.Mileage,
		Image:        image,
		Status:       string(car.Status),
	}
}

func toCardResponses(cars []domain.Car, currency domain.Currency) []CarCardResponse {
	result := make([]CarCardResponse, len(cars))
	for i, car := range cars {
		result[i] = toCardResponse(car, currency)
	}
	return result
}

func toDetailsResponse(car domain.Car, currency domain.Currency) CarDetailsResponse {
	createdAt := ""
	if !car.CreatedAt.IsZero() {
		createdAt = car.CreatedAt.Format(time.RFC3339)
	}
	return CarDetailsResponse{
		CarCardResponse: toCardResponse(car, currency),
		Color:           car.Color,
		Engine:          car.Engine,
		Location:        car.Location,
		Images:          car.Images,
		CreatedAt:       createdAt,
		Specs:           car.Specs,
		Warranty:        car.Warranty,
		Transmission:    car.Transmission,
		FuelType:        car.FuelType,
		Doors:           car.Doors,
		Horsepower:      car.Horsepower,
	}
}

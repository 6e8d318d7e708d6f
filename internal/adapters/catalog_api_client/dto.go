package catalog_api_client

import (
	"strings"
	"time"

	"catalog-service/internal/core/domain"
)

// DTO ответа каталога. Структура должна в точности совпадать
// с полезной нагрузкой upstream-каталога.
type carResponse struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	Make         string   `json:"make"`
	Model        string   `json:"model"`
	BodyType     string   `json:"body_type"`
	Year         int      `json:"year"`
	PriceUSD     *float64 `json:"price_usd"`
	Mileage      string   `json:"mileage"`
	Color        string   `json:"color"`
	Engine       string   `json:"engine"`
	Location     string   `json:"location"`
	Status       string   `json:"status"`
	Images       []string `json:"images"`
	CreatedAt    string   `json:"created_at"`
	Specs        string   `json:"specs"`
	Warranty     string   `json:"warranty"`
	Transmission string   `json:"transmission"`
	FuelType     string   `json:"fuel_type"`
	Doors        int      `json:"doors"`
	Horsepower   int      `json:"horsepower"`
}

type catalogResponse struct {
	Cars []carResponse `json:"cars"`
}

// toDomain маппит DTO в доменную модель. Это важный шаг, который
// изолирует ядро от деталей API каталога.
func (dto carResponse) toDomain() domain.Car {
	status := domain.StatusAvailable
	if strings.EqualFold(dto.Status, string(domain.StatusSold)) {
		status = domain.StatusSold
	}

	createdAt, err := time.Parse(time.RFC3339, dto.CreatedAt)
	if err != nil {
		createdAt = time.Time{}
	}

	return domain.Car{
		ID:       dto.ID,
		Name:     dto.Name,
		Make:     strings.ToLower(dto.Make),
		Model:    dto.Model,
		BodyType: dto.BodyType,
		Year:     dto.Year,
		PriceUSD: dto.PriceUSD,
		// Пробег оставляем сырой строкой, числовое значение
		// извлекается доменной функцией MileageKm.
		Mileage:      dto.Mileage,
		Color:        dto.Color,
		Engine:       dto.Engine,
		Location:     dto.Location,
		Status:       status,
		Images:       dto.Images,
		CreatedAt:    createdAt,
		Specs:        dto.Specs,
		Warranty:     dto.Warranty,
		Transmission: dto.Transmission,
		FuelType:     dto.FuelType,
		Doors:        dto.Doors,
		Horsepower:   dto.Horsepower,
	}
}

package catalog_api_client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"

	"catalog-service/internal/contextkeys"
	"catalog-service/internal/contracts"
	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/port"
)

// CatalogServiceAPIClient - клиент для взаимодействия с upstream-каталогом.
type CatalogServiceAPIClient struct {
	baseURL    string // Например, "http://catalog-api:8080"
	httpClient *http.Client
}

// NewCatalogServiceAPIClient - конструктор.
func NewCatalogServiceAPIClient(baseURL string) *CatalogServiceAPIClient {
	return &CatalogServiceAPIClient{
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}
}

// doRequest - внутренний хелпер для выполнения запросов
func (c *CatalogServiceAPIClient) doRequest(ctx context.Context, method, url string) (*http.Response, error) {
	traceID := contextkeys.TraceIDFromContext(ctx)

	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	// Пробрасываем заголовок трассировки дальше по цепочке
	if traceID != "" {
		req.Header.Set("X-Trace-ID", traceID)
	}
	req.Header.Set("Accept", "application/json")

	return c.httpClient.Do(req)
}

// FetchCatalog реализует порт CatalogSourcePort.
func (c *CatalogServiceAPIClient) FetchCatalog(ctx context.Context) ([]domain.Car, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	clientLogger := logger.WithFields(port.Fields{
		"component": "CatalogServiceAPIClient",
		"method":    "FetchCatalog",
	})

	url := c.baseURL + "/api/v1/cars"
	resp, err := c.doRequest(ctx, http.MethodGet, url)
	if err != nil {
		clientLogger.Error("Failed to perform request to catalog service", err, nil)
		return nil, fmt.Errorf("failed to execute request to catalog service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		err := fmt.Errorf("catalog service returned non-200 status: %d, body: %s", resp.StatusCode, string(bodyBytes))
		clientLogger.Error("Received non-OK response from catalog service", err, port.Fields{"status_code": resp.StatusCode})
		return nil, err
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		clientLogger.Error("Failed to read response body from catalog service", err, nil)
		return nil, fmt.Errorf("failed to read catalog response: %w", err)
	}

	// Проверяем полезную нагрузку по схеме до десериализации в домен
	if err := contracts.ValidateCatalogPayload(bodyBytes); err != nil {
		clientLogger.Error("Catalog payload failed schema validation", err, nil)
		return nil, fmt.Errorf("invalid catalog payload: %w", err)
	}

	var apiResponse catalogResponse
	if err := json.Unmarshal(bodyBytes, &apiResponse); err != nil {
		clientLogger.Error("Failed to decode response from catalog service", err, nil)
		return nil, fmt.Errorf("failed to decode catalog response: %w", err)
	}

	cars := make([]domain.Car, len(apiResponse.Cars))
	for i, dto := range apiResponse.Cars {
		cars[i] = dto.toDomain()
	}

	// Контракт порта: каталог отдается от самых свежих к самым старым.
	sort.SliceStable(cars, func(i, j int) bool {
		return cars[i].CreatedAt.After(cars[j].CreatedAt)
	})

	clientLogger.Info("Successfully fetched catalog", port.Fields{"cars_count": len(cars)})
	return cars, nil
}

package contracts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCatalogPayload(t *testing.T) {
	valid := []byte(`{
		"cars": [
			{
				"id": 1,
				"name": "Mercedes-Benz G63",
				"make": "mercedes-benz",
				"model": "G63",
				"year": 2022,
				"price_usd": 200000,
				"status": "available"
			},
			{
				"id": 2,
				"name": "BMW M4",
				"make": "bmw",
				"model": "M4",
				"year": 2023,
				"price_usd": null,
				"status": "sold"
			}
		]
	}`)
	require.NoError(t, ValidateCatalogPayload(valid))
}

func TestValidateCatalogPayloadRejectsBadData(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"not json", `{"cars": [`},
		{"missing cars", `{}`},
		{"missing required field", `{"cars": [{"id": 1, "name": "x"}]}`},
		{"bad status", `{"cars": [{"id": 1, "name": "x", "make": "m", "model": "", "year": 2020, "status": "pending"}]}`},
		{"negative price", `{"cars": [{"id": 1, "name": "x", "make": "m", "model": "", "year": 2020, "status": "sold", "price_usd": -5}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, ValidateCatalogPayload([]byte(tt.payload)))
		})
	}
}

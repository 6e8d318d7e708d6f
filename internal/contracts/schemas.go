package contracts

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schemas/catalog/v1.json
var catalogSchemaV1 []byte

var compiledSchemas = make(map[string]*jsonschema.Schema)

func init() {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true

	const schemaURL = "schemas/catalog/v1.json"
	if err := compiler.AddResource(schemaURL, strings.NewReader(string(catalogSchemaV1))); err != nil {
		log.Fatalf("failed to add schema resource %s: %v", schemaURL, err)
	}
	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		log.Fatalf("failed to compile schema %s: %v", schemaURL, err)
	}

	compiledSchemas["CatalogPayload/1.0.0"] = schema
}

// ValidateCatalogPayload проверяет тело ответа каталога по схеме
// перед тем, как оно будет десериализовано в доменные структуры
func ValidateCatalogPayload(body []byte) error {
	schema, ok := compiledSchemas["CatalogPayload/1.0.0"]
	if !ok {
		return fmt.Errorf("schema for catalog payload not found")
	}

	// распарсить JSON в универсальный тип interface{}
	var v interface{}
	if err := json.Unmarshal(body, &v); err != nil {
		// Если это невалидный JSON, валидация по схеме невозможна
		return fmt.Errorf("catalog payload is not a valid JSON: %w", err)
	}

	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("JSON schema validation failed: %w", err)
	}

	return nil
}

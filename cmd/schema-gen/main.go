// Schema Generator
//
// Generates JSON Schema files from Go types so document formats and
// API payloads stay machine-checkable. Go is the source of truth.
//
// Usage:
//
//	go run cmd/schema-gen/main.go
//
// Output:
//
//	./schemas/documents.json
//	./schemas/api.json
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/invopop/jsonschema"

	"github.com/Paul-Gabriel/MPM-Meal-Planner/internal/handlers"
	"github.com/Paul-Gabriel/MPM-Meal-Planner/internal/pantry"
	"github.com/Paul-Gabriel/MPM-Meal-Planner/internal/recipes"
	"github.com/Paul-Gabriel/MPM-Meal-Planner/internal/reporting"
	"github.com/Paul-Gabriel/MPM-Meal-Planner/internal/shopping"
	"github.com/Paul-Gabriel/MPM-Meal-Planner/internal/types"
)

// SchemaGroup represents a group of related schemas
type SchemaGroup struct {
	Name   string
	Types  []any
	Output string
}

func main() {
	outputDir := "./schemas"

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create output directory: %v\n", err)
		os.Exit(1)
	}

	groups := []SchemaGroup{
		{
			Name: "documents",
			Types: []any{
				// persisted document shapes
				types.Ingredient{},
				types.Recipe{},
				types.Macros{},
				shopping.Transaction{},
				shopping.Log{},
				recipes.CookRecord{},
			},
			Output: "documents.json",
		},
		{
			Name: "api",
			Types: []any{
				// request types
				handlers.SetSlotRequest{},
				handlers.RandomizeCustomRequest{},
				handlers.BuyRequest{},
				handlers.CookMealRequest{},
				// response types
				handlers.PlanResponse{},
				handlers.PlanDay{},
				handlers.HealthResponse{},
				shopping.Item{},
				shopping.Purchase{},
				recipes.Availability{},
				pantry.Alert{},
				pantry.ExpiringItem{},
				pantry.LowStockItem{},
				reporting.WeekNutrition{},
				reporting.DayNutrition{},
				reporting.Stats{},
				reporting.RecipeCount{},
			},
			Output: "api.json",
		},
	}

	for _, group := range groups {
		schema := generateGroupSchema(group)
		outputPath := filepath.Join(outputDir, group.Output)

		if err := writeSchema(schema, outputPath); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write %s: %v\n", group.Output, err)
			os.Exit(1)
		}

		fmt.Printf("Generated %s\n", outputPath)
	}

	fmt.Println("Schema generation complete!")
}

// generateGroupSchema creates a combined schema with all types in a group
func generateGroupSchema(group SchemaGroup) map[string]any {
	reflector := &jsonschema.Reflector{
		DoNotReference: false,
		ExpandedStruct: false,
	}

	definitions := make(map[string]any)

	for _, t := range group.Types {
		schema := reflector.Reflect(t)

		typeName := ""
		if schema.Ref != "" {
			// Extract type name from $ref like "#/$defs/Ingredient"
			typeName = filepath.Base(schema.Ref)
		}

		for name, def := range schema.Definitions {
			definitions[name] = def
		}

		if typeName != "" && schema.Definitions[typeName] != nil {
			definitions[typeName] = schema.Definitions[typeName]
		}
	}

	return map[string]any{
		"$schema":     "https://json-schema.org/draft/2020-12/schema",
		"$id":         fmt.Sprintf("https://meal-planner.local/schemas/%s.json", group.Name),
		"title":       fmt.Sprintf("%s Types", capitalize(group.Name)),
		"description": fmt.Sprintf("JSON Schema for %s types generated from Go structs", group.Name),
		"$defs":       definitions,
	}
}

// writeSchema writes a schema to a JSON file
func writeSchema(schema map[string]any, path string) error {
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal schema: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}

func capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

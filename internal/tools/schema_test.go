package tools

import (
	"encoding/json"
	"testing"
)

func TestGenerateSchema_NullableFix(t *testing.T) {
	schema := GenerateSchema[ConvertMarkdownInput]()

	data, err := json.Marshal(schema)
	if err != nil {
		t.Fatalf("Failed to marshal schema: %v", err)
	}

	var result map[string]any
	if err := json.Unmarshal(data, &result); err != nil {
		t.Fatalf("Failed to unmarshal schema: %v", err)
	}

	props, ok := result["properties"].(map[string]any)
	if !ok {
		t.Fatal("properties not found or invalid")
	}

	// cache_seconds is a pointer field, so jsonschema-go emits
	// ["integer", "null"]. The fix must turn it into a scalar type with
	// nullable: true.
	optional, ok := props["cache_seconds"].(map[string]any)
	if !ok {
		t.Fatal("cache_seconds field not found")
	}

	typ, ok := optional["type"].(string)
	if !ok {
		t.Fatalf("cache_seconds type is %T: %v, want a plain string", optional["type"], optional["type"])
	}
	if typ != "integer" {
		t.Errorf("cache_seconds type = %q, want \"integer\"", typ)
	}

	nullable, ok := optional["nullable"].(bool)
	if !ok || !nullable {
		t.Errorf("cache_seconds nullable = %v, want true", optional["nullable"])
	}

	// The required field must stay a plain scalar type.
	required, ok := props["markdown"].(map[string]any)
	if !ok {
		t.Fatal("markdown field not found")
	}
	if typ, _ := required["type"].(string); typ != "string" {
		t.Errorf("markdown type = %v, want \"string\"", required["type"])
	}
}

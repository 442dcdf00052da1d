package schema_test

import (
	"testing"

	"github.com/idforideas/inmobiliaria/core/schema"
)

const (
	refCodigo = `{ "type" : "string",
	               "pattern" : "^[A-NP-Z1-9]{6}$",
	               "$id" : "https://idforideas.com/schemas/refs/codigo.json"}`

	topLevel = `
	{ "$id" : "https://idforideas.com/schemas/listado.json",
	  "type" : "object",
	  "required" : ["codigo_id", "precio"],
	  "properties" : {
		"codigo_id" : { "$ref" : "https://idforideas.com/schemas/refs/codigo.json" },
		"precio" : { "type" : "number" }
	  }
	}`
)

func TestValidateString(t *testing.T) {
	v, err := schema.NewValidator([]string{topLevel}, []string{refCodigo})
	if err != nil {
		t.Fatalf("No error expected when creating validator, got %v", err)
	}

	schemaID := "https://idforideas.com/schemas/listado.json"

	// Valid json
	valid := `{"codigo_id": "ZN1991", "precio": 120000}`
	if err := v.ValidateString(valid, schemaID); err != nil {
		t.Fatalf("%s is expected to be valid with schema %s. Reported error was: %v", valid, schemaID, err)
	}

	// Invalid json: the code contains an excluded glyph
	invalid := `{"codigo_id": "ZN1001", "precio": 120000}`
	if err := v.ValidateString(invalid, schemaID); err == nil {
		t.Fatalf("%s is expected to be invalid with schema %s", invalid, schemaID)
	}

	// Invalid json: missing required field
	invalid = `{"codigo_id": "ZN1991"}`
	if err := v.ValidateString(invalid, schemaID); err == nil {
		t.Fatalf("%s is expected to be invalid with schema %s", invalid, schemaID)
	}

	// Unknown schema id
	if err := v.ValidateString(valid, "https://idforideas.com/schemas/otro.json"); err == nil {
		t.Fatal("validation against an unknown schema id is expected to fail")
	}
}

func TestValidateStruct(t *testing.T) {
	v, err := schema.NewValidator([]string{topLevel}, []string{refCodigo})
	if err != nil {
		t.Fatalf("No error expected when creating validator, got %v", err)
	}

	schemaID := "https://idforideas.com/schemas/listado.json"

	object := struct {
		CodigoID string  `json:"codigo_id"`
		Precio   float64 `json:"precio"`
	}{CodigoID: "ZN1991", Precio: 120000}

	if err := v.ValidateStruct(object, schemaID); err != nil {
		t.Fatalf("struct is expected to be valid with schema %s. Reported error was: %v", schemaID, err)
	}
}

func TestHasSchema(t *testing.T) {
	v, err := schema.NewValidator([]string{topLevel}, []string{refCodigo})
	if err != nil {
		t.Fatalf("No error expected when creating validator, got %v", err)
	}
	if !v.HasSchema("https://idforideas.com/schemas/listado.json") {
		t.Fatal("expected schema to be known")
	}
	if v.HasSchema("https://idforideas.com/schemas/otro.json") {
		t.Fatal("expected schema to be unknown")
	}
}

func TestSchemaWithoutID(t *testing.T) {
	if _, err := schema.NewValidator([]string{`{"type":"object"}`}, nil); err == nil {
		t.Fatal("expected error for schema without $id")
	}
}

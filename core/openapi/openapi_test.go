package openapi_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gorilla/mux"

	"github.com/idforideas/inmobiliaria/core/openapi"
	"github.com/idforideas/inmobiliaria/core/propiedades"
)

func newDocsRouter() *mux.Router {
	router := mux.NewRouter()
	openapi.Handle(&openapi.Builder{
		Router:      router,
		Title:       "API Sistema de Gestión de Propiedades - ID For Ideas",
		Description: "Gestión de propiedades",
		Version:     "1.0.0",
		Schemas: map[string]string{
			propiedades.SchemaName: propiedades.SchemaJSON,
		},
		Paths: []map[string]interface{}{
			propiedades.OpenAPIPaths(),
		},
	})
	return router
}

func get(t *testing.T, router *mux.Router, path string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, r)
	if rec.Code != http.StatusOK {
		t.Fatalf("GET %s: got status %d", path, rec.Code)
	}
	return rec
}

func TestDocument(t *testing.T) {
	rec := get(t, newDocsRouter(), "/doc")

	var doc struct {
		OpenAPI string `json:"openapi"`
		Info    struct {
			Title   string `json:"title"`
			Version string `json:"version"`
		} `json:"info"`
		Components struct {
			Schemas         map[string]json.RawMessage `json:"schemas"`
			SecuritySchemes map[string]json.RawMessage `json:"securitySchemes"`
		} `json:"components"`
		Paths map[string]map[string]json.RawMessage `json:"paths"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "3.0.0", doc.OpenAPI)
	assert.Equal(t, "1.0.0", doc.Info.Version)
	assert.Contains(t, doc.Components.Schemas, propiedades.SchemaName)
	assert.Contains(t, doc.Components.SecuritySchemes, "basicAuth")
	// the published schema must not carry the validator-internal $id
	assert.NotContains(t, string(doc.Components.Schemas[propiedades.SchemaName]), "$id")

	list, ok := doc.Paths[propiedades.ListRoute]
	if !ok {
		t.Fatal("document lacks the list route")
	}
	assert.Contains(t, list, "get")
	assert.Contains(t, list, "post")

	item, ok := doc.Paths[propiedades.ItemRoute]
	if !ok {
		t.Fatal("document lacks the item route")
	}
	assert.Contains(t, item, "get")
	assert.Contains(t, item, "patch")
	assert.Contains(t, item, "delete")
}

func TestSwaggerUI(t *testing.T) {
	rec := get(t, newDocsRouter(), "/ui")
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.True(t, strings.Contains(rec.Body.String(), "/doc"))
}

func TestBanner(t *testing.T) {
	rec := get(t, newDocsRouter(), "/")
	assert.Contains(t, rec.Body.String(), "ID For Ideas")
}

/*Package openapi publishes the machine-readable API description.

The document is served as OpenAPI 3.0 JSON under /doc, with a Swagger UI
rendering under /ui. Component schemas are passed in as the very JSON schema
documents the validator compiles, so documentation and validation share a
single source of truth.
*/
package openapi

import (
	"net/http"

	"github.com/goccy/go-json"
	"github.com/gorilla/mux"

	"github.com/idforideas/inmobiliaria/core/logger"
)

// Builder is a builder helper for the docs routes
type Builder struct {
	// Router is a mux router. This is mandatory.
	Router *mux.Router
	// Title is the API title shown in the document info.
	Title string
	// Description is the API description shown in the document info.
	Description string
	// Version is the API version shown in the document info.
	Version string
	// Schemas maps component schema names to JSON schema documents.
	Schemas map[string]string
	// Paths are the OpenAPI path items, merged from all route providers.
	Paths []map[string]interface{}
}

// Handle builds the OpenAPI document and adds the routes / GET, /doc GET and
// /ui GET to the router.
func Handle(bb *Builder) {
	if bb.Router == nil {
		panic("Router is missing")
	}

	doc, err := document(bb)
	if err != nil {
		panic(err)
	}
	jsonData, err := json.MarshalWithOption(doc, json.DisableHTMLEscape())
	if err != nil {
		panic(err)
	}

	nillog := logger.Default()
	nillog.Debugln("openapi")
	nillog.Debugln("  handle route: / GET")
	nillog.Debugln("  handle route: /doc GET")
	nillog.Debugln("  handle route: /ui GET")

	bb.Router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		logger.FromContext(r.Context()).Infoln("called route for", r.URL, r.Method)
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte(bb.Title))
	}).Methods(http.MethodOptions, http.MethodGet)

	bb.Router.HandleFunc("/doc", func(w http.ResponseWriter, r *http.Request) {
		logger.FromContext(r.Context()).Infoln("called route for", r.URL, r.Method)
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Write(jsonData)
	}).Methods(http.MethodOptions, http.MethodGet)

	bb.Router.HandleFunc("/ui", func(w http.ResponseWriter, r *http.Request) {
		logger.FromContext(r.Context()).Infoln("called route for", r.URL, r.Method)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(swaggerUIPage))
	}).Methods(http.MethodOptions, http.MethodGet)
}

// document assembles the OpenAPI 3.0 document from the builder.
func document(bb *Builder) (map[string]interface{}, error) {
	schemas := map[string]interface{}{}
	for name, schemaJSON := range bb.Schemas {
		var schema map[string]interface{}
		if err := json.Unmarshal([]byte(schemaJSON), &schema); err != nil {
			return nil, err
		}
		// the validator needs the $id, the published components do not
		delete(schema, "$id")
		schemas[name] = schema
	}

	paths := map[string]interface{}{}
	for _, pp := range bb.Paths {
		for path, item := range pp {
			paths[path] = item
		}
	}

	return map[string]interface{}{
		"openapi": "3.0.0",
		"info": map[string]interface{}{
			"title":       bb.Title,
			"description": bb.Description,
			"version":     bb.Version,
		},
		"components": map[string]interface{}{
			"schemas": schemas,
			"securitySchemes": map[string]interface{}{
				"basicAuth": map[string]interface{}{
					"type":   "http",
					"scheme": "basic",
				},
			},
		},
		"paths": paths,
	}, nil
}

const swaggerUIPage = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js" crossorigin></script>
<script>
  window.onload = () => {
    window.ui = SwaggerUIBundle({
      url: '/doc',
      dom_id: '#swagger-ui',
    });
  };
</script>
</body>
</html>
`

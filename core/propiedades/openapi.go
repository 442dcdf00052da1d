package propiedades

// SchemaName is the name of the propiedad schema in the published OpenAPI components.
const SchemaName = "Propiedad"

func codigoParameter() map[string]interface{} {
	return map[string]interface{}{
		"name":     "codigo_id",
		"in":       "path",
		"required": true,
		"schema":   map[string]interface{}{"type": "string", "example": "ZN1001"},
	}
}

func jsonContent(schema map[string]interface{}) map[string]interface{} {
	return map[string]interface{}{
		"application/json": map[string]interface{}{"schema": schema},
	}
}

// OpenAPIPaths returns the OpenAPI path items for the propiedades routes.
// The Propiedad component referenced here is published from the very same
// schema document the validator compiles, see SchemaJSON.
func OpenAPIPaths() map[string]interface{} {
	propiedadRef := map[string]interface{}{"$ref": "#/components/schemas/" + SchemaName}
	adminSecurity := []map[string][]string{{"basicAuth": {}}}

	return map[string]interface{}{
		ListRoute: map[string]interface{}{
			"get": map[string]interface{}{
				"summary": "Listar todas las propiedades",
				"responses": map[string]interface{}{
					"200": map[string]interface{}{
						"description": "Retorna una lista de propiedades",
						"content": jsonContent(map[string]interface{}{
							"type":  "array",
							"items": propiedadRef,
						}),
					},
				},
			},
			"post": map[string]interface{}{
				"summary":  "Crear una nueva propiedad (Admin)",
				"security": adminSecurity,
				"requestBody": map[string]interface{}{
					"content": jsonContent(propiedadRef),
				},
				"responses": map[string]interface{}{
					"201": map[string]interface{}{"description": "Propiedad creada con éxito"},
					"400": map[string]interface{}{"description": "Datos inválidos"},
					"409": map[string]interface{}{"description": "El código ya existe"},
				},
			},
		},
		ItemRoute: map[string]interface{}{
			"get": map[string]interface{}{
				"summary":    "Obtener una propiedad por ID",
				"parameters": []interface{}{codigoParameter()},
				"responses": map[string]interface{}{
					"200": map[string]interface{}{
						"description": "Propiedad encontrada",
						"content":     jsonContent(propiedadRef),
					},
					"404": map[string]interface{}{"description": "Propiedad no encontrada"},
				},
			},
			"patch": map[string]interface{}{
				"summary":    "Actualizar una propiedad (Admin)",
				"security":   adminSecurity,
				"parameters": []interface{}{codigoParameter()},
				"requestBody": map[string]interface{}{
					"content": jsonContent(propiedadRef),
				},
				"responses": map[string]interface{}{
					"200": map[string]interface{}{"description": "Propiedad actualizada con éxito"},
					"404": map[string]interface{}{"description": "Propiedad no encontrada"},
				},
			},
			"delete": map[string]interface{}{
				"summary":    "Eliminar una propiedad (Admin)",
				"security":   adminSecurity,
				"parameters": []interface{}{codigoParameter()},
				"responses": map[string]interface{}{
					"200": map[string]interface{}{"description": "Propiedad eliminada con éxito"},
				},
			},
		},
	}
}

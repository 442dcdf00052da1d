package propiedades

// Tipos de contratación admitidos
const (
	ContratacionAlquiler = "Alquiler"
	ContratacionVenta    = "Venta"
)

// Estados admitidos de una propiedad
const (
	EstadoDisponible = "Disponible"
	EstadoReservado  = "Reservado"
	EstadoAlquilado  = "Alquilado"
	EstadoVendido    = "Vendido"
)

// Propiedad is a property listing. The JSON names match the columns of the
// propiedades table.
type Propiedad struct {
	CodigoID         string  `json:"codigo_id"`
	Pais             string  `json:"pais"`
	Ciudad           string  `json:"ciudad"`
	Direccion        string  `json:"direccion"`
	Ambientes        float64 `json:"ambientes"`
	MetrosCuadrados  float64 `json:"metros_cuadrados"`
	Precio           float64 `json:"precio"`
	TipoContratacion string  `json:"tipo_contratacion"`
	Estado           string  `json:"estado"`
	Descripcion      string  `json:"descripcion"`
}

// Patch is a sparse update of a Propiedad. Nil fields keep their stored
// value. CodigoID can never be changed, it is only carried here so that the
// update handler can reject an attempt to do so.
type Patch struct {
	CodigoID         *string  `json:"codigo_id,omitempty"`
	Pais             *string  `json:"pais,omitempty"`
	Ciudad           *string  `json:"ciudad,omitempty"`
	Direccion        *string  `json:"direccion,omitempty"`
	Ambientes        *float64 `json:"ambientes,omitempty"`
	MetrosCuadrados  *float64 `json:"metros_cuadrados,omitempty"`
	Precio           *float64 `json:"precio,omitempty"`
	TipoContratacion *string  `json:"tipo_contratacion,omitempty"`
	Estado           *string  `json:"estado,omitempty"`
	Descripcion      *string  `json:"descripcion,omitempty"`
}

// schema ids for the JSON validator
const (
	SchemaID      = "https://idforideas.com/schemas/propiedad.json"
	PatchSchemaID = "https://idforideas.com/schemas/propiedad-patch.json"
)

// SchemaJSON is the JSON schema for a full Propiedad as accepted by the
// create operation. The codigo_id is optional, it gets allocated by the
// backend when absent. This document doubles as the schema published in the
// OpenAPI description, so validation and documentation cannot drift apart.
const SchemaJSON = `{
	"$id": "https://idforideas.com/schemas/propiedad.json",
	"type": "object",
	"required": ["pais", "ciudad", "direccion", "ambientes", "metros_cuadrados", "precio", "tipo_contratacion", "estado"],
	"properties": {
		"codigo_id": { "type": "string", "description": "ID único alfanumérico", "example": "ZN1001" },
		"pais": { "type": "string", "example": "Argentina" },
		"ciudad": { "type": "string", "example": "Tigre" },
		"direccion": { "type": "string", "example": "Av. Cazón 123" },
		"ambientes": { "type": "number", "example": 3 },
		"metros_cuadrados": { "type": "number", "example": 75.5 },
		"precio": { "type": "number", "example": 120000 },
		"tipo_contratacion": { "type": "string", "enum": ["Alquiler", "Venta"], "example": "Venta" },
		"estado": { "type": "string", "enum": ["Disponible", "Reservado", "Alquilado", "Vendido"], "example": "Disponible" },
		"descripcion": { "type": "string", "example": "Hermosa vista al río" }
	}
}`

// PatchSchemaJSON is the relaxed schema for partial updates: every field is
// optional, but a field that is present must still satisfy its constraint.
const PatchSchemaJSON = `{
	"$id": "https://idforideas.com/schemas/propiedad-patch.json",
	"type": "object",
	"properties": {
		"codigo_id": { "type": "string" },
		"pais": { "type": "string" },
		"ciudad": { "type": "string" },
		"direccion": { "type": "string" },
		"ambientes": { "type": "number" },
		"metros_cuadrados": { "type": "number" },
		"precio": { "type": "number" },
		"tipo_contratacion": { "type": "string", "enum": ["Alquiler", "Venta"] },
		"estado": { "type": "string", "enum": ["Disponible", "Reservado", "Alquilado", "Vendido"] },
		"descripcion": { "type": "string" }
	}
}`

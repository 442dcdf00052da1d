// Copyright 2025 ID For Ideas - All Rights Reserved
// Unauthorized copying of this file, via any medium is strictly prohibited
// Proprietary and confidential
// info@idforideas.com
//

package propiedades

import (
	"errors"
	"io"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/idforideas/inmobiliaria/core/access"
	"github.com/idforideas/inmobiliaria/core/logger"
	"github.com/idforideas/inmobiliaria/core/schema"
)

// routes for the propiedades resource
const (
	ListRoute = "/api/propiedades"
	ItemRoute = "/api/propiedades/{codigo_id}"
)

// Backend is the rest backend for the propiedades resource
type Backend struct {
	store         Store
	router        *mux.Router
	jsonValidator *schema.Validator
}

// Builder is a builder helper for the Backend
type Builder struct {
	// Store is the property store. This is mandatory.
	Store Store
	// Router is a mux router. This is mandatory.
	Router *mux.Router
}

// New realizes the actual backend. It adds the CRUD routes for the
// propiedades resource to the router. Write operations require the admin
// role, see the access package.
func New(bb *Builder) *Backend {

	if bb.Store == nil {
		panic("Store is missing")
	}
	if bb.Router == nil {
		panic("Router is missing")
	}

	b := &Backend{
		store:         bb.Store,
		router:        bb.Router,
		jsonValidator: schema.MustNewValidator([]string{SchemaJSON, PatchSchemaJSON}, nil),
	}
	b.handleRoutes(b.router)
	return b
}

// mutationResponse is the response envelope for all write operations
type mutationResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	ID      string `json:"id,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, object interface{}) {
	jsonData, _ := json.MarshalWithOption(object, json.DisableHTMLEscape())
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	w.Write(jsonData)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, mutationResponse{Success: false, Error: message})
}

// handleRoutes adds all handlers for the propiedades resource
func (b *Backend) handleRoutes(router *mux.Router) {

	nillog := logger.Default()
	nillog.Debugln("propiedades")
	nillog.Debugln("  handle routes:", ListRoute, "GET,POST")
	nillog.Debugln("  handle routes:", ItemRoute, "GET,PATCH,DELETE")

	// LIST
	router.Handle(ListRoute, handlers.CompressHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromContext(r.Context()).Infoln("called route for", r.URL, r.Method)
		b.list(w, r)
	}))).Methods(http.MethodOptions, http.MethodGet)

	// READ
	router.Handle(ItemRoute, handlers.CompressHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromContext(r.Context()).Infoln("called route for", r.URL, r.Method)
		b.read(w, r)
	}))).Methods(http.MethodOptions, http.MethodGet)

	// CREATE
	router.Handle(ListRoute, handlers.CompressHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromContext(r.Context()).Infoln("called route for", r.URL, r.Method)
		if !access.RequireAdmin(w, r) {
			return
		}
		b.create(w, r)
	}))).Methods(http.MethodOptions, http.MethodPost)

	// UPDATE
	router.Handle(ItemRoute, handlers.CompressHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromContext(r.Context()).Infoln("called route for", r.URL, r.Method)
		if !access.RequireAdmin(w, r) {
			return
		}
		b.update(w, r)
	}))).Methods(http.MethodOptions, http.MethodPatch)

	// DELETE
	router.Handle(ItemRoute, handlers.CompressHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromContext(r.Context()).Infoln("called route for", r.URL, r.Method)
		if !access.RequireAdmin(w, r) {
			return
		}
		b.delete(w, r)
	}))).Methods(http.MethodOptions, http.MethodDelete)
}

func (b *Backend) list(w http.ResponseWriter, r *http.Request) {
	result, err := b.store.List()
	if err != nil {
		logger.FromContext(r.Context()).WithError(err).Errorln("cannot list propiedades")
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (b *Backend) read(w http.ResponseWriter, r *http.Request) {
	codigo := mux.Vars(r)["codigo_id"]
	p, err := b.store.GetByCode(codigo)
	if err == ErrNotFound {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Propiedad no encontrada"})
		return
	}
	if err != nil {
		logger.FromContext(r.Context()).WithError(err).Errorln("cannot read propiedad", codigo)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (b *Backend) create(w http.ResponseWriter, r *http.Request) {
	rlog := logger.FromContext(r.Context())

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := b.jsonValidator.ValidateString(string(body), SchemaID); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	var p Propiedad
	if err := json.Unmarshal(body, &p); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	codigo, err := allocateCodigo(p.CodigoID, b.store.ExistsByCode)
	var enUso ErrCodigoEnUso
	if errors.As(err, &enUso) {
		writeError(w, http.StatusConflict, enUso.Error())
		return
	}
	if err != nil {
		rlog.WithError(err).Errorln("cannot allocate codigo")
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	p.CodigoID = codigo

	err = b.store.Insert(p)
	if errors.As(err, &enUso) {
		// lost the race between existence check and insert
		writeError(w, http.StatusConflict, enUso.Error())
		return
	}
	if err != nil {
		rlog.WithError(err).Errorln("cannot insert propiedad", codigo)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, mutationResponse{
		Success: true,
		Message: "Propiedad creada correctamente",
		ID:      codigo,
	})
}

func (b *Backend) update(w http.ResponseWriter, r *http.Request) {
	codigo := mux.Vars(r)["codigo_id"]

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := b.jsonValidator.ValidateString(string(body), PatchSchemaID); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	var patch Patch
	if err := json.Unmarshal(body, &patch); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	// the code is assigned once at creation and stays immutable
	if patch.CodigoID != nil && *patch.CodigoID != codigo {
		writeError(w, http.StatusBadRequest, "No está permitido modificar el código identificador de la propiedad.")
		return
	}

	count, err := b.store.UpdateByCode(codigo, patch)
	if err != nil {
		logger.FromContext(r.Context()).WithError(err).Errorln("cannot update propiedad", codigo)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if count == 0 {
		writeError(w, http.StatusNotFound, "Propiedad no encontrada")
		return
	}

	writeJSON(w, http.StatusOK, mutationResponse{Success: true, Message: "Propiedad actualizada"})
}

func (b *Backend) delete(w http.ResponseWriter, r *http.Request) {
	codigo := mux.Vars(r)["codigo_id"]
	err := b.store.DeleteByCode(codigo)
	if err != nil {
		logger.FromContext(r.Context()).WithError(err).Errorln("cannot delete propiedad", codigo)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	// deliberately the same answer whether the row existed or not
	writeJSON(w, http.StatusOK, mutationResponse{Success: true, Message: "Propiedad eliminada"})
}

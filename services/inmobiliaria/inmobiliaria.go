package main

import (
	"net/http"

	"github.com/joeshaw/envdecode"
	"github.com/sirupsen/logrus"

	"github.com/gorilla/mux"

	"github.com/idforideas/inmobiliaria/core/access"
	"github.com/idforideas/inmobiliaria/core/csql"
	"github.com/idforideas/inmobiliaria/core/logger"
	"github.com/idforideas/inmobiliaria/core/openapi"
	"github.com/idforideas/inmobiliaria/core/propiedades"
)

// Service holds the configuration for this service
//
// use POSTGRES="host=localhost port=5432 user=postgres dbname=postgres sslmode=disable"
// and POSTGRES_PASSWORD="docker"
type Service struct {
	Postgres         string `env:"POSTGRES,required" description:"the connection string for the Postgres DB without password"`
	PostgresPassword string `env:"POSTGRES_PASSWORD" description:"password to the Postgres DB"`
	AdminUser        string `env:"ADMIN_USER,required" description:"the admin user name for basic auth"`
	AdminPassword    string `env:"ADMIN_PASS,required" description:"the admin password for basic auth"`
	Port             string `env:"PORT,default=3000" description:"the port the service listens on"`
	LogLevel         string `env:"LOG_LEVEL,default=info" description:"the log level, one of the logrus levels"`
}

func handleCORS(router *mux.Router) {

	corsMiddleware := func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Set CORS headers for all requests
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, DELETE, PATCH")
			w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Accept-Encoding, Authorization")
			w.Header().Set("Access-Control-Max-Age", "86400") // 24 hours

			// Handle preflight OPTIONS request
			if r.Method == http.MethodOptions {
				logger.FromContext(r.Context()).Debugln("called route for", r.URL, r.Method, " (handled by CORS middleware)")
				w.WriteHeader(http.StatusNoContent)
				return
			}

			h.ServeHTTP(w, r)
		})
	}
	router.Use(corsMiddleware)
}

func main() {
	service := &Service{}
	if err := envdecode.Decode(service); err != nil {
		panic(err)
	}
	level, err := logrus.ParseLevel(service.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.InitLogger(level)

	db := csql.OpenWithSchema(service.Postgres, service.PostgresPassword, "inmobiliaria")
	defer db.Close()

	router := mux.NewRouter()
	logger.AddRequestID(router)
	handleCORS(router)

	auth := access.NewBasicAuth(&access.BasicAuthMiddlewareBuilder{
		AdminUser:     service.AdminUser,
		AdminPassword: service.AdminPassword,
	})
	router.Use(auth.Middleware())
	auth.HandleVerifyRoute(router)

	propiedades.New(&propiedades.Builder{
		Store:  propiedades.NewSQLStore(db),
		Router: router,
	})

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
			auth.OpenAPIPaths(),
		},
	})

	logger.Default().Infoln("listen on port :" + service.Port)
	http.ListenAndServe(":"+service.Port, router)
}

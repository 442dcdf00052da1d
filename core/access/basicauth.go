package access

import (
	"crypto/subtle"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/gorilla/mux"

	"github.com/idforideas/inmobiliaria/core/logger"
)

// Realm is the authentication realm reported in WWW-Authenticate challenges.
const Realm = "inmobiliaria"

// BasicAuthMiddlewareBuilder is a helper builder for the basic-auth middleware
type BasicAuthMiddlewareBuilder struct {
	// AdminUser is the configured admin user name. This is mandatory.
	AdminUser string
	// AdminPassword is the configured admin password. This is mandatory.
	AdminPassword string
}

// BasicAuth authenticates requests against a single configured admin account.
type BasicAuth struct {
	adminUser     string
	adminPassword string
}

// NewBasicAuth creates a basic-auth authenticator for the configured admin account.
func NewBasicAuth(bab *BasicAuthMiddlewareBuilder) *BasicAuth {
	if bab.AdminUser == "" || bab.AdminPassword == "" {
		panic("basic auth requires admin user and password")
	}
	return &BasicAuth{
		adminUser:     bab.AdminUser,
		adminPassword: bab.AdminPassword,
	}
}

// AdminUser returns the configured admin user name.
func (b *BasicAuth) AdminUser() string {
	return b.adminUser
}

func (b *BasicAuth) verify(user, password string) bool {
	// constant-time comparison, both values must match
	userOK := subtle.ConstantTimeCompare([]byte(user), []byte(b.adminUser)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(b.adminPassword)) == 1
	return userOK && passOK
}

// Middleware returns a middleware handler which adds the admin authorization
// to the request context when the request carries valid basic-auth credentials.
//
// The middleware does not reject anything by itself. Read routes are public,
// hence rejection is left to the handlers of protected operations, see
// RequireAdmin.
func (b *BasicAuth) Middleware() mux.MiddlewareFunc {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := AuthorizationFromContext(r.Context())
			if auth != nil { // already authorized?
				h.ServeHTTP(w, r)
				return
			}
			user, password, ok := r.BasicAuth()
			if ok && b.verify(user, password) {
				auth = &Authorization{
					Roles:    []string{AdminRole},
					Identity: user,
				}
				ctx := auth.ContextWithAuthorization(r.Context())
				ctx, _ = logger.ContextWithLoggerIdentity(ctx, user)
				r = r.WithContext(ctx)
			}
			h.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin verifies that the request is authorized with the admin role.
// If it is not, it writes a 401 response with a basic-auth challenge and
// returns false. Handlers of protected operations call this first and bail
// out on false.
func RequireAdmin(w http.ResponseWriter, r *http.Request) bool {
	auth := AuthorizationFromContext(r.Context())
	if auth.IsAdmin() {
		return true
	}
	logger.FromContext(r.Context()).Infoln("unauthorized request for", r.URL, r.Method)
	w.Header().Set("WWW-Authenticate", `Basic realm="`+Realm+`"`)
	http.Error(w, "Unauthorized", http.StatusUnauthorized)
	return false
}

// OpenAPIPaths returns the OpenAPI path item for the verify route.
func (b *BasicAuth) OpenAPIPaths() map[string]interface{} {
	return map[string]interface{}{
		"/api/auth/verify": map[string]interface{}{
			"get": map[string]interface{}{
				"summary":  "Verificar credenciales de administrador",
				"security": []map[string][]string{{"basicAuth": {}}},
				"responses": map[string]interface{}{
					"200": map[string]interface{}{"description": "Credenciales válidas"},
					"401": map[string]interface{}{"description": "Credenciales inválidas"},
				},
			},
		},
	}
}

// HandleVerifyRoute adds the route /api/auth/verify GET to the router.
//
// The route returns the authenticated admin identity for valid basic-auth
// credentials, and a 401 challenge otherwise.
func (b *BasicAuth) HandleVerifyRoute(router *mux.Router) {
	logger.Default().Debugln("authorization")
	logger.Default().Debugln("  handle route: /api/auth/verify GET")
	router.HandleFunc("/api/auth/verify", func(w http.ResponseWriter, r *http.Request) {
		logger.FromContext(r.Context()).Infoln("called route for", r.URL, r.Method)
		if !RequireAdmin(w, r) {
			return
		}
		auth := AuthorizationFromContext(r.Context())
		jsonData, _ := json.Marshal(map[string]interface{}{
			"authenticated": true,
			"user":          auth.Identity,
		})
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Write(jsonData)
	}).Methods(http.MethodOptions, http.MethodGet)
}

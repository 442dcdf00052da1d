package access_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gorilla/mux"

	"github.com/idforideas/inmobiliaria/core/access"
)

func newTestRouter() *mux.Router {
	router := mux.NewRouter()
	auth := access.NewBasicAuth(&access.BasicAuthMiddlewareBuilder{
		AdminUser:     "admin",
		AdminPassword: "muy-secreto",
	})
	router.Use(auth.Middleware())
	auth.HandleVerifyRoute(router)
	return router
}

func verify(router *mux.Router, withCredentials bool, user, password string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodGet, "/api/auth/verify", nil)
	if withCredentials {
		r.SetBasicAuth(user, password)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, r)
	return rec
}

func TestVerifyValidCredentials(t *testing.T) {
	rec := verify(newTestRouter(), true, "admin", "muy-secreto")
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Authenticated bool   `json:"authenticated"`
		User          string `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	assert.True(t, body.Authenticated)
	assert.Equal(t, "admin", body.User)
}

func TestVerifyMissingCredentials(t *testing.T) {
	rec := verify(newTestRouter(), false, "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, `Basic realm="`+access.Realm+`"`, rec.Header().Get("WWW-Authenticate"))
}

func TestVerifyWrongCredentials(t *testing.T) {
	router := newTestRouter()

	rec := verify(router, true, "admin", "wrong")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = verify(router, true, "someone", "muy-secreto")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHasRole(t *testing.T) {
	var auth *access.Authorization
	assert.False(t, auth.HasRole(access.AdminRole))
	assert.False(t, auth.IsAdmin())

	auth = &access.Authorization{Roles: []string{access.AdminRole}, Identity: "admin"}
	assert.True(t, auth.HasRole(access.AdminRole))
	assert.True(t, auth.IsAdmin())
	assert.False(t, auth.HasRole("viewer"))
}

func TestAuthorizationContext(t *testing.T) {
	auth := &access.Authorization{Roles: []string{access.AdminRole}}
	ctx := auth.ContextWithAuthorization(context.Background())
	assert.Equal(t, auth, access.AuthorizationFromContext(ctx))
	assert.Nil(t, access.AuthorizationFromContext(context.Background()))
}

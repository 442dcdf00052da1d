/*Package access provides utilities for access control
 */
package access

import (
	"context"
)

// contextKey is the type for context keys. Go linter does not like plain strings
type contextKey string

// the predefined context key
const (
	contextKeyAuthorization contextKey = "_authorization_"
)

// AdminRole is the role required for all mutating property operations.
const AdminRole = "admin"

/*Authorization is a context object which stores authorization information
for the caller of a request.

An authorization carries a list of roles and, for authenticated callers,
the identity they authenticated as.

Authorizations are added to a request context with

  ctx = auth.ContextWithAuthorization(ctx)

and retrieved with

  auth := AuthorizationFromContext(ctx)

Authorization objects are added to the context by middleware, depending on
the credentials in the HTTP request. This service supports HTTP Basic
authentication against the configured admin account.
*/
type Authorization struct {
	Roles    []string `json:"roles"`
	Identity string   `json:"identity,omitempty"`
}

// HasRole returns true if the authorization contains the requested role;
// otherwise it returns false.
func (a *Authorization) HasRole(role string) bool {
	if a == nil || a.Roles == nil {
		return false
	}
	for _, hasRole := range a.Roles {
		if role == hasRole {
			return true
		}
	}
	return false
}

// IsAdmin returns true if the authorization carries the admin role.
func (a *Authorization) IsAdmin() bool {
	return a.HasRole(AdminRole)
}

// ContextWithAuthorization returns a new context with this authorization added to it
func (a *Authorization) ContextWithAuthorization(ctx context.Context) context.Context {
	return context.WithValue(ctx, contextKeyAuthorization, a)
}

// AuthorizationFromContext retrieves an authorization from the context
func AuthorizationFromContext(ctx context.Context) *Authorization {
	a, ok := ctx.Value(contextKeyAuthorization).(*Authorization)
	if ok {
		return a
	}
	return nil
}

package v1

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type contextKey string

const principalKey contextKey = "principal_id"

// HeaderPrincipalID carries the caller identity, verified upstream.
const HeaderPrincipalID = "X-Principal-ID"

// PrincipalMiddleware extracts the caller identity from the request
// header and rejects requests without one. Authentication itself
// happens upstream; this layer only trusts the forwarded header.
func PrincipalMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(HeaderPrincipalID)
		if raw == "" {
			http.Error(w, "missing principal", http.StatusUnauthorized)
			return
		}
		principalID, err := uuid.Parse(raw)
		if err != nil {
			http.Error(w, "invalid principal", http.StatusUnauthorized)
			return
		}
		ctx := context.WithValue(r.Context(), principalKey, principalID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// PrincipalFromRequest returns the caller identity stored by
// PrincipalMiddleware.
func PrincipalFromRequest(r *http.Request) (uuid.UUID, bool) {
	principalID, ok := r.Context().Value(principalKey).(uuid.UUID)
	return principalID, ok
}

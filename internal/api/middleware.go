// Package api implements the sitekeeper HTTP surface using chi.
package api

import (
	"context"
	"net/http"

	"github.com/eazyservice/sitekeeper/internal/auth"
)

type ctxKey int

const identityKey ctxKey = 0

// RequireSession returns middleware enforcing a valid session cookie on
// API routes. Requests without a verifiable token get a 401 JSON body;
// no detail about why the token failed is exposed.
func RequireSession(gate *auth.Gate) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := sessionIdentity(gate, r)
			if !ok {
				writeJSON(w, http.StatusUnauthorized, errorBody("unauthorized"))
				return
			}
			next.ServeHTTP(w, r.WithContext(withIdentity(r.Context(), id)))
		})
	}
}

// RequirePageSession returns middleware guarding admin page routes. An
// unauthenticated browser is redirected to loginPath instead of receiving
// a JSON error.
func RequirePageSession(gate *auth.Gate, loginPath string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := sessionIdentity(gate, r)
			if !ok {
				http.Redirect(w, r, loginPath, http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r.WithContext(withIdentity(r.Context(), id)))
		})
	}
}

func sessionIdentity(gate *auth.Gate, r *http.Request) (auth.Identity, bool) {
	cookie, err := r.Cookie(auth.CookieName)
	if err != nil || cookie.Value == "" {
		return auth.Identity{}, false
	}
	id, err := gate.VerifyToken(cookie.Value)
	if err != nil {
		return auth.Identity{}, false
	}
	return id, true
}

func withIdentity(ctx context.Context, id auth.Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFromContext extracts the verified session identity, if any.
func IdentityFromContext(ctx context.Context) (auth.Identity, bool) {
	id, ok := ctx.Value(identityKey).(auth.Identity)
	return id, ok
}

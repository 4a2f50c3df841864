package api

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"

	"github.com/eazyservice/sitekeeper/internal/auth"
)

// NewRouter creates a chi router with all API routes mounted.
// sseHandler, if non-nil, is mounted at GET /events inside the session
// guard so only authenticated admin sessions receive content events.
func NewRouter(h *Handler, gate *auth.Gate, sseHandler http.Handler) chi.Router {
	r := chi.NewRouter()

	// Public surface: the page render path and the booking form.
	r.Get("/content", h.GetContent)
	r.Post("/geo/resolve", h.ResolveArea)

	r.Post("/auth/login", h.Login)
	r.Post("/auth/logout", h.Logout)

	// Admin surface behind the session cookie.
	r.Group(func(r chi.Router) {
		r.Use(RequireSession(gate))

		r.Put("/content", h.UpdateContent)
		r.Get("/auth/me", h.Me)

		if sseHandler != nil {
			r.Get("/events", sseHandler.ServeHTTP)
		}
	})

	return r
}

// AdminPages serves the admin UI static files from dir. Every route is
// guarded except the login page; unauthenticated browsers are redirected
// to /admin/login.
func AdminPages(gate *auth.Gate, dir string) chi.Router {
	r := chi.NewRouter()

	login := filepath.Join(dir, "login.html")
	r.Get("/login", func(w http.ResponseWriter, r *http.Request) {
		if _, err := os.Stat(login); err != nil {
			http.NotFound(w, r)
			return
		}
		http.ServeFile(w, r, login)
	})

	r.Group(func(r chi.Router) {
		r.Use(RequirePageSession(gate, "/admin/login"))

		fs := http.StripPrefix("/admin", http.FileServer(http.Dir(dir)))
		r.Get("/", fs.ServeHTTP)
		r.Get("/*", fs.ServeHTTP)
	})

	return r
}

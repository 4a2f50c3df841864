package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/eazyservice/sitekeeper/internal/apperr"
	"github.com/eazyservice/sitekeeper/internal/auth"
	"github.com/eazyservice/sitekeeper/internal/geo"
	"github.com/eazyservice/sitekeeper/internal/store"
)

// Handler holds API route handlers.
type Handler struct {
	store    *store.Store
	gate     *auth.Gate
	resolver geo.Resolver // nil disables area resolution
}

// NewHandler creates a new Handler. resolver may be nil, in which case
// every resolve request degrades to manual selection.
func NewHandler(st *store.Store, gate *auth.Gate, resolver geo.Resolver) *Handler {
	return &Handler{store: st, gate: gate, resolver: resolver}
}

// GetContent handles GET /api/content.
//
//	@Summary		Get the full site content document
//	@Tags			content
//	@Produce		json
//	@Success		200	{object}	ContentResponse
//	@Router			/content [get]
func (h *Handler) GetContent(w http.ResponseWriter, r *http.Request) {
	doc := h.store.Load()
	w.Header().Set("ETag", `"`+store.Checksum(doc)+`"`)
	writeJSON(w, http.StatusOK, doc)
}

// UpdateContent handles PUT /api/content.
//
//	@Summary		Shallow-merge a partial document and persist it
//	@Tags			content
//	@Accept			json
//	@Produce		json
//	@Param			If-Match	header	string	false	"Checksum for optimistic concurrency"
//	@Param			body	body	map[string]any	true	"Top-level keys to replace"
//	@Success		200	{object}	ContentResponse
//	@Failure		400	{object}	errResponse
//	@Failure		401	{object}	errResponse
//	@Failure		409	{object}	errResponse
//	@Security		CookieAuth
//	@Router			/content [put]
func (h *Handler) UpdateContent(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)

	var partial map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&partial); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}

	ifMatch := strings.Trim(r.Header.Get("If-Match"), `"`)

	doc, err := h.store.Update(partial, ifMatch)
	if err != nil {
		switch {
		case errors.Is(err, apperr.ErrConflict):
			writeJSON(w, http.StatusConflict, errorBody("content changed since it was loaded"))
		case errors.Is(err, apperr.ErrUnknownField), errors.Is(err, apperr.ErrInvalidContent):
			writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		default:
			slog.Error("update content failed", slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, errorBody("failed to save content"))
		}
		return
	}
	w.Header().Set("ETag", `"`+store.Checksum(doc)+`"`)
	writeJSON(w, http.StatusOK, doc)
}

// Login handles POST /api/auth/login.
//
//	@Summary		Authenticate the operator and set the session cookie
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		LoginRequest	true	"Credentials"
//	@Success		200		{object}	LoginResponse
//	@Failure		400		{object}	errResponse
//	@Failure		401		{object}	errResponse
//	@Router			/auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<16)

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	if req.Username == "" || req.Password == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("username and password are required"))
		return
	}

	if !h.gate.ValidateCredentials(req.Username, req.Password) {
		writeJSON(w, http.StatusUnauthorized, errorBody("invalid credentials"))
		return
	}

	token, err := h.gate.IssueToken(req.Username)
	if err != nil {
		slog.Error("issue token failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(h.gate.TTL().Seconds()),
	})
	writeJSON(w, http.StatusOK, LoginResponse{Success: true})
}

// Logout handles POST /api/auth/logout.
//
//	@Summary		Clear the session cookie
//	@Tags			auth
//	@Produce		json
//	@Success		200	{object}	LoginResponse
//	@Router			/auth/logout [post]
func (h *Handler) Logout(w http.ResponseWriter, _ *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
	writeJSON(w, http.StatusOK, LoginResponse{Success: true})
}

// Me handles GET /api/auth/me.
//
//	@Summary		Return the identity of the current session
//	@Tags			auth
//	@Produce		json
//	@Success		200	{object}	IdentityResponse
//	@Failure		401	{object}	errResponse
//	@Security		CookieAuth
//	@Router			/auth/me [get]
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	id, ok := IdentityFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorBody("unauthorized"))
		return
	}
	writeJSON(w, http.StatusOK, id)
}

// ResolveArea handles POST /api/geo/resolve.
//
// The lookup is best effort: any resolver failure answers 200 with
// resolved=false so the booking flow is never blocked.
//
//	@Summary		Resolve coordinates to a configured service area
//	@Tags			geo
//	@Accept			json
//	@Produce		json
//	@Param			body	body		ResolveAreaRequest	true	"Coordinates"
//	@Success		200		{object}	ResolveAreaResponse
//	@Failure		400		{object}	errResponse
//	@Router			/geo/resolve [post]
func (h *Handler) ResolveArea(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<16)

	var req ResolveAreaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	if req.Latitude == nil || req.Longitude == nil {
		writeJSON(w, http.StatusBadRequest, errorBody("latitude and longitude are required"))
		return
	}

	if h.resolver == nil {
		writeJSON(w, http.StatusOK, ResolveAreaResponse{Resolved: false})
		return
	}

	candidates := h.store.Load().ServiceAreas
	area, err := h.resolver.Resolve(r.Context(), *req.Latitude, *req.Longitude, candidates)
	if err != nil {
		slog.Warn("area resolution failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusOK, ResolveAreaResponse{Resolved: false})
		return
	}
	writeJSON(w, http.StatusOK, ResolveAreaResponse{Area: area, Resolved: true})
}

package api

import (
	"github.com/eazyservice/sitekeeper/internal/auth"
	"github.com/eazyservice/sitekeeper/internal/models"
)

// LoginRequest is the request body for POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username" example:"admin" validate:"required"`
	Password string `json:"password" example:"secret" validate:"required"`
}

// LoginResponse is returned on successful login; the token itself travels
// only in the session cookie.
type LoginResponse struct {
	Success bool `json:"success" example:"true" validate:"required"`
}

// IdentityResponse wraps the verified session identity (GET /api/auth/me).
type IdentityResponse = auth.Identity

// ContentResponse is the full content document (aliased from the domain
// layer).
type ContentResponse = models.SiteContent

// ResolveAreaRequest carries booking-form coordinates for area resolution.
type ResolveAreaRequest struct {
	Latitude  *float64 `json:"latitude" example:"28.61" validate:"required"`
	Longitude *float64 `json:"longitude" example:"77.23" validate:"required"`
}

// ResolveAreaResponse names the resolved service area. Resolved is false
// when the lookup failed and the UI should fall back to manual selection.
type ResolveAreaResponse struct {
	Area     string `json:"area" example:"Delhi"`
	Resolved bool   `json:"resolved" example:"true" validate:"required"`
}

// Package geo resolves booking-form coordinates to one of the configured
// service areas through an external lookup service.
package geo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// AreaOther is the sentinel returned when the coordinates do not fall near
// any candidate area.
const AreaOther = "Other"

// Resolver maps coordinates plus a candidate area list to exactly one of
// the candidates or AreaOther. Implementations are best effort; callers
// must degrade to manual area selection on any error.
type Resolver interface {
	Resolve(ctx context.Context, lat, lon float64, candidates []string) (string, error)
}

// HTTPResolver calls an external resolution endpoint (the AI-backed area
// lookup) over JSON.
type HTTPResolver struct {
	endpoint string
	client   *http.Client
}

// NewHTTPResolver creates a resolver posting to endpoint with the given
// request timeout.
func NewHTTPResolver(endpoint string, timeout time.Duration) *HTTPResolver {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &HTTPResolver{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

type resolveRequest struct {
	Latitude   float64  `json:"latitude"`
	Longitude  float64  `json:"longitude"`
	Candidates []string `json:"candidates"`
}

type resolveResponse struct {
	Area string `json:"area"`
}

// Resolve posts the coordinates and candidate list and validates that the
// reply names a candidate or the AreaOther sentinel.
func (r *HTTPResolver) Resolve(ctx context.Context, lat, lon float64, candidates []string) (string, error) {
	body, err := json.Marshal(resolveRequest{Latitude: lat, Longitude: lon, Candidates: candidates})
	if err != nil {
		return "", fmt.Errorf("geo: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("geo: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("geo: call resolver: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("geo: resolver status %d", resp.StatusCode)
	}

	var out resolveResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&out); err != nil {
		return "", fmt.Errorf("geo: decode response: %w", err)
	}

	area := strings.TrimSpace(out.Area)
	if area == AreaOther {
		return AreaOther, nil
	}
	for _, c := range candidates {
		if strings.EqualFold(area, c) {
			return c, nil
		}
	}
	return "", fmt.Errorf("geo: resolver returned unknown area %q", area)
}

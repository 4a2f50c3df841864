package geo

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

var candidates = []string{"Delhi", "Gurgaon", "Noida"}

func resolverServer(t *testing.T, area string, status int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req resolveRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		if len(req.Candidates) == 0 {
			t.Error("candidates not forwarded")
		}
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(resolveResponse{Area: area})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestResolveCandidate(t *testing.T) {
	srv := resolverServer(t, "Gurgaon", http.StatusOK)
	r := NewHTTPResolver(srv.URL, time.Second)

	area, err := r.Resolve(context.Background(), 28.45, 77.02, candidates)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if area != "Gurgaon" {
		t.Errorf("area = %q", area)
	}
}

func TestResolveCaseInsensitiveMatch(t *testing.T) {
	srv := resolverServer(t, "  noida ", http.StatusOK)
	r := NewHTTPResolver(srv.URL, time.Second)

	area, err := r.Resolve(context.Background(), 28.57, 77.32, candidates)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	// Canonical candidate spelling comes back, not the service's.
	if area != "Noida" {
		t.Errorf("area = %q, want Noida", area)
	}
}

func TestResolveOtherSentinel(t *testing.T) {
	srv := resolverServer(t, AreaOther, http.StatusOK)
	r := NewHTTPResolver(srv.URL, time.Second)

	area, err := r.Resolve(context.Background(), 19.07, 72.87, candidates)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if area != AreaOther {
		t.Errorf("area = %q, want %q", area, AreaOther)
	}
}

func TestResolveUnknownAreaIsError(t *testing.T) {
	srv := resolverServer(t, "Atlantis", http.StatusOK)
	r := NewHTTPResolver(srv.URL, time.Second)

	if _, err := r.Resolve(context.Background(), 28.61, 77.23, candidates); err == nil {
		t.Error("unknown area accepted")
	}
}

func TestResolveNon200IsError(t *testing.T) {
	srv := resolverServer(t, "Delhi", http.StatusBadGateway)
	r := NewHTTPResolver(srv.URL, time.Second)

	if _, err := r.Resolve(context.Background(), 28.61, 77.23, candidates); err == nil {
		t.Error("non-200 response accepted")
	}
}

func TestResolveRespectsContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Consume the body so the server notices the client going away.
		_, _ = io.Copy(io.Discard, r.Body)
		<-r.Context().Done()
	}))
	t.Cleanup(srv.Close)
	r := NewHTTPResolver(srv.URL, time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if _, err := r.Resolve(ctx, 28.61, 77.23, candidates); err == nil {
		t.Error("cancelled context did not abort the call")
	}
}

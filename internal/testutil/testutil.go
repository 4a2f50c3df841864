// Package testutil provides shared test helpers for stores and auth gates.
package testutil

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/eazyservice/sitekeeper/internal/auth"
	"github.com/eazyservice/sitekeeper/internal/models"
	"github.com/eazyservice/sitekeeper/internal/store"
)

// Default test credentials and signing secret. Fixtures only; the shipped
// configuration has no defaults.
const (
	Username = "admin"
	Password = "admin123"
	Secret   = "test-secret-0123456789abcdef"
)

// TestStore creates a Store backed by a file in a temp directory. The file
// does not exist until the first save.
func TestStore(t *testing.T) (string, *store.Store) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "site-content.json")
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	return path, store.New(path, logger)
}

// SeedStore writes doc to path so the next Load returns it.
func SeedStore(t *testing.T, path string, doc models.SiteContent) {
	t.Helper()
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
}

// TestGate creates a Gate with the default test credentials.
func TestGate(t *testing.T) *auth.Gate {
	t.Helper()
	return auth.NewGate(auth.Options{
		Username: Username,
		Password: Password,
		Secret:   Secret,
		TTL:      24 * time.Hour,
	})
}

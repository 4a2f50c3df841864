// Package store owns the site content document and its on-disk persistence.
package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/eazyservice/sitekeeper/internal/apperr"
	"github.com/eazyservice/sitekeeper/internal/checksum"
	"github.com/eazyservice/sitekeeper/internal/models"
)

// knownKeys are the top-level keys of the content document. Updates naming
// any other key are rejected before anything touches disk.
var knownKeys = map[string]struct{}{
	"brand":              {},
	"contact":            {},
	"serviceAreas":       {},
	"services":           {},
	"reviews":            {},
	"faqs":               {},
	"searchPlaceholders": {},
}

// Store is the single source of truth for the site content document,
// backed by one pretty-printed JSON file.
//
// No locking: admin usage is single-operator, so concurrent updates race on
// a last-write-wins basis. Readers never observe a torn document because
// every write replaces the whole file via rename.
type Store struct {
	path   string
	logger *slog.Logger
}

// New creates a Store backed by the file at path. The file does not need
// to exist yet; reads fall back to models.Fallback until the first save.
func New(path string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{path: path, logger: logger}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the backing file. A missing file and a malformed document are
// treated the same way: log and return the fallback document. The public
// render path never sees an error from here.
func (s *Store) Load() models.SiteContent {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("store: read failed, serving fallback",
				slog.String("path", s.path),
				slog.String("error", err.Error()))
		}
		return models.Fallback()
	}
	var doc models.SiteContent
	if err := json.Unmarshal(data, &doc); err != nil {
		s.logger.Warn("store: malformed document, serving fallback",
			slog.String("path", s.path),
			slog.String("error", err.Error()))
		return models.Fallback()
	}
	return doc
}

// Checksum returns the hex SHA-256 of the document's persisted form, used
// as the ETag for optimistic concurrency.
func Checksum(doc models.SiteContent) string {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return ""
	}
	return checksum.Sum(data)
}

// Update shallow-merges partial onto the current document and persists the
// result: each key present in partial fully replaces the stored key, lists
// included. There is no deep merge.
//
// If ifMatch is non-empty it must equal the checksum of the current
// document, otherwise apperr.ErrConflict is returned. A failed persist is
// returned as an error; the caller must never report success on stale data.
func (s *Store) Update(partial map[string]json.RawMessage, ifMatch string) (models.SiteContent, error) {
	current := s.Load()

	if ifMatch != "" && ifMatch != Checksum(current) {
		return current, apperr.ErrConflict
	}

	merged, err := merge(current, partial)
	if err != nil {
		return current, err
	}
	if err := merged.Validate(); err != nil {
		return current, fmt.Errorf("%w: %v", apperr.ErrInvalidContent, err)
	}
	if err := s.persist(merged); err != nil {
		return merged, fmt.Errorf("store: persist: %w", err)
	}
	return merged, nil
}

func merge(current models.SiteContent, partial map[string]json.RawMessage) (models.SiteContent, error) {
	// Deterministic key order so the first bad key reported is stable.
	keys := make([]string, 0, len(partial))
	for k := range partial {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	base, err := json.Marshal(current)
	if err != nil {
		return current, fmt.Errorf("store: marshal current: %w", err)
	}
	doc := map[string]json.RawMessage{}
	if err := json.Unmarshal(base, &doc); err != nil {
		return current, fmt.Errorf("store: remarshal current: %w", err)
	}

	for _, k := range keys {
		if _, ok := knownKeys[k]; !ok {
			return current, fmt.Errorf("%w: %q", apperr.ErrUnknownField, k)
		}
		doc[k] = partial[k]
	}

	out, err := json.Marshal(doc)
	if err != nil {
		return current, fmt.Errorf("store: marshal merged: %w", err)
	}
	var merged models.SiteContent
	if err := json.Unmarshal(out, &merged); err != nil {
		return current, fmt.Errorf("%w: %v", apperr.ErrInvalidContent, err)
	}
	return merged, nil
}

// persist atomically writes the document: tmp file → fsync → rename.
func (s *Store) persist(doc models.SiteContent) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".sitekeeper-tmp-*")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	tmpName := tmp.Name()

	// Clean up on any failure path.
	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("write temp: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("fsync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	success = true
	return nil
}

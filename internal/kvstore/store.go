package kvstore

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sync"

	cp "github.com/otiai10/copy"
)

// Store is a single-file JSON key-value store. The whole document is one
// JSON object keyed by namespaced strings such as "data.ratingTemplates",
// and every Set rewrites the full file.
type Store struct {
	path   string
	logger *slog.Logger

	mu       sync.Mutex
	doc      map[string]json.RawMessage
	backedUp bool
}

// commentRe strips C style comments so hand-edited store files still parse.
// It is only applied when the document fails to parse as plain JSON, since a
// stored string value can legitimately contain "//".
var commentRe = regexp.MustCompile("(?s)//.*?\n|/\\*.*?\\*/")

func Open(path string, logger *slog.Logger) (*Store, error) {
	s := &Store{
		path:   path,
		logger: logger,
		doc:    make(map[string]json.RawMessage),
	}

	if _, err := os.Stat(path); err != nil {
		// No readable file yet: a fresh install starts from an empty store.
		return s, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading store file %s: %w", path, err)
	}

	if err := json.Unmarshal(data, &s.doc); err != nil {
		s.doc = make(map[string]json.RawMessage)
		stripped := commentRe.ReplaceAll(data, nil)
		if err := json.Unmarshal(stripped, &s.doc); err != nil {
			return nil, fmt.Errorf("error parsing store file %s: %w", path, err)
		}
	}

	return s, nil
}

// Get returns the raw value stored under key, or false when absent.
func (s *Store) Get(key string) (json.RawMessage, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.doc[key]
	return v, ok
}

// Set marshals value under key and flushes the whole document to disk. The
// in-memory document is only updated when the write succeeds.
func (s *Store) Set(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("error marshalling value for %s: %w", key, err)
	}

	s.backupOnce()

	next := make(map[string]json.RawMessage, len(s.doc)+1)
	for k, v := range s.doc {
		next[k] = v
	}
	next[key] = raw

	text, err := json.MarshalIndent(next, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshalling store document: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("error creating store directory: %w", err)
		}
	}
	if err := os.WriteFile(s.path, text, 0644); err != nil {
		return fmt.Errorf("error writing store file %s: %w", s.path, err)
	}

	s.doc = next
	return nil
}

// backupOnce keeps a pre-session copy of the store file next to it, so a bad
// batch of edits can be recovered by hand.
func (s *Store) backupOnce() {
	if s.backedUp {
		return
	}
	s.backedUp = true

	if _, err := os.Stat(s.path); err != nil {
		return
	}
	if err := cp.Copy(s.path, s.path+".bak"); err != nil {
		s.logger.Warn("could not back up store file", slog.Any("error", err))
	}
}

package rating

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/relictools/relicrater/internal/event"
	"github.com/relictools/relicrater/internal/kvstore"
)

// storeKey is the namespaced key the whole template store lives under in the
// key-value collaborator, matching the persisted document layout.
const storeKey = "data.ratingTemplates"

const uninitializedMessage = "template store is not loaded yet, please file an issue on GitHub"

// Store is the single source of truth for rating templates. The current
// snapshot is replaced wholesale on every successful mutation, so readers can
// diff snapshots by identity. Mutations persist the full store before the new
// snapshot becomes visible; a failed persist leaves the old snapshot in place.
type Store struct {
	logger   *slog.Logger
	kv       *kvstore.Store
	listener *event.Listener

	mu        sync.RWMutex
	templates TemplateStore
	loaded    bool
}

func NewStore(kv *kvstore.Store, listener *event.Listener, logger *slog.Logger) *Store {
	return &Store{
		logger:   logger,
		kv:       kv,
		listener: listener,
	}
}

// Load reads the persisted template store. An absent key means a fresh
// install and loads as an empty store.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	templates := make(TemplateStore)
	if raw, ok := s.kv.Get(storeKey); ok {
		if err := json.Unmarshal(raw, &templates); err != nil {
			return fmt.Errorf("error parsing rating templates: %w", err)
		}
	}

	s.templates = templates
	s.loaded = true
	s.logger.Info("rating templates loaded", slog.Int("templates", len(templates)))
	return nil
}

func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Snapshot returns the current store value. Callers must treat it as
// read-only; mutations never touch a published snapshot.
func (s *Store) Snapshot() TemplateStore {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.templates
}

func (s *Store) Template(id string) (Template, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tpl, ok := s.templates[id]
	return tpl, ok
}

// CreateOrUpdateTemplate upserts a template by id, last write wins.
func (s *Store) CreateOrUpdateTemplate(id string, tpl Template) Outcome {
	return s.mutate(fmt.Sprintf("template %q saved", id), func(next TemplateStore) Outcome {
		next[id] = tpl.Clone()
		return Outcome{Success: true}
	})
}

// RemoveTemplate deletes a template by id. Removing an unknown id is treated
// as already removed.
func (s *Store) RemoveTemplate(id string) Outcome {
	return s.mutate(fmt.Sprintf("template %q removed", id), func(next TemplateStore) Outcome {
		delete(next, id)
		return Outcome{Success: true}
	})
}

// CreateOrUpdateRule upserts a rule inside the named template.
func (s *Store) CreateOrUpdateRule(templateID, ruleID string, rule Rule) Outcome {
	return s.mutate(fmt.Sprintf("rule %q saved", ruleID), func(next TemplateStore) Outcome {
		tpl, ok := next[templateID]
		if !ok {
			return Outcome{Success: false, Message: fmt.Sprintf("template %q not found", templateID)}
		}
		if tpl.Rules == nil {
			tpl.Rules = make(map[string]Rule)
		}
		tpl.Rules[ruleID] = rule.Clone()
		next[templateID] = tpl
		return Outcome{Success: true}
	})
}

// RemoveRule deletes a rule by id, idempotent like RemoveTemplate.
func (s *Store) RemoveRule(templateID, ruleID string) Outcome {
	return s.mutate(fmt.Sprintf("rule %q removed", ruleID), func(next TemplateStore) Outcome {
		if tpl, ok := next[templateID]; ok {
			delete(tpl.Rules, ruleID)
			next[templateID] = tpl
		}
		return Outcome{Success: true}
	})
}

// mutate runs one copy-on-write mutation cycle: clone the current snapshot,
// apply the edit, persist the whole store, then publish. The write lock is
// held across the persist call, which serializes concurrent mutations.
func (s *Store) mutate(successMessage string, apply func(next TemplateStore) Outcome) Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		return s.failLocked(Outcome{Success: false, Message: uninitializedMessage})
	}

	next := s.templates.Clone()
	if out := apply(next); !out.Success {
		return s.failLocked(out)
	}

	if err := s.kv.Set(storeKey, next); err != nil {
		s.logger.Error("error persisting rating templates", slog.Any("error", err))
		return s.failLocked(Outcome{Success: false, Message: "could not save rating templates: " + err.Error()})
	}

	s.templates = next

	if s.listener != nil {
		if raw, err := json.Marshal(next); err == nil {
			s.listener.Emit(event.TemplatesUpdated(event.WithMessage(successMessage), raw))
		}
	}

	return Outcome{Success: true, Message: successMessage}
}

func (s *Store) failLocked(out Outcome) Outcome {
	if s.listener != nil {
		s.listener.Emit(event.MutationFailed(event.WithMessage(out.Message)))
	}
	return out
}

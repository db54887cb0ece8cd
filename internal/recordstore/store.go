// Package recordstore provides generic keyed persistence of record arrays
// to a per-feature storage namespace, with load-on-start and
// save-on-mutation semantics.
package recordstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/khanhtv/traincrew/internal/common"
	"github.com/khanhtv/traincrew/internal/logging"
	"github.com/khanhtv/traincrew/internal/storage"
)

// Keyed is any record carrying a stable identifier.
type Keyed interface {
	Key() string
}

// Store owns one namespace's array of records. Order is newest-first by
// insertion; updates replace in place without re-sorting. All mutations
// persist the full array. When a persist fails (quota), the in-memory state
// is deliberately left ahead of the persisted state; the caller surfaces the
// error and the user decides what to delete.
type Store[T Keyed] struct {
	namespace string
	storage   storage.Storage
	logger    logging.Logger
	records   []T
}

func New[T Keyed](namespace string, st storage.Storage, logger logging.Logger) *Store[T] {
	return &Store[T]{
		namespace: namespace,
		storage:   st,
		logger:    logger.With("namespace", namespace),
	}
}

// Load reads the persisted array into memory. An absent or unparsable value
// yields an empty store; parse failures are logged and swallowed so startup
// never fails on corrupt storage.
func (s *Store[T]) Load(ctx context.Context) error {
	raw, ok, err := s.storage.Get(ctx, s.namespace)
	if err != nil {
		return fmt.Errorf("load %s: %w", s.namespace, err)
	}
	if !ok {
		s.records = nil
		return nil
	}

	var loaded []T
	if err := json.Unmarshal([]byte(raw), &loaded); err != nil {
		s.logger.Warn("stored records unparsable, starting empty", "error", err)
		s.records = nil
		return nil
	}

	s.records = loaded
	return nil
}

// All returns a copy of the current records, newest first.
func (s *Store[T]) All() []T {
	out := make([]T, len(s.records))
	copy(out, s.records)
	return out
}

// Get returns the record with the given id.
func (s *Store[T]) Get(id string) (T, error) {
	for _, r := range s.records {
		if r.Key() == id {
			return r, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("record %s: %w", id, common.ErrNotFound)
}

// Len reports the number of records currently held.
func (s *Store[T]) Len() int { return len(s.records) }

// Insert prepends the record and persists.
func (s *Store[T]) Insert(ctx context.Context, record T) error {
	s.records = append([]T{record}, s.records...)
	return s.persist(ctx)
}

// Update replaces the record with the given id in place, keeping its
// position. The replacement produced by merge must preserve the id.
func (s *Store[T]) Update(ctx context.Context, id string, merge func(T) T) error {
	for i, r := range s.records {
		if r.Key() != id {
			continue
		}
		updated := merge(r)
		if updated.Key() != id {
			return fmt.Errorf("update %s: replacement changed id to %s", id, updated.Key())
		}
		s.records[i] = updated
		return s.persist(ctx)
	}
	return fmt.Errorf("record %s: %w", id, common.ErrNotFound)
}

// Remove filters out the matching record and persists. Removing an absent
// id leaves the store unchanged and is not an error.
func (s *Store[T]) Remove(ctx context.Context, id string) error {
	kept := s.records[:0:0]
	removed := false
	for _, r := range s.records {
		if r.Key() == id {
			removed = true
			continue
		}
		kept = append(kept, r)
	}
	if !removed {
		return nil
	}
	s.records = kept
	return s.persist(ctx)
}

// persist writes the full array, replacing prior contents. The in-memory
// slice is NOT rolled back on failure; see the Store doc comment.
func (s *Store[T]) persist(ctx context.Context) error {
	data, err := json.Marshal(s.records)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", s.namespace, err)
	}
	if s.records == nil {
		data = []byte("[]")
	}
	if err := s.storage.Set(ctx, s.namespace, string(data)); err != nil {
		return fmt.Errorf("save %s: %w", s.namespace, err)
	}
	s.logger.Debug("records saved", "count", len(s.records))
	return nil
}

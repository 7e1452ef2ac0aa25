// Package memory is an in-process DocumentStore for local development and tests.
package memory

import (
	"context"
	"fmt"
	"reflect"
	"sync"
	"time"

	"github.com/SscSPs/savkar_ledger/internal/apperrors"
	portsrepo "github.com/SscSPs/savkar_ledger/internal/core/ports/repositories"
	"github.com/google/uuid"
)

type collection struct {
	order []string
	docs  map[string]map[string]any
}

// Store keeps documents in memory. Stored and returned data are deep copies,
// so callers never share maps with the store.
type Store struct {
	mu          sync.RWMutex
	collections map[string]*collection
}

var _ portsrepo.DocumentStore = (*Store)(nil)

func NewStore() *Store {
	return &Store{collections: make(map[string]*collection)}
}

func (s *Store) Get(_ context.Context, coll, id string) (*portsrepo.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.collections[coll]
	if !ok {
		return nil, fmt.Errorf("%s/%s: %w", coll, id, apperrors.ErrNotFound)
	}
	data, ok := c.docs[id]
	if !ok {
		return nil, fmt.Errorf("%s/%s: %w", coll, id, apperrors.ErrNotFound)
	}
	return &portsrepo.Snapshot{ID: id, Data: copyMap(data)}, nil
}

func (s *Store) Create(ctx context.Context, coll string, data map[string]any) (string, error) {
	id := uuid.NewString()
	return id, s.Set(ctx, coll, id, data)
}

func (s *Store) Set(_ context.Context, coll, id string, data map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.collections[coll]
	if !ok {
		c = &collection{docs: make(map[string]map[string]any)}
		s.collections[coll] = c
	}
	if _, exists := c.docs[id]; !exists {
		c.order = append(c.order, id)
	}
	c.docs[id] = copyMap(data)
	return nil
}

func (s *Store) Update(_ context.Context, coll, id string, data map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.collections[coll]
	if !ok {
		return fmt.Errorf("%s/%s: %w", coll, id, apperrors.ErrNotFound)
	}
	doc, ok := c.docs[id]
	if !ok {
		return fmt.Errorf("%s/%s: %w", coll, id, apperrors.ErrNotFound)
	}
	for k, v := range data {
		doc[k] = copyValue(v)
	}
	return nil
}

func (s *Store) Delete(_ context.Context, coll, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.collections[coll]
	if !ok {
		return nil
	}
	if _, exists := c.docs[id]; !exists {
		return nil
	}
	delete(c.docs, id)
	for i, existing := range c.order {
		if existing == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *Store) List(_ context.Context, coll string, filters ...portsrepo.Filter) ([]portsrepo.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.collections[coll]
	if !ok {
		return []portsrepo.Snapshot{}, nil
	}
	out := make([]portsrepo.Snapshot, 0, len(c.order))
	for _, id := range c.order {
		data := c.docs[id]
		if !matches(data, filters) {
			continue
		}
		out = append(out, portsrepo.Snapshot{ID: id, Data: copyMap(data)})
	}
	return out, nil
}

func (s *Store) Ping(context.Context) error { return nil }

func (s *Store) Close() error { return nil }

func matches(data map[string]any, filters []portsrepo.Filter) bool {
	for _, f := range filters {
		v, ok := data[f.Field]
		if !ok || !reflect.DeepEqual(v, f.Value) {
			return false
		}
	}
	return true
}

func copyMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = copyValue(v)
	}
	return out
}

func copyValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return copyMap(val)
	case []map[string]any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = copyMap(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = copyValue(item)
		}
		return out
	case time.Time:
		return val
	default:
		return v
	}
}

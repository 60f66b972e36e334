// Package session keeps the per-session comparison selection: an ordered set
// of up to five school names, alive only for the session.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/Sarvesh-Vishnu/EduAid-College-Financial-Aid-Navigator/internal/model"
	"github.com/Sarvesh-Vishnu/EduAid-College-Financial-Aid-Navigator/pkg/redis"
)

// ErrSelectionLimitExceeded reports an attempt to select a sixth school.
var ErrSelectionLimitExceeded = errors.New("selection is limited to 5 schools")

// Store persists session selections. An unknown session simply has an empty
// selection; sessions are never an error to read.
type Store interface {
	Get(ctx context.Context, sessionID string) ([]string, error)
	// Add appends a school to the selection. Duplicates are a no-op; a sixth
	// distinct school is rejected with ErrSelectionLimitExceeded.
	Add(ctx context.Context, sessionID, name string) ([]string, error)
	Remove(ctx context.Context, sessionID, name string) ([]string, error)
	Clear(ctx context.Context, sessionID string) error
}

// appendSelection applies the ordered-set semantics shared by both stores.
func appendSelection(names []string, name string) ([]string, error) {
	for _, n := range names {
		if n == name {
			return names, nil
		}
	}
	if len(names) >= model.MaxCompareSchools {
		return nil, ErrSelectionLimitExceeded
	}
	return append(names, name), nil
}

func removeSelection(names []string, name string) []string {
	out := names[:0]
	for _, n := range names {
		if n != name {
			out = append(out, n)
		}
	}
	return out
}

// ── in-memory store ──

// MemoryStore is the fallback selection store used when Redis is absent.
type MemoryStore struct {
	mu         sync.Mutex
	selections map[string][]string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{selections: make(map[string][]string)}
}

func (m *MemoryStore) Get(_ context.Context, sessionID string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.selections[sessionID]...), nil
}

func (m *MemoryStore) Add(_ context.Context, sessionID, name string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	names, err := appendSelection(m.selections[sessionID], name)
	if err != nil {
		return nil, err
	}
	m.selections[sessionID] = names
	return append([]string(nil), names...), nil
}

func (m *MemoryStore) Remove(_ context.Context, sessionID, name string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	names := removeSelection(m.selections[sessionID], name)
	m.selections[sessionID] = names
	return append([]string(nil), names...), nil
}

func (m *MemoryStore) Clear(_ context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.selections, sessionID)
	return nil
}

// ── redis store ──

const selectionTTL = 24 * time.Hour

// RedisStore keeps selections in Redis so they survive server restarts for
// the lifetime of the session key.
type RedisStore struct {
	rdb *redis.Client
}

// NewRedisStore creates a Redis-backed selection store.
func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (r *RedisStore) Get(ctx context.Context, sessionID string) ([]string, error) {
	names, _, err := r.rdb.LoadSelection(ctx, sessionID)
	return names, err
}

func (r *RedisStore) Add(ctx context.Context, sessionID, name string) ([]string, error) {
	names, _, err := r.rdb.LoadSelection(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	names, err = appendSelection(names, name)
	if err != nil {
		return nil, err
	}
	if err := r.rdb.SaveSelection(ctx, sessionID, names, selectionTTL); err != nil {
		return nil, err
	}
	return names, nil
}

func (r *RedisStore) Remove(ctx context.Context, sessionID, name string) ([]string, error) {
	names, found, err := r.rdb.LoadSelection(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	names = removeSelection(names, name)
	if err := r.rdb.SaveSelection(ctx, sessionID, names, selectionTTL); err != nil {
		return nil, err
	}
	return names, nil
}

func (r *RedisStore) Clear(ctx context.Context, sessionID string) error {
	return r.rdb.DeleteSelection(ctx, sessionID)
}

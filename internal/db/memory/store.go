// Package memory implements db.Store in process memory for local runs and tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/kailas-cloud/fixerhub/internal/db"
)

// Compile-time check: Store implements db.Store.
var _ db.Store = (*Store)(nil)

type entry struct {
	hash     map[string]string
	value    []byte
	list     [][]byte
	expireAt time.Time
}

func (e *entry) expired(now time.Time) bool {
	return !e.expireAt.IsZero() && !now.Before(e.expireAt)
}

// Store keeps keys in a mutex-guarded map with lazy expiry.
type Store struct {
	mu   sync.RWMutex
	data map[string]*entry
	now  func() time.Time
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{data: make(map[string]*entry), now: time.Now}
}

// Ping always succeeds.
func (s *Store) Ping(ctx context.Context) error { return ctx.Err() }

// Close drops all data.
func (s *Store) Close() {
	s.mu.Lock()
	s.data = make(map[string]*entry)
	s.mu.Unlock()
}

// WaitForReady returns immediately.
func (s *Store) WaitForReady(ctx context.Context, _ time.Duration) error { return ctx.Err() }

// lookup returns a live entry; callers hold the lock.
func (s *Store) lookup(key string) (*entry, bool) {
	e, ok := s.data[key]
	if !ok {
		return nil, false
	}
	if e.expired(s.now()) {
		delete(s.data, key)
		return nil, false
	}
	return e, true
}

// HSet sets hash fields.
func (s *Store) HSet(ctx context.Context, key string, fields map[string]string) error {
	if err := ctx.Err(); err != nil {
		return &db.Error{Op: db.OpHSet, Err: err}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hset(key, fields)
}

func (s *Store) hset(key string, fields map[string]string) error {
	e, ok := s.lookup(key)
	if !ok {
		e = &entry{hash: make(map[string]string, len(fields))}
		s.data[key] = e
	}
	if e.hash == nil {
		return &db.Error{Op: db.OpHSet, Err: db.ErrWrongType}
	}
	for k, v := range fields {
		e.hash[k] = v
	}
	return nil
}

// HSetMulti stores multiple hashes atomically.
func (s *Store) HSetMulti(ctx context.Context, items []db.HashSetItem) error {
	if err := ctx.Err(); err != nil {
		return &db.Error{Op: db.OpHSet, Err: err}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range items {
		if err := s.hset(item.Key, item.Fields); err != nil {
			return err
		}
	}
	return nil
}

// HGetAll returns a copy of all hash fields. A missing key yields an empty map.
func (s *Store) HGetAll(ctx context.Context, key string) (map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, &db.Error{Op: db.OpHGetAll, Err: err}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hgetall(key)
}

func (s *Store) hgetall(key string) (map[string]string, error) {
	e, ok := s.lookup(key)
	if !ok {
		return map[string]string{}, nil
	}
	if e.hash == nil {
		return nil, &db.Error{Op: db.OpHGetAll, Err: db.ErrWrongType}
	}
	out := make(map[string]string, len(e.hash))
	for k, v := range e.hash {
		out[k] = v
	}
	return out, nil
}

// HGetAllMulti fetches multiple hashes.
func (s *Store) HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error) {
	if len(keys) == 0 {
		return nil, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, &db.Error{Op: db.OpHGetAll, Err: err}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]map[string]string, len(keys))
	for i, k := range keys {
		m, err := s.hgetall(k)
		if err != nil {
			return nil, err
		}
		out[i] = m
	}
	return out, nil
}

// Del deletes a key.
func (s *Store) Del(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return &db.Error{Op: db.OpDel, Err: err}
	}
	s.mu.Lock()
	delete(s.data, key)
	s.mu.Unlock()
	return nil
}

// Exists checks if a key exists.
func (s *Store) Exists(ctx context.Context, key string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, &db.Error{Op: db.OpExists, Err: err}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.lookup(key)
	return ok, nil
}

// Scan returns keys matching a Redis glob pattern in lexical order.
func (s *Store) Scan(ctx context.Context, pattern string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, &db.Error{Op: db.OpScan, Err: err}
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.now()
	var keys []string
	for k, e := range s.data {
		if e.expired(now) {
			continue
		}
		if matchGlob(pattern, k) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

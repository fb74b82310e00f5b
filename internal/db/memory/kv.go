package memory

import (
	"context"
	"strconv"
	"time"

	"github.com/kailas-cloud/fixerhub/internal/db"
)

// IncrBy increments an integer value and returns the result.
func (s *Store) IncrBy(ctx context.Context, key string, val int64) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, &db.Error{Op: db.OpIncrBy, Err: err}
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.lookup(key)
	if !ok {
		e = &entry{value: []byte("0")}
		s.data[key] = e
	}
	if e.value == nil {
		return 0, &db.Error{Op: db.OpIncrBy, Err: db.ErrWrongType}
	}
	cur, err := strconv.ParseInt(string(e.value), 10, 64)
	if err != nil {
		return 0, &db.Error{Op: db.OpIncrBy, Err: err}
	}
	cur += val
	e.value = []byte(strconv.FormatInt(cur, 10))
	return cur, nil
}

// Expire sets TTL on a key. When nx=true, only keys without an expiry are touched.
func (s *Store) Expire(ctx context.Context, key string, ttl time.Duration, nx bool) error {
	if err := ctx.Err(); err != nil {
		return &db.Error{Op: db.OpExpire, Err: err}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.lookup(key)
	if !ok {
		return nil
	}
	if nx && !e.expireAt.IsZero() {
		return nil
	}
	e.expireAt = s.now().Add(ttl)
	return nil
}

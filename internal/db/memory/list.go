package memory

import (
	"context"

	"github.com/kailas-cloud/fixerhub/internal/db"
)

// RPush appends values and returns the new list length.
func (s *Store) RPush(ctx context.Context, key string, values ...[]byte) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, &db.Error{Op: db.OpRPush, Err: err}
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.lookup(key)
	if !ok {
		if len(values) == 0 {
			return 0, nil
		}
		e = &entry{list: make([][]byte, 0, len(values))}
		s.data[key] = e
	}
	if e.list == nil {
		return 0, &db.Error{Op: db.OpRPush, Err: db.ErrWrongType}
	}
	for _, v := range values {
		e.list = append(e.list, append([]byte(nil), v...))
	}
	return int64(len(e.list)), nil
}

// LRange returns elements between start and stop inclusive, LRANGE semantics.
func (s *Store) LRange(ctx context.Context, key string, start, stop int64) ([][]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, &db.Error{Op: db.OpLRange, Err: err}
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.lookup(key)
	if !ok {
		return [][]byte{}, nil
	}
	if e.list == nil {
		return nil, &db.Error{Op: db.OpLRange, Err: db.ErrWrongType}
	}

	n := int64(len(e.list))
	if start < 0 {
		start += n
	}
	if stop < 0 {
		stop += n
	}
	if start < 0 {
		start = 0
	}
	if stop >= n {
		stop = n - 1
	}
	if start > stop {
		return [][]byte{}, nil
	}

	out := make([][]byte, 0, stop-start+1)
	for _, v := range e.list[start : stop+1] {
		out = append(out, append([]byte(nil), v...))
	}
	return out, nil
}

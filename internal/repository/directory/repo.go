package directory

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/kailas-cloud/fixerhub/internal/db"
	"github.com/kailas-cloud/fixerhub/internal/domain"
	"github.com/kailas-cloud/fixerhub/internal/domain/category"
	"github.com/kailas-cloud/fixerhub/internal/domain/professional"
)

// store is the consumer interface for the directory (ISP).
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HSetMulti(ctx context.Context, items []db.HashSetItem) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error)
	Del(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	Scan(ctx context.Context, pattern string) ([]string, error)
	IncrBy(ctx context.Context, key string, val int64) (int64, error)
}

// Repo stores professionals and categories as hashes.
// Layout: {prefix}pro:{id}, {prefix}cat:{id}, {prefix}seq:pro.
type Repo struct {
	store  store
	prefix string
}

// New creates a directory repository.
func New(s store, prefix string) *Repo {
	if prefix == "" {
		prefix = domain.KeyPrefix
	}
	return &Repo{store: s, prefix: prefix}
}

func (r *Repo) professionalKey(id string) string { return r.prefix + "pro:" + id }
func (r *Repo) categoryKey(id string) string     { return r.prefix + "cat:" + id }
func (r *Repo) seqKey() string                   { return r.prefix + "seq:pro" }

// PutProfessional creates or replaces a listing. It reports whether the listing is new.
// Replacing keeps the original listing position.
func (r *Repo) PutProfessional(ctx context.Context, p professional.Professional) (bool, error) {
	key := r.professionalKey(p.ID())

	existing, err := r.store.HGetAll(ctx, key)
	if err != nil {
		return false, fmt.Errorf("hgetall professional %s: %w", p.ID(), err)
	}

	created := len(existing) == 0
	var seq int64
	if created {
		if seq, err = r.store.IncrBy(ctx, r.seqKey(), 1); err != nil {
			return false, fmt.Errorf("next professional seq: %w", err)
		}
	} else if seq, err = strconv.ParseInt(existing[fieldSeq], 10, 64); err != nil {
		return false, fmt.Errorf("invalid seq on professional %s: %w", p.ID(), err)
	}

	fields, err := professionalToHash(p, seq)
	if err != nil {
		return false, err
	}
	if err := r.store.HSet(ctx, key, fields); err != nil {
		return false, fmt.Errorf("hset professional %s: %w", p.ID(), err)
	}
	return created, nil
}

// GetProfessional retrieves a listing by id.
func (r *Repo) GetProfessional(ctx context.Context, id string) (professional.Professional, error) {
	m, err := r.store.HGetAll(ctx, r.professionalKey(id))
	if err != nil {
		return professional.Professional{}, fmt.Errorf("hgetall professional %s: %w", id, err)
	}
	if len(m) == 0 {
		return professional.Professional{}, domain.ErrProfessionalNotFound
	}
	p, _, err := professionalFromHash(m)
	if err != nil {
		return professional.Professional{}, fmt.Errorf("parse professional %s: %w", id, err)
	}
	return p, nil
}

// DeleteProfessional removes a listing.
func (r *Repo) DeleteProfessional(ctx context.Context, id string) error {
	key := r.professionalKey(id)
	ok, err := r.store.Exists(ctx, key)
	if err != nil {
		return fmt.Errorf("exists professional %s: %w", id, err)
	}
	if !ok {
		return domain.ErrProfessionalNotFound
	}
	if err := r.store.Del(ctx, key); err != nil {
		return fmt.Errorf("del professional %s: %w", id, err)
	}
	return nil
}

// ListProfessionals returns all listings in insertion order.
func (r *Repo) ListProfessionals(ctx context.Context) ([]professional.Professional, error) {
	keys, err := r.store.Scan(ctx, r.professionalKey("*"))
	if err != nil {
		return nil, fmt.Errorf("scan professionals: %w", err)
	}
	if len(keys) == 0 {
		return []professional.Professional{}, nil
	}

	results, err := r.store.HGetAllMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("hgetall multi professionals: %w", err)
	}

	type row struct {
		p   professional.Professional
		seq int64
	}
	rows := make([]row, 0, len(results))
	for i, m := range results {
		if len(m) == 0 {
			continue
		}
		p, seq, err := professionalFromHash(m)
		if err != nil {
			return nil, fmt.Errorf("parse professional %s: %w", keys[i], err)
		}
		rows = append(rows, row{p: p, seq: seq})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].seq != rows[j].seq {
			return rows[i].seq < rows[j].seq
		}
		return rows[i].p.ID() < rows[j].p.ID()
	})

	out := make([]professional.Professional, len(rows))
	for i, rw := range rows {
		out[i] = rw.p
	}
	return out, nil
}

// PutCategory creates or replaces a category. It reports whether the category is new.
func (r *Repo) PutCategory(ctx context.Context, c category.Category) (bool, error) {
	key := r.categoryKey(strconv.Itoa(c.ID()))
	existed, err := r.store.Exists(ctx, key)
	if err != nil {
		return false, fmt.Errorf("exists category %d: %w", c.ID(), err)
	}
	if err := r.store.HSet(ctx, key, categoryToHash(c)); err != nil {
		return false, fmt.Errorf("hset category %d: %w", c.ID(), err)
	}
	return !existed, nil
}

// PutAll bulk-loads categories and professionals in one pipelined write.
// Professionals get fresh listing positions in slice order, so it is meant for an empty directory.
func (r *Repo) PutAll(ctx context.Context, cats []category.Category, pros []professional.Professional) error {
	items := make([]db.HashSetItem, 0, len(cats)+len(pros))
	for _, c := range cats {
		items = append(items, db.HashSetItem{Key: r.categoryKey(strconv.Itoa(c.ID())), Fields: categoryToHash(c)})
	}

	if len(pros) > 0 {
		last, err := r.store.IncrBy(ctx, r.seqKey(), int64(len(pros)))
		if err != nil {
			return fmt.Errorf("reserve professional seqs: %w", err)
		}
		first := last - int64(len(pros)) + 1
		for i, p := range pros {
			fields, err := professionalToHash(p, first+int64(i))
			if err != nil {
				return err
			}
			items = append(items, db.HashSetItem{Key: r.professionalKey(p.ID()), Fields: fields})
		}
	}

	if len(items) == 0 {
		return nil
	}
	if err := r.store.HSetMulti(ctx, items); err != nil {
		return fmt.Errorf("hset multi directory: %w", err)
	}
	return nil
}

// ListCategories returns all categories ordered by id.
func (r *Repo) ListCategories(ctx context.Context) ([]category.Category, error) {
	keys, err := r.store.Scan(ctx, r.categoryKey("*"))
	if err != nil {
		return nil, fmt.Errorf("scan categories: %w", err)
	}
	if len(keys) == 0 {
		return []category.Category{}, nil
	}

	results, err := r.store.HGetAllMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("hgetall multi categories: %w", err)
	}

	out := make([]category.Category, 0, len(results))
	for i, m := range results {
		if len(m) == 0 {
			continue
		}
		c, err := categoryFromHash(m)
		if err != nil {
			return nil, fmt.Errorf("parse category %s: %w", keys[i], err)
		}
		out = append(out, c)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out, nil
}

package conversation

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/kailas-cloud/fixerhub/internal/domain"
	domconv "github.com/kailas-cloud/fixerhub/internal/domain/conversation"
)

// store is the consumer interface for conversations (ISP).
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	RPush(ctx context.Context, key string, values ...[]byte) (int64, error)
	LRange(ctx context.Context, key string, start, stop int64) ([][]byte, error)
	Expire(ctx context.Context, key string, ttl time.Duration, nx bool) error
}

// Repo stores a conversation as a meta hash plus an append-only turn list.
// Layout: {prefix}conv:{id} and {prefix}conv:{id}:turns.
type Repo struct {
	store  store
	prefix string
	ttl    time.Duration
}

// New creates a conversation repository. ttl <= 0 keeps conversations forever.
func New(s store, prefix string, ttl time.Duration) *Repo {
	if prefix == "" {
		prefix = domain.KeyPrefix
	}
	return &Repo{store: s, prefix: prefix, ttl: ttl}
}

func (r *Repo) metaKey(id string) string  { return r.prefix + "conv:" + id }
func (r *Repo) turnsKey(id string) string { return r.prefix + "conv:" + id + ":turns" }

// Create stores a new conversation with its initial turns.
func (r *Repo) Create(ctx context.Context, c *domconv.Conversation) error {
	if err := r.store.HSet(ctx, r.metaKey(c.ID()), metaToHash(c)); err != nil {
		return fmt.Errorf("hset conversation %s: %w", c.ID(), err)
	}

	turns := c.Turns()
	if len(turns) > 0 {
		values := make([][]byte, len(turns))
		for i, t := range turns {
			data, err := encodeTurn(t)
			if err != nil {
				return err
			}
			values[i] = data
		}
		if _, err := r.store.RPush(ctx, r.turnsKey(c.ID()), values...); err != nil {
			return fmt.Errorf("rpush turns %s: %w", c.ID(), err)
		}
	}

	return r.touch(ctx, c.ID())
}

// AppendTurn pushes a turn onto an existing open conversation.
// The stored list length must match the turn's sequence id.
func (r *Repo) AppendTurn(ctx context.Context, id string, t domconv.Turn) error {
	m, err := r.loadMeta(ctx, id)
	if err != nil {
		return err
	}
	if m.closed {
		return domain.ErrConversationClosed
	}

	data, err := encodeTurn(t)
	if err != nil {
		return err
	}
	n, err := r.store.RPush(ctx, r.turnsKey(id), data)
	if err != nil {
		return fmt.Errorf("rpush turn %s: %w", id, err)
	}
	if strconv.FormatInt(n, 10) != t.ID() {
		return fmt.Errorf("conversation %s: turn %s stored at position %d", id, t.ID(), n)
	}

	return r.touch(ctx, id)
}

// Close marks a conversation terminal with the hand-off query.
func (r *Repo) Close(ctx context.Context, id, handoff string) error {
	m, err := r.loadMeta(ctx, id)
	if err != nil {
		return err
	}
	if m.closed {
		return nil
	}
	fields := map[string]string{"closed": "true", "handoff": handoff}
	if err := r.store.HSet(ctx, r.metaKey(id), fields); err != nil {
		return fmt.Errorf("hset conversation %s: %w", id, err)
	}
	return nil
}

// Get loads a conversation with its full history.
func (r *Repo) Get(ctx context.Context, id string) (*domconv.Conversation, error) {
	m, err := r.loadMeta(ctx, id)
	if err != nil {
		return nil, err
	}

	raw, err := r.store.LRange(ctx, r.turnsKey(id), 0, -1)
	if err != nil {
		return nil, fmt.Errorf("lrange turns %s: %w", id, err)
	}
	turns := make([]domconv.Turn, 0, len(raw))
	for i, data := range raw {
		t, err := decodeTurn(data)
		if err != nil {
			return nil, fmt.Errorf("conversation %s turn %d: %w", id, i+1, err)
		}
		turns = append(turns, t)
	}

	return domconv.Reconstruct(m.id, m.createdAt, turns, m.closed, m.handoff), nil
}

func (r *Repo) loadMeta(ctx context.Context, id string) (meta, error) {
	h, err := r.store.HGetAll(ctx, r.metaKey(id))
	if err != nil {
		return meta{}, fmt.Errorf("hgetall conversation %s: %w", id, err)
	}
	if len(h) == 0 {
		return meta{}, domain.ErrConversationNotFound
	}
	m, err := metaFromHash(h)
	if err != nil {
		return meta{}, fmt.Errorf("parse conversation %s: %w", id, err)
	}
	return m, nil
}

// touch refreshes the expiry of both keys.
func (r *Repo) touch(ctx context.Context, id string) error {
	if r.ttl <= 0 {
		return nil
	}
	for _, key := range []string{r.metaKey(id), r.turnsKey(id)} {
		if err := r.store.Expire(ctx, key, r.ttl, false); err != nil {
			return fmt.Errorf("expire %s: %w", key, err)
		}
	}
	return nil
}

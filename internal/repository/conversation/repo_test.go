package conversation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kailas-cloud/fixerhub/internal/db/memory"
	"github.com/kailas-cloud/fixerhub/internal/domain"
	domconv "github.com/kailas-cloud/fixerhub/internal/domain/conversation"
)

var t0 = time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)

// mockStore records Expire calls and fails RPush on demand.
type mockStore struct {
	*memory.Store
	expired  []string
	rpushErr error
}

func (m *mockStore) Expire(ctx context.Context, key string, ttl time.Duration, nx bool) error {
	m.expired = append(m.expired, key)
	return m.Store.Expire(ctx, key, ttl, nx)
}

func (m *mockStore) RPush(ctx context.Context, key string, values ...[]byte) (int64, error) {
	if m.rpushErr != nil {
		return 0, m.rpushErr
	}
	return m.Store.RPush(ctx, key, values...)
}

func newConversation(t *testing.T) *domconv.Conversation {
	t.Helper()
	c := domconv.New("c1", t0)
	if _, err := c.Add(domconv.SenderAssistant, "hi", []string{"a", "b"}, t0); err != nil {
		t.Fatal(err)
	}
	return c
}

func TestCreateGet_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := New(memory.NewStore(), "", 0)

	if err := repo.Create(ctx, newConversation(t)); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.Get(ctx, "c1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !got.CreatedAt().Equal(t0) || got.Closed() {
		t.Errorf("meta mismatch: created=%v closed=%v", got.CreatedAt(), got.Closed())
	}
	turns := got.Turns()
	if len(turns) != 1 {
		t.Fatalf("turns: got %d", len(turns))
	}
	if turns[0].ID() != "1" || turns[0].Sender() != domconv.SenderAssistant || len(turns[0].Suggestions()) != 2 {
		t.Errorf("turn mismatch: %+v", turns[0])
	}
	if !turns[0].CreatedAt().Equal(t0) {
		t.Errorf("turn time: got %v", turns[0].CreatedAt())
	}
}

func TestAppendTurn(t *testing.T) {
	ctx := context.Background()
	repo := New(memory.NewStore(), "", 0)
	c := newConversation(t)
	if err := repo.Create(ctx, c); err != nil {
		t.Fatal(err)
	}

	turn, err := c.Add(domconv.SenderUser, "leak", nil, t0.Add(time.Second))
	if err != nil {
		t.Fatal(err)
	}
	if err := repo.AppendTurn(ctx, "c1", turn); err != nil {
		t.Fatalf("append: %v", err)
	}

	got, _ := repo.Get(ctx, "c1")
	if got.Len() != 2 {
		t.Fatalf("len: got %d", got.Len())
	}
	last, _ := got.Last()
	if last.Text() != "leak" || last.Sender() != domconv.SenderUser {
		t.Errorf("last turn: %+v", last)
	}
}

func TestAppendTurn_OutOfSequence(t *testing.T) {
	ctx := context.Background()
	repo := New(memory.NewStore(), "", 0)
	if err := repo.Create(ctx, newConversation(t)); err != nil {
		t.Fatal(err)
	}

	stale := domconv.NewTurn("1", "dup", domconv.SenderUser, t0, nil)
	if err := repo.AppendTurn(ctx, "c1", stale); err == nil {
		t.Fatal("expected sequence error")
	}
}

func TestAppendTurn_Closed(t *testing.T) {
	ctx := context.Background()
	repo := New(memory.NewStore(), "", 0)
	if err := repo.Create(ctx, newConversation(t)); err != nil {
		t.Fatal(err)
	}
	if err := repo.Close(ctx, "c1", "Leak Repair"); err != nil {
		t.Fatal(err)
	}

	err := repo.AppendTurn(ctx, "c1", domconv.NewTurn("2", "x", domconv.SenderUser, t0, nil))
	if !errors.Is(err, domain.ErrConversationClosed) {
		t.Fatalf("expected ErrConversationClosed, got %v", err)
	}

	got, _ := repo.Get(ctx, "c1")
	if !got.Closed() || got.Handoff() != "Leak Repair" {
		t.Errorf("closed=%v handoff=%q", got.Closed(), got.Handoff())
	}
}

func TestClose_KeepsFirstHandoff(t *testing.T) {
	ctx := context.Background()
	repo := New(memory.NewStore(), "", 0)
	if err := repo.Create(ctx, newConversation(t)); err != nil {
		t.Fatal(err)
	}
	_ = repo.Close(ctx, "c1", "first")
	_ = repo.Close(ctx, "c1", "second")

	got, _ := repo.Get(ctx, "c1")
	if got.Handoff() != "first" {
		t.Errorf("handoff: got %q", got.Handoff())
	}
}

func TestNotFound(t *testing.T) {
	ctx := context.Background()
	repo := New(memory.NewStore(), "", 0)

	if _, err := repo.Get(ctx, "missing"); !errors.Is(err, domain.ErrConversationNotFound) {
		t.Errorf("get: got %v", err)
	}
	if err := repo.Close(ctx, "missing", ""); !errors.Is(err, domain.ErrConversationNotFound) {
		t.Errorf("close: got %v", err)
	}
	turn := domconv.NewTurn("1", "x", domconv.SenderUser, t0, nil)
	if err := repo.AppendTurn(ctx, "missing", turn); !errors.Is(err, domain.ErrConversationNotFound) {
		t.Errorf("append: got %v", err)
	}
}

func TestTTL_RefreshesBothKeys(t *testing.T) {
	ctx := context.Background()
	ms := &mockStore{Store: memory.NewStore()}
	repo := New(ms, "fh:", time.Hour)

	if err := repo.Create(ctx, newConversation(t)); err != nil {
		t.Fatal(err)
	}
	if len(ms.expired) != 2 || ms.expired[0] != "fh:conv:c1" || ms.expired[1] != "fh:conv:c1:turns" {
		t.Errorf("expired keys: %v", ms.expired)
	}
}

func TestCreate_StoreError(t *testing.T) {
	ms := &mockStore{Store: memory.NewStore(), rpushErr: errors.New("boom")}
	repo := New(ms, "", 0)
	if err := repo.Create(context.Background(), newConversation(t)); err == nil {
		t.Fatal("expected error")
	}
}

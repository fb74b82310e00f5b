package directory

import (
	"context"
	"errors"
	"testing"

	"github.com/kailas-cloud/fixerhub/internal/db"
	"github.com/kailas-cloud/fixerhub/internal/db/memory"
	"github.com/kailas-cloud/fixerhub/internal/domain"
	"github.com/kailas-cloud/fixerhub/internal/domain/category"
	"github.com/kailas-cloud/fixerhub/internal/domain/professional"
)

func TestPutProfessional_NewAssignsSeq(t *testing.T) {
	var stored map[string]string
	ms := &mockStore{
		incrByFn: func(_ context.Context, key string, _ int64) (int64, error) {
			if key != "fixerhub:seq:pro" {
				t.Errorf("seq key: got %q", key)
			}
			return 5, nil
		},
		hsetFn: func(_ context.Context, key string, fields map[string]string) error {
			if key != "fixerhub:pro:1" {
				t.Errorf("key: got %q", key)
			}
			stored = fields
			return nil
		},
	}

	created, err := New(ms, "").PutProfessional(context.Background(), testProfessional("1", "John Smith"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created {
		t.Error("expected created")
	}
	if stored[fieldSeq] != "5" || stored[fieldName] != "John Smith" {
		t.Errorf("unexpected fields: %v", stored)
	}
	if stored[fieldServices] != `["Fix Light Switch","Install Ceiling Fan"]` {
		t.Errorf("services_json: got %s", stored[fieldServices])
	}
}

func TestPutProfessional_ReplaceKeepsSeq(t *testing.T) {
	var stored map[string]string
	ms := &mockStore{
		hgetAllFn: func(context.Context, string) (map[string]string, error) {
			return map[string]string{fieldID: "1", fieldSeq: "2"}, nil
		},
		incrByFn: func(context.Context, string, int64) (int64, error) {
			t.Fatal("seq must not advance on replace")
			return 0, nil
		},
		hsetFn: func(_ context.Context, _ string, fields map[string]string) error {
			stored = fields
			return nil
		},
	}

	created, err := New(ms, "").PutProfessional(context.Background(), testProfessional("1", "John Smith"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created {
		t.Error("expected replace")
	}
	if stored[fieldSeq] != "2" {
		t.Errorf("seq: got %q", stored[fieldSeq])
	}
}

func TestPutProfessional_StoreError(t *testing.T) {
	ms := &mockStore{
		hsetFn: func(context.Context, string, map[string]string) error { return errors.New("boom") },
	}
	if _, err := New(ms, "").PutProfessional(context.Background(), testProfessional("1", "x")); err == nil {
		t.Fatal("expected error")
	}
}

func TestGetProfessional_NotFound(t *testing.T) {
	_, err := New(&mockStore{}, "").GetProfessional(context.Background(), "nope")
	if !errors.Is(err, domain.ErrProfessionalNotFound) {
		t.Fatalf("expected ErrProfessionalNotFound, got %v", err)
	}
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatal("expected ErrNotFound family")
	}
}

func TestGetProfessional_CorruptHash(t *testing.T) {
	ms := &mockStore{
		hgetAllFn: func(context.Context, string) (map[string]string, error) {
			return map[string]string{fieldID: "1", fieldRating: "high"}, nil
		},
	}
	if _, err := New(ms, "").GetProfessional(context.Background(), "1"); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestDeleteProfessional_NotFound(t *testing.T) {
	err := New(&mockStore{}, "").DeleteProfessional(context.Background(), "nope")
	if !errors.Is(err, domain.ErrProfessionalNotFound) {
		t.Fatalf("expected ErrProfessionalNotFound, got %v", err)
	}
}

func TestDeleteProfessional_ChecksExistence(t *testing.T) {
	var deleted string
	ms := &mockStore{
		existsFn: func(_ context.Context, key string) (bool, error) { return key == "fixerhub:pro:1", nil },
		hgetAllFn: func(context.Context, string) (map[string]string, error) {
			t.Error("delete must not load the listing")
			return nil, nil
		},
		delFn: func(_ context.Context, key string) error {
			deleted = key
			return nil
		},
	}
	if err := New(ms, "").DeleteProfessional(context.Background(), "1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted != "fixerhub:pro:1" {
		t.Errorf("deleted key: got %q", deleted)
	}
}

func TestPutAll_SinglePipelinedWrite(t *testing.T) {
	var items []db.HashSetItem
	calls := 0
	ms := &mockStore{
		incrByFn: func(_ context.Context, _ string, val int64) (int64, error) {
			if val != 2 {
				t.Errorf("reserved seqs: got %d, want 2", val)
			}
			return 7, nil
		},
		hsetFn: func(context.Context, string, map[string]string) error {
			t.Error("bulk load must not issue single HSETs")
			return nil
		},
		hsetMultiFn: func(_ context.Context, in []db.HashSetItem) error {
			calls++
			items = in
			return nil
		},
	}

	cats := []category.Category{category.Reconstruct(1, "Electrical", "zap", "#EAB308")}
	pros := []professional.Professional{testProfessional("a", "Pro A"), testProfessional("b", "Pro B")}
	if err := New(ms, "").PutAll(context.Background(), cats, pros); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 1 || len(items) != 3 {
		t.Fatalf("HSetMulti: calls=%d items=%d", calls, len(items))
	}
	if items[0].Key != "fixerhub:cat:1" {
		t.Errorf("category key: got %q", items[0].Key)
	}
	if items[1].Key != "fixerhub:pro:a" || items[1].Fields[fieldSeq] != "6" {
		t.Errorf("first professional: %s seq=%s", items[1].Key, items[1].Fields[fieldSeq])
	}
	if items[2].Key != "fixerhub:pro:b" || items[2].Fields[fieldSeq] != "7" {
		t.Errorf("second professional: %s seq=%s", items[2].Key, items[2].Fields[fieldSeq])
	}
}

func TestPutAll_Empty(t *testing.T) {
	ms := &mockStore{
		hsetMultiFn: func(context.Context, []db.HashSetItem) error {
			t.Error("nothing to write")
			return nil
		},
	}
	if err := New(ms, "").PutAll(context.Background(), nil, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestListProfessionals_IDWithSlash_MemoryStore(t *testing.T) {
	ctx := context.Background()
	repo := New(memory.NewStore(), "")

	for _, id := range []string{"team/1", "2"} {
		if _, err := repo.PutProfessional(ctx, testProfessional(id, "Pro "+id)); err != nil {
			t.Fatalf("put %s: %v", id, err)
		}
	}
	if got, err := repo.GetProfessional(ctx, "team/1"); err != nil || got.ID() != "team/1" {
		t.Fatalf("get: %v, %v", got.ID(), err)
	}

	list, err := repo.ListProfessionals(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 || list[0].ID() != "team/1" || list[1].ID() != "2" {
		t.Fatalf("list: got %d listings", len(list))
	}
}

func TestListProfessionals_Empty(t *testing.T) {
	list, err := New(&mockStore{}, "").ListProfessionals(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if list == nil || len(list) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", list)
	}
}

func TestRoundTrip_MemoryStore(t *testing.T) {
	ctx := context.Background()
	repo := New(memory.NewStore(), "test:")

	// insertion order: c, b, a
	for _, id := range []string{"c", "b", "a"} {
		if _, err := repo.PutProfessional(ctx, testProfessional(id, "Pro "+id)); err != nil {
			t.Fatalf("put %s: %v", id, err)
		}
	}
	// replacing keeps position
	if _, err := repo.PutProfessional(ctx, testProfessional("c", "Renamed")); err != nil {
		t.Fatal(err)
	}

	list, err := repo.ListProfessionals(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 3 {
		t.Fatalf("len: got %d", len(list))
	}
	if list[0].ID() != "c" || list[1].ID() != "b" || list[2].ID() != "a" {
		t.Errorf("order: got %s %s %s", list[0].ID(), list[1].ID(), list[2].ID())
	}
	if list[0].Name() != "Renamed" {
		t.Errorf("replace lost: %q", list[0].Name())
	}

	got, err := repo.GetProfessional(ctx, "b")
	if err != nil {
		t.Fatal(err)
	}
	if got.Rating() != 4.8 || got.Reviews() != 156 || !got.Verified() || len(got.Services()) != 2 {
		t.Errorf("round trip mismatch: %+v", got.Attrs())
	}
	if loc := got.Location(); loc == nil || loc.Lat != 40.7128 {
		t.Errorf("location: got %v", loc)
	}

	if err := repo.DeleteProfessional(ctx, "b"); err != nil {
		t.Fatal(err)
	}
	if _, err := repo.GetProfessional(ctx, "b"); !errors.Is(err, domain.ErrProfessionalNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}

func TestCategories_MemoryStore(t *testing.T) {
	ctx := context.Background()
	repo := New(memory.NewStore(), "")

	for _, c := range []category.Category{
		category.Reconstruct(10, "Garden", "leaf", "#00FF00"),
		category.Reconstruct(2, "Plumbing", "droplets", "#3B82F6"),
		category.Reconstruct(1, "Electrical", "zap", "#EAB308"),
	} {
		created, err := repo.PutCategory(ctx, c)
		if err != nil {
			t.Fatal(err)
		}
		if !created {
			t.Errorf("category %d: expected created", c.ID())
		}
	}

	created, err := repo.PutCategory(ctx, category.Reconstruct(2, "Plumbing & Water", "droplets", ""))
	if err != nil || created {
		t.Fatalf("replace: created=%v err=%v", created, err)
	}

	list, err := repo.ListCategories(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 3 || list[0].ID() != 1 || list[1].ID() != 2 || list[2].ID() != 10 {
		t.Fatalf("unexpected order: %v", list)
	}
	if list[1].Name() != "Plumbing & Water" {
		t.Errorf("replace lost: %q", list[1].Name())
	}
}

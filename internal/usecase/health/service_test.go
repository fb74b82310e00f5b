package health

import (
	"context"
	"errors"
	"testing"

	"github.com/kailas-cloud/fixerhub/internal/domain/category"
)

// --- Mocks ---

type mockDBPinger struct {
	err error
}

func (m *mockDBPinger) Ping(_ context.Context) error { return m.err }

type mockLister struct {
	cats []category.Category
	err  error
}

func (m *mockLister) ListCategories(_ context.Context) ([]category.Category, error) {
	return m.cats, m.err
}

// --- Tests ---

func TestCheck_AllHealthy(t *testing.T) {
	svc := New(&mockDBPinger{}, &mockLister{cats: []category.Category{category.Reconstruct(1, "Electrical", "", "")}})
	r := svc.Check(context.Background())

	if r.Status != Healthy {
		t.Errorf("expected %q, got %q", Healthy, r.Status)
	}
	if r.Checks["database"] != CheckOK || r.Checks["directory"] != CheckOK {
		t.Errorf("unexpected checks: %v", r.Checks)
	}
}

func TestCheck_DBError(t *testing.T) {
	svc := New(&mockDBPinger{err: errors.New("conn refused")}, &mockLister{})
	r := svc.Check(context.Background())

	if r.Status != Unhealthy {
		t.Errorf("expected %q, got %q", Unhealthy, r.Status)
	}
	if r.Checks["database"] != CheckError {
		t.Errorf("expected database %q, got %q", CheckError, r.Checks["database"])
	}
	if _, ok := r.Checks["directory"]; ok {
		t.Error("directory must not be checked when the database is down")
	}
}

func TestCheck_DirectoryError(t *testing.T) {
	svc := New(&mockDBPinger{}, &mockLister{err: errors.New("wrong type")})
	r := svc.Check(context.Background())

	if r.Status != Degraded {
		t.Errorf("expected %q, got %q", Degraded, r.Status)
	}
	if r.Checks["directory"] != CheckError {
		t.Errorf("expected directory %q, got %q", CheckError, r.Checks["directory"])
	}
}

func TestCheck_EmptyDirectory(t *testing.T) {
	r := New(&mockDBPinger{}, &mockLister{}).Check(context.Background())
	if r.Status != Healthy || r.Checks["directory"] != CheckEmpty {
		t.Errorf("unexpected report: %+v", r)
	}
}

func TestCheck_NoDirectory(t *testing.T) {
	r := New(&mockDBPinger{}, nil).Check(context.Background())
	if r.Status != Healthy {
		t.Errorf("expected %q, got %q", Healthy, r.Status)
	}
	if _, ok := r.Checks["directory"]; ok {
		t.Error("directory check should be absent")
	}
}

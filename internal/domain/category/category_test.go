package category

import "testing"

func TestNew(t *testing.T) {
	c, err := New(2, "Plumbing", "droplets", "#3B82F6")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.ID() != 2 || c.Name() != "Plumbing" || c.Icon() != "droplets" || c.Color() != "#3B82F6" {
		t.Errorf("unexpected category: %+v", c)
	}
}

func TestNew_Invalid(t *testing.T) {
	if _, err := New(0, "Plumbing", "", ""); err == nil {
		t.Error("expected error for zero id")
	}
	if _, err := New(-3, "Plumbing", "", ""); err == nil {
		t.Error("expected error for negative id")
	}
	if _, err := New(1, "  ", "", ""); err == nil {
		t.Error("expected error for blank name")
	}
}

func TestFind(t *testing.T) {
	cats := []Category{
		Reconstruct(1, "Electrical", "zap", ""),
		Reconstruct(2, "Plumbing", "droplets", ""),
	}

	c, ok := Find(cats, 2)
	if !ok || c.Name() != "Plumbing" {
		t.Fatalf("Find(2) = %v, %v", c, ok)
	}
	if _, ok := Find(cats, 99); ok {
		t.Error("expected miss for unknown id")
	}
	if _, ok := Find(nil, 1); ok {
		t.Error("expected miss on empty list")
	}
}

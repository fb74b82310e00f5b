package seed

import (
	"context"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/kailas-cloud/fixerhub/internal/db/memory"
	"github.com/kailas-cloud/fixerhub/internal/repository/directory"
)

func shippedSeed(t *testing.T) string {
	t.Helper()
	_, b, _, _ := runtime.Caller(0)
	root := filepath.Dir(filepath.Dir(filepath.Dir(filepath.Dir(b))))
	return filepath.Join(root, "config", "seed.yaml")
}

func TestLoadFile_ShippedSeed(t *testing.T) {
	d, err := LoadFile(shippedSeed(t))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(d.Categories) != 8 {
		t.Errorf("categories: got %d, want 8", len(d.Categories))
	}
	if len(d.Professionals) != 4 {
		t.Fatalf("professionals: got %d, want 4", len(d.Professionals))
	}
	want := []string{"John Smith", "Sarah Johnson", "Mike Wilson", "Emma Davis"}
	for i, p := range d.Professionals {
		if p.Name() != want[i] {
			t.Errorf("professional %d: got %q, want %q", i, p.Name(), want[i])
		}
		if !p.Verified() {
			t.Errorf("%s: expected verified", p.Name())
		}
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := map[string]string{
		"bad yaml":       "categories: [",
		"bad category":   "categories:\n  - {id: 0, name: X}\n",
		"dup category":   "categories:\n  - {id: 1, name: A}\n  - {id: 1, name: B}\n",
		"bad rating":     "professionals:\n  - {id: '1', name: A, rating: 7}\n",
		"dup pro":        "professionals:\n  - {id: '1', name: A}\n  - {id: '1', name: B}\n",
		"half location":  "professionals:\n  - {id: '1', name: A, lat: 40}\n",
		"bad coordinate": "professionals:\n  - {id: '1', name: A, lat: 91, lon: 0}\n",
	}
	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse([]byte(raw)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestParse_Location(t *testing.T) {
	d, err := Parse([]byte("professionals:\n  - {id: '1', name: A, lat: 40.7, lon: -74}\n"))
	if err != nil {
		t.Fatal(err)
	}
	if loc := d.Professionals[0].Location(); loc == nil || loc.Lon != -74 {
		t.Fatalf("location: got %v", loc)
	}
}

func TestApply_OnlyWhenEmpty(t *testing.T) {
	ctx := context.Background()
	repo := directory.New(memory.NewStore(), "")

	d, err := LoadFile(shippedSeed(t))
	if err != nil {
		t.Fatal(err)
	}

	applied, err := Apply(ctx, repo, d)
	if err != nil || !applied {
		t.Fatalf("first apply: applied=%v err=%v", applied, err)
	}
	applied, err = Apply(ctx, repo, d)
	if err != nil || applied {
		t.Fatalf("second apply: applied=%v err=%v", applied, err)
	}

	pros, _ := repo.ListProfessionals(ctx)
	if len(pros) != 4 || pros[0].Name() != "John Smith" || pros[3].Name() != "Emma Davis" {
		t.Errorf("unexpected professionals after seed: %d", len(pros))
	}
	cats, _ := repo.ListCategories(ctx)
	if len(cats) != 8 || cats[0].Name() != "Electrical" {
		t.Errorf("unexpected categories after seed: %d", len(cats))
	}
}

func TestApply_EmptySeedWritesNothing(t *testing.T) {
	ctx := context.Background()
	repo := directory.New(memory.NewStore(), "")

	applied, err := Apply(ctx, repo, Data{})
	if err != nil || applied {
		t.Fatalf("applied=%v err=%v", applied, err)
	}
}

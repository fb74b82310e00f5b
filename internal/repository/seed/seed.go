// Package seed loads directory seed data from YAML.
package seed

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/kailas-cloud/fixerhub/internal/domain/category"
	"github.com/kailas-cloud/fixerhub/internal/domain/geo"
	"github.com/kailas-cloud/fixerhub/internal/domain/professional"
)

type categoryRow struct {
	ID    int    `yaml:"id"`
	Name  string `yaml:"name"`
	Icon  string `yaml:"icon"`
	Color string `yaml:"color"`
}

type professionalRow struct {
	ID         string   `yaml:"id"`
	Name       string   `yaml:"name"`
	Profession string   `yaml:"profession"`
	Rating     float64  `yaml:"rating"`
	Reviews    int      `yaml:"reviews"`
	Price      float64  `yaml:"price"`
	Distance   float64  `yaml:"distance"`
	Verified   bool     `yaml:"verified"`
	Image      string   `yaml:"image"`
	Services   []string `yaml:"services"`
	Lat        *float64 `yaml:"lat"`
	Lon        *float64 `yaml:"lon"`
}

type fileRow struct {
	Categories    []categoryRow     `yaml:"categories"`
	Professionals []professionalRow `yaml:"professionals"`
}

// Data is a validated seed.
type Data struct {
	Categories    []category.Category
	Professionals []professional.Professional
}

// LoadFile reads and validates a seed file.
func LoadFile(path string) (Data, error) {
	raw, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return Data{}, fmt.Errorf("read seed %s: %w", path, err)
	}
	return Parse(raw)
}

// Parse decodes and validates seed YAML.
func Parse(raw []byte) (Data, error) {
	var f fileRow
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return Data{}, fmt.Errorf("parse seed: %w", err)
	}

	out := Data{
		Categories:    make([]category.Category, 0, len(f.Categories)),
		Professionals: make([]professional.Professional, 0, len(f.Professionals)),
	}

	seenCat := make(map[int]bool, len(f.Categories))
	for i, row := range f.Categories {
		c, err := category.New(row.ID, row.Name, row.Icon, row.Color)
		if err != nil {
			return Data{}, fmt.Errorf("categories[%d]: %w", i, err)
		}
		if seenCat[row.ID] {
			return Data{}, fmt.Errorf("categories[%d]: duplicate id %d", i, row.ID)
		}
		seenCat[row.ID] = true
		out.Categories = append(out.Categories, c)
	}

	seenPro := make(map[string]bool, len(f.Professionals))
	for i, row := range f.Professionals {
		attrs := professional.Attrs{
			Name:       row.Name,
			Profession: row.Profession,
			Rating:     row.Rating,
			Reviews:    row.Reviews,
			Price:      row.Price,
			Distance:   row.Distance,
			Verified:   row.Verified,
			Services:   row.Services,
			ImageURL:   row.Image,
		}
		if (row.Lat == nil) != (row.Lon == nil) {
			return Data{}, fmt.Errorf("professionals[%d]: lat and lon must be set together", i)
		}
		if row.Lat != nil {
			attrs.Location = &geo.Point{Lat: *row.Lat, Lon: *row.Lon}
		}
		p, err := professional.New(row.ID, attrs)
		if err != nil {
			return Data{}, fmt.Errorf("professionals[%d]: %w", i, err)
		}
		if seenPro[p.ID()] {
			return Data{}, fmt.Errorf("professionals[%d]: duplicate id %q", i, p.ID())
		}
		seenPro[p.ID()] = true
		out.Professionals = append(out.Professionals, p)
	}

	return out, nil
}

// target is the consumer interface for seeding a directory.
type target interface {
	PutAll(ctx context.Context, cats []category.Category, pros []professional.Professional) error
	ListProfessionals(ctx context.Context) ([]professional.Professional, error)
	ListCategories(ctx context.Context) ([]category.Category, error)
}

// Apply writes d into t when t holds no professionals and no categories.
// It reports whether anything was written.
func Apply(ctx context.Context, t target, d Data) (bool, error) {
	pros, err := t.ListProfessionals(ctx)
	if err != nil {
		return false, fmt.Errorf("list professionals: %w", err)
	}
	cats, err := t.ListCategories(ctx)
	if err != nil {
		return false, fmt.Errorf("list categories: %w", err)
	}
	if len(pros) > 0 || len(cats) > 0 {
		return false, nil
	}

	if len(d.Categories) == 0 && len(d.Professionals) == 0 {
		return false, nil
	}
	if err := t.PutAll(ctx, d.Categories, d.Professionals); err != nil {
		return false, fmt.Errorf("seed directory: %w", err)
	}
	return true, nil
}

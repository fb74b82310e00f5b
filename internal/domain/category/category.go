package category

import (
	"fmt"
	"strings"
)

// Category is a service category. Icon and color are presentation-only.
type Category struct {
	id    int
	name  string
	icon  string
	color string
}

// New validates and creates a Category.
func New(id int, name, icon, color string) (Category, error) {
	if id <= 0 {
		return Category{}, fmt.Errorf("id must be positive, got %d", id)
	}
	if strings.TrimSpace(name) == "" {
		return Category{}, fmt.Errorf("name is required")
	}
	return Reconstruct(id, name, icon, color), nil
}

// Reconstruct hydrates a Category from storage without validation.
func Reconstruct(id int, name, icon, color string) Category {
	return Category{id: id, name: name, icon: icon, color: color}
}

// ID returns the category id.
func (c Category) ID() int { return c.id }

// Name returns the display name.
func (c Category) Name() string { return c.name }

// Icon returns the icon identifier.
func (c Category) Icon() string { return c.icon }

// Color returns the display color.
func (c Category) Color() string { return c.color }

// Find returns the first category with the given id.
func Find(categories []Category, id int) (Category, bool) {
	for _, c := range categories {
		if c.id == id {
			return c, true
		}
	}
	return Category{}, false
}

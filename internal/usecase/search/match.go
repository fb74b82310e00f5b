package search

import (
	"strings"

	"github.com/kailas-cloud/fixerhub/internal/domain/category"
	"github.com/kailas-cloud/fixerhub/internal/domain/professional"
	"github.com/kailas-cloud/fixerhub/internal/domain/search/constraint"
)

// Match filters directory by free text, category and constraints, in that order.
// The result keeps directory order, never aliases it and is never nil.
//
// Text is matched case-insensitively as a substring of name, profession or any
// service label; empty text matches everything. A category id that does not
// resolve in categories disables the category filter.
func Match(
	directory []professional.Professional,
	categories []category.Category,
	text string,
	categoryID *int,
	constraints constraint.Set,
) []professional.Professional {
	needle := strings.ToLower(text)

	var catName string
	filterCategory := false
	if categoryID != nil {
		if c, ok := category.Find(categories, *categoryID); ok {
			catName = strings.ToLower(c.Name())
			filterCategory = true
		}
	}

	out := make([]professional.Professional, 0, len(directory))
	for _, p := range directory {
		if needle != "" && !matchesText(p, needle) {
			continue
		}
		if filterCategory && !strings.Contains(strings.ToLower(p.Profession()), catName) {
			continue
		}
		if !constraints.Allows(p) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchesText(p professional.Professional, needle string) bool {
	return strings.Contains(strings.ToLower(p.Name()), needle) ||
		strings.Contains(strings.ToLower(p.Profession()), needle) ||
		p.HasService(needle)
}

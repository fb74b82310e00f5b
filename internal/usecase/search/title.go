package search

import (
	"github.com/kailas-cloud/fixerhub/internal/domain/category"
	"github.com/kailas-cloud/fixerhub/internal/domain/search/query"
)

// DefaultTitle heads results when neither a category nor text is set.
const DefaultTitle = "Top Professionals Near You"

// Title returns the results header for q. A resolved category wins over text.
func Title(q query.Query, categories []category.Category) string {
	if id := q.CategoryID(); id != nil {
		if c, ok := category.Find(categories, *id); ok {
			return c.Name() + " Professionals"
		}
	}
	if q.Text() != "" {
		return `Results for "` + q.Text() + `"`
	}
	return DefaultTitle
}

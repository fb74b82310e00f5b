package query

import (
	"github.com/kailas-cloud/fixerhub/internal/domain/geo"
	"github.com/kailas-cloud/fixerhub/internal/domain/search/constraint"
)

// Query is a search request: free text, optional category, constraints and searcher position.
type Query struct {
	text        string
	categoryID  *int
	constraints constraint.Set
	position    *geo.Point
}

// New creates a query for text with no category and default constraints.
// The text is kept as is.
func New(text string) Query {
	return Query{text: text, constraints: constraint.Default()}
}

// WithCategory returns a copy filtered by category id.
func (q Query) WithCategory(id int) Query {
	q.categoryID = &id
	return q
}

// WithoutCategory returns a copy with the category cleared.
func (q Query) WithoutCategory() Query {
	q.categoryID = nil
	return q
}

// WithConstraints returns a copy with the given bounds.
func (q Query) WithConstraints(c constraint.Set) Query {
	q.constraints = c
	return q
}

// Near returns a copy carrying the searcher position.
func (q Query) Near(lat, lon float64) Query {
	q.position = &geo.Point{Lat: lat, Lon: lon}
	return q
}

// Text returns the raw query text.
func (q Query) Text() string { return q.text }

// CategoryID returns the category id, nil when unset.
func (q Query) CategoryID() *int {
	if q.categoryID == nil {
		return nil
	}
	id := *q.categoryID
	return &id
}

// Constraints returns the bounds.
func (q Query) Constraints() constraint.Set { return q.constraints }

// Position returns the searcher position, nil when unset.
func (q Query) Position() *geo.Point {
	if q.position == nil {
		return nil
	}
	p := *q.position
	return &p
}

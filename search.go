package fixerhub

import (
	"context"
	"fmt"
	"time"

	"github.com/kailas-cloud/fixerhub/internal/domain/geo"
	"github.com/kailas-cloud/fixerhub/internal/domain/search/constraint"
	"github.com/kailas-cloud/fixerhub/internal/domain/search/query"
)

// SearchBuilder is a fluent builder for directory searches.
// Every modifier is optional; the zero builder lists the whole directory.
type SearchBuilder struct {
	svc searchUseCase
	obs *observer

	text        string
	categoryID  *int
	constraints constraint.Set
	near        *geo.Point
}

func newSearchBuilder(svc searchUseCase, obs *observer) *SearchBuilder {
	return &SearchBuilder{svc: svc, obs: obs, constraints: constraint.Default()}
}

// Query keeps professionals whose name, profession or any service contains text (case-insensitive).
func (b *SearchBuilder) Query(text string) *SearchBuilder {
	b.text = text
	return b
}

// Category keeps professionals whose profession contains the category name.
// Unknown ids are ignored.
func (b *SearchBuilder) Category(id int) *SearchBuilder {
	b.categoryID = &id
	return b
}

// MaxDistance keeps professionals at most miles away.
func (b *SearchBuilder) MaxDistance(miles float64) *SearchBuilder {
	b.constraints = b.constraints.WithMaxDistance(miles)
	return b
}

// MinRating keeps professionals rated at least r.
func (b *SearchBuilder) MinRating(r float64) *SearchBuilder {
	b.constraints = b.constraints.WithMinRating(r)
	return b
}

// MaxPrice keeps professionals charging at most price per hour.
func (b *SearchBuilder) MaxPrice(price float64) *SearchBuilder {
	b.constraints = b.constraints.WithMaxPrice(price)
	return b
}

// VerifiedOnly keeps verified professionals only.
func (b *SearchBuilder) VerifiedOnly() *SearchBuilder {
	b.constraints = b.constraints.WithVerifiedOnly(true)
	return b
}

// Near derives distances from the searcher's position for professionals with coordinates.
func (b *SearchBuilder) Near(lat, lon float64) *SearchBuilder {
	b.near = &geo.Point{Lat: lat, Lon: lon}
	return b
}

// Do runs the search.
func (b *SearchBuilder) Do(ctx context.Context) (res SearchResult, err error) {
	start := time.Now()
	defer func() { b.obs.observe("search", start, err) }()

	q, err := b.build()
	if err != nil {
		return SearchResult{}, fmt.Errorf("search: %w", err)
	}

	found, err := b.svc.Search(ctx, q)
	if err != nil {
		return SearchResult{}, fmt.Errorf("search: %w", err)
	}
	return SearchResult{
		Title:         found.Title,
		Professionals: fromInternalProfessionals(found.Professionals),
	}, nil
}

func (b *SearchBuilder) build() (query.Query, error) {
	q := query.New(b.text).WithConstraints(b.constraints)
	if b.categoryID != nil {
		q = q.WithCategory(*b.categoryID)
	}
	if b.near != nil {
		p, err := geo.NewPoint(b.near.Lat, b.near.Lon)
		if err != nil {
			return query.Query{}, fmt.Errorf("%w: %w", ErrValidation, err)
		}
		q = q.Near(p.Lat, p.Lon)
	}
	return q, nil
}

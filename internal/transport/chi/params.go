package chi

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/oapi-codegen/runtime"

	"github.com/kailas-cloud/fixerhub/internal/domain/geo"
	"github.com/kailas-cloud/fixerhub/internal/domain/search/constraint"
	"github.com/kailas-cloud/fixerhub/internal/domain/search/query"
)

// SearchParams are the optional query parameters of GET /professionals/search.
type SearchParams struct {
	Q            *string
	Category     *int
	MaxDistance  *float64
	MinRating    *float64
	MaxPrice     *float64
	VerifiedOnly *bool
	Lat          *float64
	Lon          *float64
}

func bindSearchParams(values url.Values) (SearchParams, error) {
	var p SearchParams
	bindings := []struct {
		name string
		dest any
	}{
		{"q", &p.Q},
		{"category", &p.Category},
		{"max_distance", &p.MaxDistance},
		{"min_rating", &p.MinRating},
		{"max_price", &p.MaxPrice},
		{"verified_only", &p.VerifiedOnly},
		{"lat", &p.Lat},
		{"lon", &p.Lon},
	}
	for _, b := range bindings {
		if err := runtime.BindQueryParameter("form", true, false, b.name, values, b.dest); err != nil {
			return SearchParams{}, fmt.Errorf("invalid format for parameter %s: %w", b.name, err)
		}
	}
	return p, nil
}

// toQuery builds the matcher query. Constraint values pass through unchecked;
// only the searcher position is validated.
func (p SearchParams) toQuery() (query.Query, error) {
	text := ""
	if p.Q != nil {
		text = *p.Q
	}
	q := query.New(text)

	if p.Category != nil {
		q = q.WithCategory(*p.Category)
	}

	c := constraint.Default()
	if p.MaxDistance != nil {
		c = c.WithMaxDistance(*p.MaxDistance)
	}
	if p.MinRating != nil {
		c = c.WithMinRating(*p.MinRating)
	}
	if p.MaxPrice != nil {
		c = c.WithMaxPrice(*p.MaxPrice)
	}
	if p.VerifiedOnly != nil {
		c = c.WithVerifiedOnly(*p.VerifiedOnly)
	}
	q = q.WithConstraints(c)

	switch {
	case p.Lat == nil && p.Lon == nil:
	case p.Lat == nil || p.Lon == nil:
		return query.Query{}, errors.New("lat and lon must be given together")
	default:
		if !geo.ValidateCoordinates(*p.Lat, *p.Lon) {
			return query.Query{}, fmt.Errorf("coordinates out of range: lat=%v lon=%v", *p.Lat, *p.Lon)
		}
		q = q.Near(*p.Lat, *p.Lon)
	}

	return q, nil
}

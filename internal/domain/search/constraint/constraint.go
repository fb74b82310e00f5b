package constraint

import (
	"math"

	"github.com/kailas-cloud/fixerhub/internal/domain/professional"
)

// Set is the user-chosen filter bounds applied after text and category matching.
// Any float is accepted; NaN bounds reject every record.
type Set struct {
	maxDistance  float64
	minRating    float64
	maxPrice     float64
	verifiedOnly bool
}

// Default returns the identity set: it allows every professional.
func Default() Set {
	return Set{
		maxDistance: math.Inf(1),
		minRating:   0,
		maxPrice:    math.Inf(1),
	}
}

// WithMaxDistance returns a copy with the distance bound in miles.
func (s Set) WithMaxDistance(miles float64) Set {
	s.maxDistance = miles
	return s
}

// WithMinRating returns a copy with the rating floor.
func (s Set) WithMinRating(r float64) Set {
	s.minRating = r
	return s
}

// WithMaxPrice returns a copy with the hourly price ceiling.
func (s Set) WithMaxPrice(p float64) Set {
	s.maxPrice = p
	return s
}

// WithVerifiedOnly returns a copy with the verified flag.
func (s Set) WithVerifiedOnly(v bool) Set {
	s.verifiedOnly = v
	return s
}

// MaxDistance returns the distance bound.
func (s Set) MaxDistance() float64 { return s.maxDistance }

// MinRating returns the rating floor.
func (s Set) MinRating() float64 { return s.minRating }

// MaxPrice returns the price ceiling.
func (s Set) MaxPrice() float64 { return s.maxPrice }

// VerifiedOnly reports whether unverified professionals are excluded.
func (s Set) VerifiedOnly() bool { return s.verifiedOnly }

// Allows reports whether p satisfies every bound.
func (s Set) Allows(p professional.Professional) bool {
	return p.Distance() <= s.maxDistance &&
		p.Rating() >= s.minRating &&
		p.Price() <= s.maxPrice &&
		(!s.verifiedOnly || p.Verified())
}

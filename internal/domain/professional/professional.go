package professional

import (
	"fmt"
	"strings"

	"github.com/kailas-cloud/fixerhub/internal/domain/geo"
)

// Listing limits.
const (
	MaxRating   = 5.0
	MaxServices = 32
	MaxIDLength = 128
)

// Professional is a listed service professional. Immutable for the duration of a query.
type Professional struct {
	id         string
	name       string
	profession string
	rating     float64
	reviews    int
	price      float64
	distance   float64
	verified   bool
	services   []string
	imageURL   string
	location   *geo.Point
}

// Attrs groups the mutable-on-write attributes of a professional.
type Attrs struct {
	Name       string
	Profession string
	Rating     float64
	Reviews    int
	Price      float64
	Distance   float64
	Verified   bool
	Services   []string
	ImageURL   string
	Location   *geo.Point
}

// New validates attributes and creates a Professional.
func New(id string, a Attrs) (Professional, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Professional{}, fmt.Errorf("id is required")
	}
	if len(id) > MaxIDLength {
		return Professional{}, fmt.Errorf("id too long (max %d chars)", MaxIDLength)
	}
	if strings.TrimSpace(a.Name) == "" {
		return Professional{}, fmt.Errorf("name is required")
	}
	if a.Rating < 0 || a.Rating > MaxRating {
		return Professional{}, fmt.Errorf("rating must be between 0 and %g", MaxRating)
	}
	if a.Reviews < 0 {
		return Professional{}, fmt.Errorf("reviews must not be negative")
	}
	if a.Price < 0 {
		return Professional{}, fmt.Errorf("price must not be negative")
	}
	if a.Distance < 0 {
		return Professional{}, fmt.Errorf("distance must not be negative")
	}
	if len(a.Services) > MaxServices {
		return Professional{}, fmt.Errorf("too many services (max %d)", MaxServices)
	}
	for i, s := range a.Services {
		if strings.TrimSpace(s) == "" {
			return Professional{}, fmt.Errorf("services[%d] is empty", i)
		}
	}
	if a.Location != nil && !geo.ValidateCoordinates(a.Location.Lat, a.Location.Lon) {
		return Professional{}, fmt.Errorf("location coordinates out of range")
	}
	return Reconstruct(id, a), nil
}

// Reconstruct hydrates a Professional from storage without validation.
func Reconstruct(id string, a Attrs) Professional {
	p := Professional{
		id:         id,
		name:       a.Name,
		profession: a.Profession,
		rating:     a.Rating,
		reviews:    a.Reviews,
		price:      a.Price,
		distance:   a.Distance,
		verified:   a.Verified,
		services:   append([]string(nil), a.Services...),
		imageURL:   a.ImageURL,
	}
	if a.Location != nil {
		loc := *a.Location
		p.location = &loc
	}
	return p
}

// ID returns the opaque identifier.
func (p Professional) ID() string { return p.id }

// Name returns the display name.
func (p Professional) Name() string { return p.name }

// Profession returns the profession label.
func (p Professional) Profession() string { return p.profession }

// Rating returns the average rating (0..5).
func (p Professional) Rating() float64 { return p.rating }

// Reviews returns the review count.
func (p Professional) Reviews() int { return p.reviews }

// Price returns the hourly price.
func (p Professional) Price() float64 { return p.price }

// Distance returns the distance from the searcher in miles.
func (p Professional) Distance() float64 { return p.distance }

// Verified reports whether the professional passed document verification.
func (p Professional) Verified() bool { return p.verified }

// Services returns a copy of the offered-service labels in listing order.
func (p Professional) Services() []string {
	return append([]string(nil), p.services...)
}

// ImageURL returns the avatar URL (presentation only).
func (p Professional) ImageURL() string { return p.imageURL }

// Location returns the work location, nil if unknown.
func (p Professional) Location() *geo.Point {
	if p.location == nil {
		return nil
	}
	loc := *p.location
	return &loc
}

// Attrs returns the attributes, suitable for Reconstruct or New.
func (p Professional) Attrs() Attrs {
	return Attrs{
		Name:       p.name,
		Profession: p.profession,
		Rating:     p.rating,
		Reviews:    p.reviews,
		Price:      p.price,
		Distance:   p.distance,
		Verified:   p.verified,
		Services:   p.Services(),
		ImageURL:   p.imageURL,
		Location:   p.Location(),
	}
}

// WithDistance returns a copy with a different distance from the searcher.
func (p Professional) WithDistance(miles float64) Professional {
	p.distance = miles
	return p
}

// HasService reports whether any offered-service label contains sub (both lower-cased).
// sub must already be lower-cased.
func (p Professional) HasService(sub string) bool {
	for _, s := range p.services {
		if strings.Contains(strings.ToLower(s), sub) {
			return true
		}
	}
	return false
}

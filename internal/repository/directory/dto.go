package directory

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/kailas-cloud/fixerhub/internal/domain/category"
	"github.com/kailas-cloud/fixerhub/internal/domain/geo"
	"github.com/kailas-cloud/fixerhub/internal/domain/professional"
)

// Hash field names.
const (
	fieldID         = "id"
	fieldName       = "name"
	fieldProfession = "profession"
	fieldRating     = "rating"
	fieldReviews    = "reviews"
	fieldPrice      = "price"
	fieldDistance   = "distance"
	fieldVerified   = "verified"
	fieldServices   = "services_json"
	fieldImageURL   = "image_url"
	fieldLat        = "lat"
	fieldLon        = "lon"
	fieldSeq        = "seq"
	fieldIcon       = "icon"
	fieldColor      = "color"
)

func formatFloat(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }

// professionalToHash converts a Professional to HSET fields.
func professionalToHash(p professional.Professional, seq int64) (map[string]string, error) {
	servicesJSON, err := json.Marshal(p.Services())
	if err != nil {
		return nil, fmt.Errorf("marshal services: %w", err)
	}
	m := map[string]string{
		fieldID:         p.ID(),
		fieldName:       p.Name(),
		fieldProfession: p.Profession(),
		fieldRating:     formatFloat(p.Rating()),
		fieldReviews:    strconv.Itoa(p.Reviews()),
		fieldPrice:      formatFloat(p.Price()),
		fieldDistance:   formatFloat(p.Distance()),
		fieldVerified:   strconv.FormatBool(p.Verified()),
		fieldServices:   string(servicesJSON),
		fieldImageURL:   p.ImageURL(),
		fieldSeq:        strconv.FormatInt(seq, 10),
		fieldLat:        "",
		fieldLon:        "",
	}
	if loc := p.Location(); loc != nil {
		m[fieldLat] = formatFloat(loc.Lat)
		m[fieldLon] = formatFloat(loc.Lon)
	}
	return m, nil
}

// professionalFromHash hydrates a Professional from an HGETALL result map.
func professionalFromHash(m map[string]string) (professional.Professional, int64, error) {
	var (
		a   professional.Attrs
		err error
	)
	a.Name = m[fieldName]
	a.Profession = m[fieldProfession]
	a.ImageURL = m[fieldImageURL]

	if a.Rating, err = parseFloat(m, fieldRating); err != nil {
		return professional.Professional{}, 0, err
	}
	if a.Price, err = parseFloat(m, fieldPrice); err != nil {
		return professional.Professional{}, 0, err
	}
	if a.Distance, err = parseFloat(m, fieldDistance); err != nil {
		return professional.Professional{}, 0, err
	}
	if v := m[fieldReviews]; v != "" {
		if a.Reviews, err = strconv.Atoi(v); err != nil {
			return professional.Professional{}, 0, fmt.Errorf("invalid %s: %w", fieldReviews, err)
		}
	}
	if v := m[fieldVerified]; v != "" {
		if a.Verified, err = strconv.ParseBool(v); err != nil {
			return professional.Professional{}, 0, fmt.Errorf("invalid %s: %w", fieldVerified, err)
		}
	}
	if v := m[fieldServices]; v != "" {
		if err := json.Unmarshal([]byte(v), &a.Services); err != nil {
			return professional.Professional{}, 0, fmt.Errorf("unmarshal services: %w", err)
		}
	}
	if m[fieldLat] != "" && m[fieldLon] != "" {
		lat, err := parseFloat(m, fieldLat)
		if err != nil {
			return professional.Professional{}, 0, err
		}
		lon, err := parseFloat(m, fieldLon)
		if err != nil {
			return professional.Professional{}, 0, err
		}
		a.Location = &geo.Point{Lat: lat, Lon: lon}
	}

	var seq int64
	if v := m[fieldSeq]; v != "" {
		if seq, err = strconv.ParseInt(v, 10, 64); err != nil {
			return professional.Professional{}, 0, fmt.Errorf("invalid %s: %w", fieldSeq, err)
		}
	}

	return professional.Reconstruct(m[fieldID], a), seq, nil
}

func parseFloat(m map[string]string, field string) (float64, error) {
	v := m[field]
	if v == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", field, err)
	}
	return f, nil
}

func categoryToHash(c category.Category) map[string]string {
	return map[string]string{
		fieldID:    strconv.Itoa(c.ID()),
		fieldName:  c.Name(),
		fieldIcon:  c.Icon(),
		fieldColor: c.Color(),
	}
}

func categoryFromHash(m map[string]string) (category.Category, error) {
	id, err := strconv.Atoi(m[fieldID])
	if err != nil {
		return category.Category{}, fmt.Errorf("invalid %s: %w", fieldID, err)
	}
	return category.Reconstruct(id, m[fieldName], m[fieldIcon], m[fieldColor]), nil
}

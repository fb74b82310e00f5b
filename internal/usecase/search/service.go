package search

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kailas-cloud/fixerhub/internal/domain/category"
	"github.com/kailas-cloud/fixerhub/internal/domain/geo"
	"github.com/kailas-cloud/fixerhub/internal/domain/professional"
	"github.com/kailas-cloud/fixerhub/internal/domain/search/query"
	"github.com/kailas-cloud/fixerhub/internal/logger"
	"github.com/kailas-cloud/fixerhub/internal/metrics"
)

// Result is a matched page of professionals with its header.
type Result struct {
	Title         string
	Professionals []professional.Professional
}

// Service runs searches against a fresh directory snapshot.
type Service struct {
	dir DirectoryReader
}

// New creates a search service.
func New(dir DirectoryReader) *Service {
	return &Service{dir: dir}
}

// Search loads the directory, derives distances from the query position and matches.
func (s *Service) Search(ctx context.Context, q query.Query) (Result, error) {
	pros, cats, err := s.dir.Snapshot(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("load directory: %w", err)
	}

	if pos := q.Position(); pos != nil {
		pros = withDistances(pros, pos.Lat, pos.Lon)
	}

	matched := Match(pros, cats, q.Text(), q.CategoryID(), q.Constraints())

	metrics.SearchRequestsTotal.WithLabelValues(kind(q, cats)).Inc()
	metrics.SearchResults.Observe(float64(len(matched)))

	logger.FromContext(ctx).Debug("search",
		zap.String("text", q.Text()),
		zap.Int("directory", len(pros)),
		zap.Int("matched", len(matched)),
	)

	return Result{Title: Title(q, cats), Professionals: matched}, nil
}

// withDistances replaces stored distances for records with coordinates.
func withDistances(pros []professional.Professional, lat, lon float64) []professional.Professional {
	out := make([]professional.Professional, len(pros))
	for i, p := range pros {
		if loc := p.Location(); loc != nil {
			p = p.WithDistance(loc.MilesTo(geo.Point{Lat: lat, Lon: lon}))
		}
		out[i] = p
	}
	return out
}

func kind(q query.Query, cats []category.Category) string {
	if id := q.CategoryID(); id != nil {
		if _, ok := category.Find(cats, *id); ok {
			return metrics.SearchKindCategory
		}
	}
	if q.Text() != "" {
		return metrics.SearchKindText
	}
	return metrics.SearchKindBrowse
}

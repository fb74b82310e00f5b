package directory

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kailas-cloud/fixerhub/internal/domain"
	"github.com/kailas-cloud/fixerhub/internal/domain/category"
	"github.com/kailas-cloud/fixerhub/internal/domain/professional"
	"github.com/kailas-cloud/fixerhub/internal/logger"
)

// Service manages professional listings and categories.
type Service struct {
	repo Repository
}

// New creates a directory service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// PutProfessional validates and stores a listing. It reports whether the listing is new.
func (s *Service) PutProfessional(
	ctx context.Context, id string, attrs professional.Attrs,
) (professional.Professional, bool, error) {
	p, err := professional.New(id, attrs)
	if err != nil {
		return professional.Professional{}, false, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}
	created, err := s.repo.PutProfessional(ctx, p)
	if err != nil {
		return professional.Professional{}, false, fmt.Errorf("put professional: %w", err)
	}
	logger.FromContext(ctx).Debug("professional stored",
		zap.String("professional_id", p.ID()), zap.Bool("created", created))
	return p, created, nil
}

// GetProfessional returns a listing by id.
func (s *Service) GetProfessional(ctx context.Context, id string) (professional.Professional, error) {
	p, err := s.repo.GetProfessional(ctx, id)
	if err != nil {
		return professional.Professional{}, fmt.Errorf("get professional: %w", err)
	}
	return p, nil
}

// DeleteProfessional removes a listing.
func (s *Service) DeleteProfessional(ctx context.Context, id string) error {
	if err := s.repo.DeleteProfessional(ctx, id); err != nil {
		return fmt.Errorf("delete professional: %w", err)
	}
	return nil
}

// ListProfessionals returns all listings in insertion order.
func (s *Service) ListProfessionals(ctx context.Context) ([]professional.Professional, error) {
	pros, err := s.repo.ListProfessionals(ctx)
	if err != nil {
		return nil, fmt.Errorf("list professionals: %w", err)
	}
	return pros, nil
}

// PutCategory validates and stores a category. It reports whether the category is new.
func (s *Service) PutCategory(
	ctx context.Context, id int, name, icon, color string,
) (category.Category, bool, error) {
	c, err := category.New(id, name, icon, color)
	if err != nil {
		return category.Category{}, false, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}
	created, err := s.repo.PutCategory(ctx, c)
	if err != nil {
		return category.Category{}, false, fmt.Errorf("put category: %w", err)
	}
	return c, created, nil
}

// ListCategories returns all categories ordered by id.
func (s *Service) ListCategories(ctx context.Context) ([]category.Category, error) {
	cats, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return cats, nil
}

// Snapshot returns the full directory for one search.
func (s *Service) Snapshot(ctx context.Context) ([]professional.Professional, []category.Category, error) {
	pros, err := s.ListProfessionals(ctx)
	if err != nil {
		return nil, nil, err
	}
	cats, err := s.ListCategories(ctx)
	if err != nil {
		return nil, nil, err
	}
	return pros, cats, nil
}

package fixerhub

import (
	"context"
	"fmt"
	"time"
)

// DirectoryService manages professionals and categories.
type DirectoryService struct {
	svc directoryUseCase
	obs *observer
}

// PutProfessional creates or replaces a listing. Returns true if created.
func (s *DirectoryService) PutProfessional(ctx context.Context, p Professional) (created bool, err error) {
	start := time.Now()
	defer func() { s.obs.observe("put_professional", start, err) }()

	_, created, err = s.svc.PutProfessional(ctx, p.ID, toInternalAttrs(p))
	if err != nil {
		return false, fmt.Errorf("put professional: %w", err)
	}
	return created, nil
}

// GetProfessional retrieves a listing by ID.
func (s *DirectoryService) GetProfessional(ctx context.Context, id string) (Professional, error) {
	p, err := s.svc.GetProfessional(ctx, id)
	if err != nil {
		return Professional{}, fmt.Errorf("get professional: %w", err)
	}
	return fromInternalProfessional(p), nil
}

// DeleteProfessional removes a listing by ID.
func (s *DirectoryService) DeleteProfessional(ctx context.Context, id string) (err error) {
	start := time.Now()
	defer func() { s.obs.observe("delete_professional", start, err) }()

	if err = s.svc.DeleteProfessional(ctx, id); err != nil {
		return fmt.Errorf("delete professional: %w", err)
	}
	return nil
}

// ListProfessionals returns all listings in insertion order.
func (s *DirectoryService) ListProfessionals(ctx context.Context) ([]Professional, error) {
	pros, err := s.svc.ListProfessionals(ctx)
	if err != nil {
		return nil, fmt.Errorf("list professionals: %w", err)
	}
	return fromInternalProfessionals(pros), nil
}

// PutCategory creates or replaces a category. Returns true if created.
func (s *DirectoryService) PutCategory(ctx context.Context, c Category) (created bool, err error) {
	start := time.Now()
	defer func() { s.obs.observe("put_category", start, err) }()

	_, created, err = s.svc.PutCategory(ctx, c.ID, c.Name, c.Icon, c.Color)
	if err != nil {
		return false, fmt.Errorf("put category: %w", err)
	}
	return created, nil
}

// ListCategories returns all categories ordered by ID.
func (s *DirectoryService) ListCategories(ctx context.Context) ([]Category, error) {
	cats, err := s.svc.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	out := make([]Category, len(cats))
	for i, c := range cats {
		out[i] = fromInternalCategory(c)
	}
	return out, nil
}

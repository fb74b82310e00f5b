package directory

import (
	"context"

	"github.com/kailas-cloud/fixerhub/internal/domain/category"
	"github.com/kailas-cloud/fixerhub/internal/domain/professional"
)

// Repository defines the storage contract for the directory.
type Repository interface {
	PutProfessional(ctx context.Context, p professional.Professional) (bool, error)
	GetProfessional(ctx context.Context, id string) (professional.Professional, error)
	DeleteProfessional(ctx context.Context, id string) error
	ListProfessionals(ctx context.Context) ([]professional.Professional, error)
	PutCategory(ctx context.Context, c category.Category) (bool, error)
	ListCategories(ctx context.Context) ([]category.Category, error)
}

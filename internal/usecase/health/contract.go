package health

import (
	"context"

	"github.com/kailas-cloud/fixerhub/internal/domain/category"
)

// DBPinger checks database availability.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// CategoryLister reads categories to confirm the directory is loaded.
type CategoryLister interface {
	ListCategories(ctx context.Context) ([]category.Category, error)
}

package search

import (
	"context"

	"github.com/kailas-cloud/fixerhub/internal/domain/category"
	"github.com/kailas-cloud/fixerhub/internal/domain/professional"
)

// DirectoryReader loads the current directory snapshot.
type DirectoryReader interface {
	Snapshot(ctx context.Context) ([]professional.Professional, []category.Category, error)
}

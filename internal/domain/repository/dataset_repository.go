package repository

import (
	"context"

	"github.com/diillson/budget-dashboard-go/internal/domain/entity"
)

// DatasetRepository loads the snapshot of every dataset the charts are built from.
type DatasetRepository interface {
	LoadDatasets(ctx context.Context) (entity.Datasets, error)
	// Describe names the location the datasets come from, for log messages.
	Describe() string
}

package dataset

import (
	"context"
	"fmt"
	"os"

	"github.com/diillson/budget-dashboard-go/internal/domain/entity"
	"github.com/diillson/budget-dashboard-go/internal/domain/repository"
)

// FileRepository reads the datasets from a local JSON file.
type FileRepository struct {
	path string
}

// NewFileRepository cria um repositório que lê o arquivo em path.
func NewFileRepository(path string) repository.DatasetRepository {
	return &FileRepository{path: path}
}

func (r *FileRepository) LoadDatasets(ctx context.Context) (entity.Datasets, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("error opening data file: %w", err)
	}
	defer file.Close()

	datasets, err := Decode(file)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", r.path, err)
	}
	return datasets, nil
}

func (r *FileRepository) Describe() string {
	return r.path
}

package dataset

import (
	"fmt"
	"strings"

	awscost "github.com/diillson/budget-dashboard-go/internal/adapter/driven/aws"
	"github.com/diillson/budget-dashboard-go/internal/domain/repository"
	"github.com/diillson/budget-dashboard-go/internal/shared/types"
)

// Tipos de origem aceitos em --source.
const (
	SourceFile = "file"
	SourceHTTP = "http"
	SourceS3   = "s3"
	SourceAWS  = "aws"
)

// SourceFactory implementa repository.DatasetSourceFactory.
type SourceFactory struct{}

// NewSourceFactory cria a fábrica de origens de dados.
func NewSourceFactory() repository.DatasetSourceFactory {
	return &SourceFactory{}
}

// InferSource picks the source kind from the location when none was given.
func InferSource(location string) string {
	lower := strings.ToLower(location)
	switch {
	case strings.HasPrefix(lower, "http://"), strings.HasPrefix(lower, "https://"):
		return SourceHTTP
	case strings.HasPrefix(lower, "s3://"):
		return SourceS3
	default:
		return SourceFile
	}
}

// NewDatasetRepository builds the repository for source. The aws source ignores location.
func (f *SourceFactory) NewDatasetRepository(source, location, profile string) (repository.DatasetRepository, error) {
	source = strings.ToLower(strings.TrimSpace(source))
	if source == "" {
		source = InferSource(location)
	}

	if source != SourceAWS && location == "" {
		return nil, types.ErrNoDataSource
	}

	switch source {
	case SourceFile:
		return NewFileRepository(location), nil
	case SourceHTTP:
		return NewHTTPRepository(location, nil), nil
	case SourceS3:
		return NewS3Repository(location, profile, nil)
	case SourceAWS:
		return awscost.NewCostRepository(profile, nil), nil
	default:
		return nil, fmt.Errorf("%w: %s", types.ErrUnsupportedSource, source)
	}
}

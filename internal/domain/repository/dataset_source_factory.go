package repository

// DatasetSourceFactory builds the DatasetRepository for a source kind ("file", "http", "s3"
// or "aws"). An empty kind is inferred from the location.
type DatasetSourceFactory interface {
	NewDatasetRepository(source, location, profile string) (DatasetRepository, error)
}

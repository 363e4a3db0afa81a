package types

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrDatasetNotFound   = errors.New("dataset not found in data source")
	ErrNoDataSource      = errors.New("no data source configured. Use --data or set BUDGET_DATA_PATH")
	ErrUnsupportedSource = errors.New("unsupported data source")
	ErrInvalidPayload    = errors.New("data payload is not a JSON object of dataset arrays")
	ErrUnknownPage       = errors.New("unknown dashboard page")
	ErrDatasetSkipped    = errors.New("dataset skipped")
)

// MissingDatasetError names the dataset keys absent from the payload.
type MissingDatasetError struct {
	Keys []string
}

func (e *MissingDatasetError) Error() string {
	return fmt.Sprintf("%s: %s", ErrDatasetNotFound, strings.Join(e.Keys, ", "))
}

func (e *MissingDatasetError) Unwrap() error {
	return ErrDatasetNotFound
}

// SkippedDatasetError reports a dataset the source could not fetch while the others loaded.
// It is returned together with the partial datasets.
type SkippedDatasetError struct {
	Dataset string
	Err     error
}

func (e *SkippedDatasetError) Error() string {
	return fmt.Sprintf("%s %s: %v", ErrDatasetSkipped, e.Dataset, e.Err)
}

func (e *SkippedDatasetError) Unwrap() []error {
	return []error{ErrDatasetSkipped, e.Err}
}

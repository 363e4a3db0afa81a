package dataset

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/diillson/budget-dashboard-go/internal/domain/entity"
	"github.com/diillson/budget-dashboard-go/internal/domain/repository"
)

const defaultHTTPTimeout = 15 * time.Second

// HTTPRepository fetches the data file from a URL, like the dashboard page does.
type HTTPRepository struct {
	url    string
	client *http.Client
}

// NewHTTPRepository creates an HTTP source. A nil client gets a client with a default timeout.
func NewHTTPRepository(url string, client *http.Client) repository.DatasetRepository {
	if client == nil {
		client = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &HTTPRepository{url: url, client: client}
}

func (r *HTTPRepository) LoadDatasets(ctx context.Context) (entity.Datasets, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.url, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request for %s: %w", r.url, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error fetching %s: %w", r.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("error fetching %s: unexpected status %s", r.url, resp.Status)
	}

	datasets, err := Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", r.url, err)
	}
	return datasets, nil
}

func (r *HTTPRepository) Describe() string {
	return r.url
}

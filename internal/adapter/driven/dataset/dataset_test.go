package dataset

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/diillson/budget-dashboard-go/internal/domain/entity"
	"github.com/diillson/budget-dashboard-go/internal/shared/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const payload = `{
  "FY26_Expense": [
    {"expenseType": "Salaries", "expenseAmount": 1200000, "color": "#1f77b4"},
    {"expenseType": "Utilities", "expenseAmount": 300000.5}
  ],
  "FY26_TuitionAndStudentFees_Totals": [
    {"category": "Net Tuition", "amount": 100},
    "not an object",
    {"category": "Mandatory Fee"}
  ],
  "updated": "2025-09-01"
}`

func TestDecode(t *testing.T) {
	ds, err := Decode(strings.NewReader(payload))
	require.NoError(t, err)

	assert.Len(t, ds["FY26_Expense"], 2)
	assert.Len(t, ds["FY26_TuitionAndStudentFees_Totals"], 2)
	_, ok := ds["updated"]
	assert.False(t, ok, "non-array values are skipped")

	records, ok := ds.Resolve("FY26_Expense", entity.ExpenseFields)
	require.True(t, ok)
	assert.Equal(t, "Salaries", records[0].Category)
	assert.Equal(t, 1200000.0, records[0].Amount)
	assert.Equal(t, "#1f77b4", records[0].Color)
	assert.Equal(t, 300000.5, records[1].Amount)

	fees, ok := ds.Resolve("FY26_TuitionAndStudentFees_Totals", entity.GenericFields)
	require.True(t, ok)
	assert.Equal(t, 0.0, fees[1].Amount)
}

func TestDecodeInvalid(t *testing.T) {
	for _, in := range []string{"", "null", "[1,2,3]", "{"} {
		_, err := Decode(strings.NewReader(in))
		assert.ErrorIs(t, err, types.ErrInvalidPayload, "input %q", in)
	}
}

func TestFileRepository(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

	repo := NewFileRepository(path)
	ds, err := repo.LoadDatasets(context.Background())
	require.NoError(t, err)
	assert.Len(t, ds, 2)
	assert.Equal(t, path, repo.Describe())

	_, err = NewFileRepository(filepath.Join(t.TempDir(), "missing.json")).LoadDatasets(context.Background())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestHTTPRepository(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/data.json":
			w.Header().Set("Content-Type", "application/json")
			_, _ = io.WriteString(w, payload)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	ds, err := NewHTTPRepository(srv.URL+"/data.json", srv.Client()).LoadDatasets(context.Background())
	require.NoError(t, err)
	assert.Contains(t, ds, "FY26_Expense")

	_, err = NewHTTPRepository(srv.URL+"/missing.json", nil).LoadDatasets(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = NewHTTPRepository(srv.URL+"/data.json", nil).LoadDatasets(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

type fakeS3 struct {
	body   string
	err    error
	bucket string
	key    string
}

func (f *fakeS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.bucket = *in.Bucket
	f.key = *in.Key
	if f.err != nil {
		return nil, f.err
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(f.body))}, nil
}

func TestS3Repository(t *testing.T) {
	fake := &fakeS3{body: payload}
	repo, err := NewS3Repository("s3://budget-bucket/site/data.json", "", fake)
	require.NoError(t, err)

	ds, err := repo.LoadDatasets(context.Background())
	require.NoError(t, err)
	assert.Contains(t, ds, "FY26_Expense")
	assert.Equal(t, "budget-bucket", fake.bucket)
	assert.Equal(t, "site/data.json", fake.key)
	assert.Equal(t, "s3://budget-bucket/site/data.json", repo.Describe())

	failing := &fakeS3{err: errors.New("access denied")}
	repo, err = NewS3Repository("s3://b/k.json", "", failing)
	require.NoError(t, err)
	_, err = repo.LoadDatasets(context.Background())
	assert.ErrorContains(t, err, "access denied")
}

func TestParseS3URI(t *testing.T) {
	bucket, key, err := ParseS3URI("s3://a/b/c.json")
	require.NoError(t, err)
	assert.Equal(t, "a", bucket)
	assert.Equal(t, "b/c.json", key)

	for _, bad := range []string{"https://a/b", "s3://bucket", "s3:///key", "::"} {
		_, _, err := ParseS3URI(bad)
		assert.Error(t, err, bad)
	}
}

func TestSourceFactory(t *testing.T) {
	f := NewSourceFactory()

	tests := []struct {
		name     string
		source   string
		location string
		want     interface{}
	}{
		{"inferred file", "", "data.json", &FileRepository{}},
		{"inferred http", "", "https://example.com/data.json", &HTTPRepository{}},
		{"inferred s3", "", "s3://bucket/data.json", &S3Repository{}},
		{"explicit file", "FILE", "./data.json", &FileRepository{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, err := f.NewDatasetRepository(tt.source, tt.location, "")
			require.NoError(t, err)
			assert.IsType(t, tt.want, repo)
		})
	}

	t.Run("aws needs no location", func(t *testing.T) {
		repo, err := f.NewDatasetRepository("aws", "", "prod")
		require.NoError(t, err)
		assert.Contains(t, repo.Describe(), "prod")
	})

	t.Run("missing location", func(t *testing.T) {
		_, err := f.NewDatasetRepository("http", "", "")
		assert.ErrorIs(t, err, types.ErrNoDataSource)
	})

	t.Run("unsupported", func(t *testing.T) {
		_, err := f.NewDatasetRepository("ftp", "ftp://host/data.json", "")
		assert.ErrorIs(t, err, types.ErrUnsupportedSource)
	})
}

package dataset

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/diillson/budget-dashboard-go/internal/domain/entity"
	"github.com/diillson/budget-dashboard-go/internal/domain/repository"
)

// ObjectGetter is the part of the S3 client the repository uses.
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Repository reads the data file from an S3 object.
type S3Repository struct {
	bucket  string
	key     string
	profile string
	client  ObjectGetter
}

// ParseS3URI splits "s3://bucket/path/data.json" into bucket and key.
func ParseS3URI(uri string) (string, string, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return "", "", fmt.Errorf("invalid S3 URI %q: %w", uri, err)
	}
	key := strings.TrimPrefix(u.Path, "/")
	if u.Scheme != "s3" || u.Host == "" || key == "" {
		return "", "", fmt.Errorf("invalid S3 URI %q: expected s3://bucket/key", uri)
	}
	return u.Host, key, nil
}

// NewS3Repository creates an S3 source for uri. When client is nil the client is built
// lazily from the shared AWS config of profile.
func NewS3Repository(uri, profile string, client ObjectGetter) (repository.DatasetRepository, error) {
	bucket, key, err := ParseS3URI(uri)
	if err != nil {
		return nil, err
	}
	return &S3Repository{bucket: bucket, key: key, profile: profile, client: client}, nil
}

func (r *S3Repository) getClient(ctx context.Context) (ObjectGetter, error) {
	if r.client != nil {
		return r.client, nil
	}

	var opts []func(*config.LoadOptions) error
	if r.profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(r.profile))
	}
	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config for profile %s: %w", r.profile, err)
	}

	r.client = s3.NewFromConfig(cfg)
	return r.client, nil
}

func (r *S3Repository) LoadDatasets(ctx context.Context) (entity.Datasets, error) {
	client, err := r.getClient(ctx)
	if err != nil {
		return nil, err
	}

	out, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(r.key),
	})
	if err != nil {
		return nil, fmt.Errorf("error fetching %s: %w", r.Describe(), err)
	}
	defer out.Body.Close()

	datasets, err := Decode(out.Body)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", r.Describe(), err)
	}
	return datasets, nil
}

func (r *S3Repository) Describe() string {
	return fmt.Sprintf("s3://%s/%s", r.bucket, r.key)
}

package storage

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Source is a readable catalog document location
type Source interface {
	Load(ctx context.Context) ([]byte, error)
	// Name identifies the document in sync metadata and logs
	Name() string
}

const schemeS3 = "s3"

// Open resolves a location into a Source. "s3://bucket/key" reads an S3
// object using the default AWS credential chain; anything else is a local
// file path.
func Open(ctx context.Context, location, region string) (Source, error) {
	if !strings.HasPrefix(location, schemeS3+"://") {
		return NewFileSource(location), nil
	}

	bucket, key, err := parseS3Location(location)
	if err != nil {
		return nil, err
	}

	opts := []func(*config.LoadOptions) error{config.WithRetryMaxAttempts(5)}
	if region != "" {
		opts = append(opts, config.WithRegion(region))
	}
	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return NewS3Source(s3.NewFromConfig(awsCfg), bucket, key), nil
}

func parseS3Location(location string) (string, string, error) {
	u, err := url.Parse(location)
	if err != nil {
		return "", "", fmt.Errorf("invalid S3 location %q: %w", location, err)
	}
	key := strings.TrimPrefix(u.Path, "/")
	if u.Host == "" || key == "" {
		return "", "", fmt.Errorf("invalid S3 location %q: want s3://bucket/key", location)
	}
	return u.Host, key, nil
}

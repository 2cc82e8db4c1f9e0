package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// GetObjectAPI is the slice of the S3 client a Source needs
type GetObjectAPI interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Source reads a catalog document from an S3 object
type S3Source struct {
	bucket string
	key    string
	s3     GetObjectAPI
}

func NewS3Source(client GetObjectAPI, bucket, key string) *S3Source {
	return &S3Source{
		bucket: bucket,
		key:    key,
		s3:     client,
	}
}

func (s *S3Source) Load(ctx context.Context) ([]byte, error) {
	resp, err := s.s3.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get catalog object from S3: %w", err)
	}
	defer resp.Body.Close()
	return io.ReadAll(resp.Body)
}

func (s *S3Source) Name() string {
	return "s3://" + s.bucket + "/" + s.key
}

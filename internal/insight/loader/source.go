package loader

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"insightboard/internal/platform/config"
)

// Source yields the raw JSON document to load.
type Source interface {
	Open(ctx context.Context) (io.ReadCloser, error)
	Name() string
}

// FileSource reads a local file.
type FileSource struct {
	Path string
}

// Open opens the file.
func (f FileSource) Open(_ context.Context) (io.ReadCloser, error) {
	return os.Open(f.Path)
}

// Name returns the file path.
func (f FileSource) Name() string { return f.Path }

// ObjectGetter is the slice of the S3 API the loader needs.
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Source reads one object from an S3-compatible bucket.
type S3Source struct {
	client ObjectGetter
	bucket string
	key    string
}

// NewS3Source creates a source for s3://bucket/key.
func NewS3Source(client ObjectGetter, bucket, key string) *S3Source {
	return &S3Source{client: client, bucket: bucket, key: key}
}

// Open fetches the object body.
func (s *S3Source) Open(ctx context.Context) (io.ReadCloser, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		return nil, fmt.Errorf("get s3 object: %w", err)
	}
	return out.Body, nil
}

// Name returns the s3:// URI.
func (s *S3Source) Name() string {
	return "s3://" + s.bucket + "/" + s.key
}

// NewS3Client builds an S3 client from the default credential chain. A
// custom endpoint targets S3-compatible stores such as MinIO.
func NewS3Client(ctx context.Context, cfg config.S3Config, optFns ...func(*s3.Options)) (*s3.Client, error) {
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	opts := append([]func(*s3.Options){func(o *s3.Options) {
		o.UsePathStyle = cfg.PathStyle
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	}}, optFns...)
	return s3.NewFromConfig(awsCfg, opts...), nil
}

// ParseS3URI splits s3://bucket/key.
func ParseS3URI(uri string) (bucket, key string, err error) {
	u, err := url.Parse(uri)
	if err != nil {
		return "", "", fmt.Errorf("parse %q: %w", uri, err)
	}
	if u.Scheme != "s3" || u.Host == "" {
		return "", "", fmt.Errorf("%q is not an s3://bucket/key URI", uri)
	}
	key = strings.TrimPrefix(u.Path, "/")
	if key == "" {
		return "", "", fmt.Errorf("%q has no object key", uri)
	}
	return u.Host, key, nil
}

// IsS3URI reports whether location names an S3 object.
func IsS3URI(location string) bool {
	return strings.HasPrefix(location, "s3://")
}

// OpenSource resolves a location to a Source: s3://bucket/key goes through
// an S3 client built from cfg, anything else is a local path.
func OpenSource(ctx context.Context, location string, cfg config.S3Config) (Source, error) {
	if !IsS3URI(location) {
		return FileSource{Path: location}, nil
	}
	bucket, key, err := ParseS3URI(location)
	if err != nil {
		return nil, err
	}
	client, err := NewS3Client(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return NewS3Source(client, bucket, key), nil
}

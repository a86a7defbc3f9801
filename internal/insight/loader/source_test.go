package loader

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"insightboard/internal/insight/store"
	"insightboard/internal/platform/config"
)

// objectRoundTripper serves path-style GETs for a fixed set of objects.
type objectRoundTripper struct {
	objects map[string]string
	paths   []string
}

func (m *objectRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	m.paths = append(m.paths, req.URL.Path)
	body, ok := m.objects[strings.TrimPrefix(req.URL.Path, "/")]
	if req.Method != http.MethodGet || !ok {
		return &http.Response{
			StatusCode: http.StatusNotFound,
			Header:     http.Header{"Content-Type": {"application/xml"}},
			Body:       io.NopCloser(strings.NewReader(`<?xml version="1.0" encoding="UTF-8"?><Error><Code>NoSuchKey</Code><Message>The specified key does not exist.</Message></Error>`)),
			Request:    req,
		}, nil
	}
	return &http.Response{
		StatusCode:    http.StatusOK,
		Header:        http.Header{"Content-Type": {"application/json"}},
		Body:          io.NopCloser(strings.NewReader(body)),
		ContentLength: int64(len(body)),
		Request:       req,
	}, nil
}

func newMockS3(t *testing.T, rt http.RoundTripper) *s3.Client {
	t.Helper()
	client, err := NewS3Client(context.Background(), config.S3Config{
		Region:    "us-east-1",
		Endpoint:  "https://mock.s3.local",
		PathStyle: true,
	}, func(o *s3.Options) {
		o.HTTPClient = &http.Client{Transport: rt}
		o.Credentials = credentials.NewStaticCredentialsProvider("AKIA", "SECRET", "")
	})
	require.NoError(t, err)
	return client
}

func TestS3SourceLoads(t *testing.T) {
	rt := &objectRoundTripper{objects: map[string]string{"seed-bucket/data/jsondata.json": sampleJSON}}
	src := NewS3Source(newMockS3(t, rt), "seed-bucket", "data/jsondata.json")
	st := store.NewInMemoryStore()

	n, err := New(st, WithLogger(discardLogger())).Load(context.Background(), src)
	require.NoError(t, err)

	assert.Equal(t, 2, n)
	assert.Equal(t, "s3://seed-bucket/data/jsondata.json", src.Name())
	assert.Equal(t, []string{"/seed-bucket/data/jsondata.json"}, rt.paths)
}

func TestS3SourceMissingObject(t *testing.T) {
	rt := &objectRoundTripper{objects: map[string]string{}}
	src := NewS3Source(newMockS3(t, rt), "seed-bucket", "absent.json")

	_, err := src.Open(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NoSuchKey")
}

func TestParseS3URI(t *testing.T) {
	bucket, key, err := ParseS3URI("s3://seed-bucket/data/jsondata.json")
	require.NoError(t, err)
	assert.Equal(t, "seed-bucket", bucket)
	assert.Equal(t, "data/jsondata.json", key)

	for _, bad := range []string{"s3://bucket", "s3://bucket/", "http://bucket/key", "s3:///key"} {
		_, _, err := ParseS3URI(bad)
		assert.Error(t, err, bad)
	}
}

func TestOpenSourceSelectsBackend(t *testing.T) {
	src, err := OpenSource(context.Background(), "jsondata.json", config.S3Config{})
	require.NoError(t, err)
	assert.Equal(t, FileSource{Path: "jsondata.json"}, src)

	_, err = OpenSource(context.Background(), "s3://bucket", config.S3Config{})
	assert.Error(t, err)
}

package domain_test

import (
	"testing"

	"veo-dream-web/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStorageLocation(t *testing.T) {
	tests := []struct {
		name   string
		uri    string
		bucket string
		object string
	}{
		{name: "simple object", uri: "gs://b/v.mp4", bucket: "b", object: "v.mp4"},
		{name: "nested path", uri: "gs://dream-bucket/videos/123/sample_0.mp4", bucket: "dream-bucket", object: "videos/123/sample_0.mp4"},
		{name: "duplicate separators", uri: "gs://b//v.mp4", bucket: "b", object: "v.mp4"},
		{name: "bucket only", uri: "gs://b", bucket: "b", object: ""},
		{name: "prefix with trailing slash", uri: "gs://b/videos/", bucket: "b", object: "videos/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := domain.ParseStorageLocation(tt.uri)
			require.NoError(t, err)
			assert.Equal(t, tt.bucket, loc.Bucket)
			assert.Equal(t, tt.object, loc.Object)
		})
	}
}

func TestParseStorageLocation_Malformed(t *testing.T) {
	for _, uri := range []string{"", "b/v.mp4", "https://storage.googleapis.com/b/v.mp4", "s3://b/v.mp4", "gs:///v.mp4"} {
		t.Run(uri, func(t *testing.T) {
			_, err := domain.ParseStorageLocation(uri)
			assert.ErrorIs(t, err, domain.ErrMalformedLocation)
		})
	}
}

func TestStorageLocation_String(t *testing.T) {
	loc := domain.StorageLocation{Bucket: "b", Object: "videos/v.mp4"}
	assert.Equal(t, "gs://b/videos/v.mp4", loc.String())

	parsed, err := domain.ParseStorageLocation(loc.String())
	require.NoError(t, err)
	assert.Equal(t, loc, parsed)
}

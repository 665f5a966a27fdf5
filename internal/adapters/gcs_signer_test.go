package adapters

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"testing"
	"time"

	"veo-dream-web/internal/domain"

	"cloud.google.com/go/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGCSSigner_Sign(t *testing.T) {
	issuedAt := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)

	var gotBucket, gotObject string
	var gotOpts *storage.SignedURLOptions
	s := &GCSSigner{
		policy: domain.DefaultValidityPolicy,
		now:    func() time.Time { return issuedAt },
		sign: func(bucket, object string, opts *storage.SignedURLOptions) (string, error) {
			gotBucket, gotObject, gotOpts = bucket, object, opts
			return "https://signed/b/v.mp4?sig=X", nil
		},
	}

	link, err := s.Sign(context.Background(), domain.StorageLocation{Bucket: "b", Object: "v.mp4"}, 15)
	require.NoError(t, err)

	assert.Equal(t, "https://signed/b/v.mp4?sig=X", link.URL)
	assert.Equal(t, issuedAt.Add(15*time.Minute), link.ExpiresAt)
	assert.Equal(t, "b", gotBucket)
	assert.Equal(t, "v.mp4", gotObject)
	assert.Equal(t, storage.SigningSchemeV4, gotOpts.Scheme)
	assert.Equal(t, http.MethodGet, gotOpts.Method)
	assert.Equal(t, link.ExpiresAt, gotOpts.Expires)
}

func TestGCSSigner_ClampsValidity(t *testing.T) {
	issuedAt := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)
	s := &GCSSigner{
		policy: domain.DefaultValidityPolicy,
		now:    func() time.Time { return issuedAt },
		sign: func(string, string, *storage.SignedURLOptions) (string, error) {
			return "https://signed", nil
		},
	}

	link, err := s.Sign(context.Background(), domain.StorageLocation{Bucket: "b", Object: "v.mp4"}, 120)
	require.NoError(t, err)
	assert.Equal(t, issuedAt.Add(50*time.Minute), link.ExpiresAt)
}

func TestGCSSigner_Error(t *testing.T) {
	s := &GCSSigner{
		policy: domain.DefaultValidityPolicy,
		now:    time.Now,
		sign: func(string, string, *storage.SignedURLOptions) (string, error) {
			return "", errors.New("iam.serviceAccounts.signBlob permission denied")
		},
	}

	_, err := s.Sign(context.Background(), domain.StorageLocation{Bucket: "b", Object: "v.mp4"}, 15)
	assert.ErrorIs(t, err, domain.ErrSigning)
	assert.Contains(t, err.Error(), "signBlob permission denied")
}

func TestGCSSigner_V4WithServiceAccountKey(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	pemKey := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)})

	s := &GCSSigner{
		policy: domain.DefaultValidityPolicy,
		now:    time.Now,
		sign: func(bucket, object string, opts *storage.SignedURLOptions) (string, error) {
			opts.GoogleAccessID = "veo-signer@example.iam.gserviceaccount.com"
			opts.PrivateKey = pemKey
			return storage.SignedURL(bucket, object, opts)
		},
	}

	link, err := s.Sign(context.Background(), domain.StorageLocation{Bucket: "dream-bucket", Object: "videos/v.mp4"}, 15)
	require.NoError(t, err)

	u, err := url.Parse(link.URL)
	require.NoError(t, err)
	assert.Equal(t, "storage.googleapis.com", u.Host)
	assert.Equal(t, "/dream-bucket/videos/v.mp4", u.Path)

	q := u.Query()
	assert.Equal(t, "GOOG4-RSA-SHA256", q.Get("X-Goog-Algorithm"))
	assert.NotEmpty(t, q.Get("X-Goog-Signature"))
	expires, err := strconv.Atoi(q.Get("X-Goog-Expires"))
	require.NoError(t, err)
	assert.InDelta(t, 900, expires, 5)
}

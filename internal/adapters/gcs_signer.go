package adapters

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"veo-dream-web/internal/domain"

	"cloud.google.com/go/storage"
)

type signFunc func(bucket, object string, opts *storage.SignedURLOptions) (string, error)

// GCSSigner は Cloud Storage の V4 署名付き URL を発行します。
// 署名そのものはクライアントの認証情報 (サービスアカウント鍵または IAM SignBlob) が行います。
type GCSSigner struct {
	policy domain.ValidityPolicy
	sign   signFunc
	now    func() time.Time
}

// NewGCSSigner は storage.Client を使う GCSSigner を生成します。
func NewGCSSigner(client *storage.Client, policy domain.ValidityPolicy) *GCSSigner {
	return &GCSSigner{
		policy: policy,
		sign: func(bucket, object string, opts *storage.SignedURLOptions) (string, error) {
			return client.Bucket(bucket).SignedURL(object, opts)
		},
		now: time.Now,
	}
}

// Sign は loc に対する GET 用の署名付き URL を発行します。失敗時はリトライしません。
func (s *GCSSigner) Sign(ctx context.Context, loc domain.StorageLocation, validityMinutes int) (domain.SignedLink, error) {
	ttl := s.policy.Duration(validityMinutes)
	expires := s.now().Add(ttl)

	url, err := s.sign(loc.Bucket, loc.Object, &storage.SignedURLOptions{
		Scheme:  storage.SigningSchemeV4,
		Method:  http.MethodGet,
		Expires: expires,
	})
	if err != nil {
		slog.ErrorContext(ctx, "Failed to sign storage URL",
			"uri", loc.String(),
			"error", err,
			"hint", "check bucket access and the Service Account Token Creator role",
		)
		return domain.SignedLink{}, fmt.Errorf("%w: %s: %v", domain.ErrSigning, loc.String(), err)
	}

	slog.DebugContext(ctx, "Signed storage URL", "uri", loc.String(), "ttl", ttl)
	return domain.SignedLink{URL: url, ExpiresAt: expires}, nil
}

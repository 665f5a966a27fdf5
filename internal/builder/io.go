package builder

import (
	"context"
	"fmt"

	"veo-dream-web/internal/adapters"
	"veo-dream-web/internal/config"

	"cloud.google.com/go/storage"
)

var newStorageClient = func(ctx context.Context) (*storage.Client, error) {
	return storage.NewClient(ctx)
}

// buildSigner は、GCS クライアントと署名付き URL の発行者を初期化します。
func buildSigner(ctx context.Context, cfg *config.Config) (*storage.Client, *adapters.GCSSigner, error) {
	client, err := newStorageClient(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	return client, adapters.NewGCSSigner(client, cfg.ValidityPolicy()), nil
}

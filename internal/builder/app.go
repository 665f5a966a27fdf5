package builder

import (
	"context"
	"fmt"

	"veo-dream-web/internal/adapters"
	"veo-dream-web/internal/app"
	"veo-dream-web/internal/config"

	"github.com/shouni/go-http-kit/pkg/httpkit"
)

// BuildContainer は外部サービスとの接続を確立し、依存関係を組み立てます。
// 途中で失敗した場合は、それまでに確立した接続を閉じてからエラーを返します。
func BuildContainer(ctx context.Context, cfg *config.Config) (*app.Container, error) {
	// 1. 基盤クライアントの初期化
	httpClient := httpkit.New(config.DefaultHTTPTimeout)
	c := &app.Container{Config: cfg}

	// 2. I/O インフラ (GCS) の初期化
	storageClient, signer, err := buildSigner(ctx, cfg)
	if err != nil {
		return nil, err
	}
	c.StorageClient = storageClient

	// 3. 非同期タスク
	if cfg.AsyncEnabled() {
		taskAdapter, err := buildTaskAdapter(ctx, cfg)
		if err != nil {
			c.Close()
			return nil, err
		}
		c.TaskAdapter = taskAdapter
	}

	// 4. アダプターの初期化
	slack, err := adapters.NewSlackAdapter(httpClient, cfg.SlackWebhookURL)
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("failed to initialize Slack adapter: %w", err)
	}
	c.Notifier = slack

	// 5. パイプラインの構築
	p, err := buildPipeline(ctx, cfg, signer, c.Notifier)
	if err != nil {
		c.Close()
		return nil, err
	}
	c.Pipeline = p

	return c, nil
}

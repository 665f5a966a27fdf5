package app

import (
	"log/slog"

	"veo-dream-web/internal/adapters"
	"veo-dream-web/internal/config"
	"veo-dream-web/internal/pipeline"

	"cloud.google.com/go/storage"
)

// Container はアプリケーションの依存関係（DIコンテナ）を保持します。
type Container struct {
	Config *config.Config

	// Storage
	StorageClient *storage.Client

	// Asynchronous Task。非同期生成が無効な場合は nil です。
	TaskAdapter adapters.TaskAdapter

	// Business Logic
	Pipeline *pipeline.VideoPipeline

	// External Adapters
	Notifier adapters.Notifier
}

// Close は、Container が保持するすべての外部接続リソースを安全に解放します。
func (c *Container) Close() {
	if c == nil {
		return
	}
	if c.StorageClient != nil {
		if err := c.StorageClient.Close(); err != nil {
			slog.Error("failed to close storage client", "error", err)
		}
	}
	if c.TaskAdapter != nil {
		if err := c.TaskAdapter.Close(); err != nil {
			slog.Error("failed to close task adapter", "error", err)
		}
	}
}

package builder

import (
	"context"
	"fmt"

	"veo-dream-web/internal/adapters"
	"veo-dream-web/internal/config"
)

// buildTaskAdapter は、Cloud Tasks エンキューアを初期化します。
func buildTaskAdapter(ctx context.Context, cfg *config.Config) (adapters.TaskAdapter, error) {
	taskAdapter, err := adapters.NewCloudTasksAdapter(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloud tasks adapter: %w", err)
	}
	return taskAdapter, nil
}

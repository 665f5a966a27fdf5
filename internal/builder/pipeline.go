package builder

import (
	"context"
	"fmt"
	"log/slog"

	"veo-dream-web/internal/adapters"
	"veo-dream-web/internal/config"
	"veo-dream-web/internal/domain"
	"veo-dream-web/internal/metrics"
	"veo-dream-web/internal/pipeline"
	"veo-dream-web/internal/runner"
)

var newJobAPI = func(ctx context.Context, cfg *config.Config) (runner.JobAPI, error) {
	return adapters.NewVeoAdapter(ctx, cfg)
}

// buildPipeline は、Veo のジョブランナーを作成し、新しいパイプラインを初期化して返します。
func buildPipeline(ctx context.Context, cfg *config.Config, signer pipeline.LinkSigner, notifier adapters.Notifier) (*pipeline.VideoPipeline, error) {
	veo, err := newJobAPI(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize veo adapter: %w", err)
	}

	r := runner.NewVideoRunner(veo, cfg.PollInterval,
		runner.WithMaxPolls(cfg.MaxPolls),
		runner.WithPollHook(logPoll),
	)
	return pipeline.NewVideoPipeline(cfg, r, signer, notifier), nil
}

// logPoll はポーリングごとの状態を記録します。
func logPoll(attempt int, job domain.Job) {
	metrics.PollsTotal.Inc()
	slog.Info("Waiting for video generation",
		"job", job.Name,
		"attempt", attempt,
		"status", job.Status,
		"state", job.State,
	)
}

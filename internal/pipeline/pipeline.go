package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"veo-dream-web/internal/adapters"
	"veo-dream-web/internal/config"
	"veo-dream-web/internal/domain"
	"veo-dream-web/internal/metrics"
)

const (
	modeSync  = "sync"
	modeAsync = "async"
)

// JobRunner は生成ジョブを終端状態まで実行します。
type JobRunner interface {
	Run(ctx context.Context, req domain.GenerationRequest) (domain.Job, error)
}

// LinkSigner は保存先から署名付き URL を発行します。
type LinkSigner interface {
	Sign(ctx context.Context, loc domain.StorageLocation, validityMinutes int) (domain.SignedLink, error)
}

// VideoPipeline は「投入 → 完了待ち → 署名付き URL 発行」の一連の処理を実行します。
type VideoPipeline struct {
	cfg      *config.Config
	runner   JobRunner
	signer   LinkSigner
	notifier adapters.Notifier
}

func NewVideoPipeline(cfg *config.Config, runner JobRunner, signer LinkSigner, notifier adapters.Notifier) *VideoPipeline {
	return &VideoPipeline{
		cfg:      cfg,
		runner:   runner,
		signer:   signer,
		notifier: notifier,
	}
}

// Generate はプロンプトから動画を生成し、署名付き URL を返します。
// 外部 API がジョブの失敗を報告した場合は *domain.JobError を返します。
func (p *VideoPipeline) Generate(ctx context.Context, prompt string) (*domain.VideoResult, error) {
	return p.generate(ctx, prompt, modeSync)
}

// Execute は Cloud Tasks から渡されたタスクを実行し、結果を通知します。
func (p *VideoPipeline) Execute(ctx context.Context, payload domain.GenerateTaskPayload) error {
	slog.InfoContext(ctx, "Pipeline execution started", "task_id", payload.TaskID)

	req := domain.NotificationRequest{
		TaskID: payload.TaskID,
		Prompt: payload.Prompt,
	}

	result, err := p.generate(ctx, payload.Prompt, modeAsync)
	if err != nil {
		p.notifyError(ctx, req, err)
		return err
	}

	req.StorageURI = result.Location.String()
	req.SignedURL = result.Link.URL
	req.ExpiresAt = result.Link.ExpiresAt
	if err := p.notifier.Notify(ctx, req); err != nil {
		slog.ErrorContext(ctx, "Notification failed", "task_id", payload.TaskID, "error", err)
	}
	return nil
}

func (p *VideoPipeline) generate(ctx context.Context, prompt, mode string) (*domain.VideoResult, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, fmt.Errorf("%w: prompt is required", domain.ErrInvalidRequest)
	}
	if err := config.ValidateOutputURI(p.cfg.OutputGCSURI); err != nil {
		return nil, err
	}

	start := time.Now()
	result, err := p.run(ctx, prompt)
	observe(mode, start, err)
	return result, err
}

func (p *VideoPipeline) run(ctx context.Context, prompt string) (*domain.VideoResult, error) {
	job, err := p.runner.Run(ctx, p.cfg.NewGenerationRequest(prompt))
	if err != nil {
		return nil, err
	}
	if job.Failed() {
		return nil, &domain.JobError{JobName: job.Name, Message: job.Error}
	}

	loc, err := domain.ParseStorageLocation(job.ResultURI)
	if err != nil {
		return nil, fmt.Errorf("job %s result: %w", job.Name, err)
	}

	link, err := p.signer.Sign(ctx, loc, p.cfg.SignedURLMinutes)
	if err != nil {
		metrics.SignedURLsTotal.WithLabelValues("error").Inc()
		return nil, err
	}
	metrics.SignedURLsTotal.WithLabelValues("ok").Inc()

	slog.InfoContext(ctx, "Signed URL issued", "uri", loc.String(), "expires_at", link.ExpiresAt)
	return &domain.VideoResult{Job: job, Location: loc, Link: link}, nil
}

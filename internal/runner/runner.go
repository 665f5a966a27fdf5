package runner

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"veo-dream-web/internal/domain"
)

// JobAPI は外部の動画生成ジョブ API を抽象化します。
type JobAPI interface {
	// Submit はリクエストを投入し、pending 状態のジョブを返します。
	Submit(ctx context.Context, req domain.GenerationRequest) (domain.Job, error)
	// Refresh はジョブの最新スナップショットを取得します。
	Refresh(ctx context.Context, job domain.Job) (domain.Job, error)
}

// Sleeper はポーリング間の待機を担います。
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// SleeperFunc は関数を Sleeper として扱うためのアダプターです。
type SleeperFunc func(ctx context.Context, d time.Duration) error

func (f SleeperFunc) Sleep(ctx context.Context, d time.Duration) error {
	return f(ctx, d)
}

// ContextSleeper は d の経過か ctx の終了まで待機します。
var ContextSleeper SleeperFunc = func(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Option は VideoRunner の挙動を調整します。
type Option func(*VideoRunner)

// WithMaxPolls はポーリング回数の上限を設定します。0 は無制限です。
func WithMaxPolls(n int) Option {
	return func(r *VideoRunner) { r.maxPolls = n }
}

// WithSleeper は待機処理を差し替えます。
func WithSleeper(s Sleeper) Option {
	return func(r *VideoRunner) { r.sleeper = s }
}

// WithPollHook はスナップショット取得のたびに呼ばれるフックを設定します。
func WithPollHook(fn func(attempt int, job domain.Job)) Option {
	return func(r *VideoRunner) { r.onPoll = fn }
}

// VideoRunner は生成ジョブを投入し、終端状態になるまで一定間隔でポーリングします。
type VideoRunner struct {
	api      JobAPI
	interval time.Duration
	maxPolls int
	sleeper  Sleeper
	onPoll   func(attempt int, job domain.Job)
}

// NewVideoRunner は VideoRunner の新しいインスタンスを生成します。
func NewVideoRunner(api JobAPI, interval time.Duration, opts ...Option) *VideoRunner {
	r := &VideoRunner{
		api:      api,
		interval: interval,
		sleeper:  ContextSleeper,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run はジョブを投入し、終端状態のジョブを返します。
// 外部 API がエラーを報告した場合も、ジョブ自体は err == nil で返されます。
func (r *VideoRunner) Run(ctx context.Context, req domain.GenerationRequest) (domain.Job, error) {
	slog.InfoContext(ctx, "Submitting video generation job",
		"model", req.Model,
		"output_uri", req.OutputURI,
		"aspect_ratio", req.AspectRatio,
		"duration_seconds", req.DurationSeconds,
	)

	job, err := r.api.Submit(ctx, req)
	if err != nil {
		return domain.Job{}, fmt.Errorf("submit generation job: %w", err)
	}
	slog.InfoContext(ctx, "Video generation job submitted", "job", job.Name)

	for attempt := 1; !job.Done(); attempt++ {
		if r.maxPolls > 0 && attempt > r.maxPolls {
			return job, fmt.Errorf("%w: job %s not done after %d polls", domain.ErrPollLimit, job.Name, r.maxPolls)
		}

		if err := r.sleeper.Sleep(ctx, r.interval); err != nil {
			return job, fmt.Errorf("wait for job %s: %w", job.Name, err)
		}

		next, err := r.api.Refresh(ctx, job)
		if err != nil {
			return job, fmt.Errorf("refresh job %s: %w", job.Name, err)
		}
		job = next

		slog.DebugContext(ctx, "Polled video generation job",
			"job", job.Name,
			"attempt", attempt,
			"status", job.Status,
			"state", job.State,
		)
		if r.onPoll != nil {
			r.onPoll(attempt, job)
		}
	}

	if job.Failed() {
		slog.WarnContext(ctx, "Video generation job failed", "job", job.Name, "error", job.Error)
	} else {
		slog.InfoContext(ctx, "Video generation job completed", "job", job.Name, "result_uri", job.ResultURI)
	}
	return job, nil
}

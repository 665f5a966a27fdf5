package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"veo-dream-web/internal/domain"
	"veo-dream-web/internal/metrics"
)

// notifyError はエラー発生時に Notifier を通じて通知を行います。
func (p *VideoPipeline) notifyError(ctx context.Context, req domain.NotificationRequest, opErr error) {
	if err := p.notifier.NotifyError(ctx, opErr, req); err != nil {
		slog.ErrorContext(ctx, "Failed to send error notification", "error", err)
	}
}

// observe は実行結果をメトリクスに記録します。
func observe(mode string, start time.Time, err error) {
	outcome := metrics.OutcomeSucceeded
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrJob):
		outcome = metrics.OutcomeJobError
	default:
		outcome = metrics.OutcomeFailed
	}

	metrics.JobsTotal.WithLabelValues(mode, outcome).Inc()
	metrics.JobDuration.WithLabelValues(mode).Observe(time.Since(start).Seconds())
}

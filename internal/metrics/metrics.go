package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// 出力結果ラベル
const (
	OutcomeSucceeded = "succeeded"
	OutcomeJobError  = "job_error"
	OutcomeFailed    = "failed"
)

var (
	// JobsTotal は終了した生成ジョブ数です。
	JobsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "veo",
			Subsystem: "dream_web",
			Name:      "jobs_total",
			Help:      "Total number of finished video generation jobs",
		},
		[]string{"mode", "outcome"},
	)

	// JobDuration は投入から署名完了までの所要時間です。
	JobDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "veo",
			Subsystem: "dream_web",
			Name:      "job_duration_seconds",
			Help:      "Video generation duration from submission to signed URL",
			Buckets:   []float64{15, 30, 60, 90, 120, 180, 300, 600},
		},
		[]string{"mode"},
	)

	// PollsTotal はオペレーション状態の再取得回数です。
	PollsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "veo",
			Subsystem: "dream_web",
			Name:      "polls_total",
			Help:      "Total number of operation status polls",
		},
	)

	// SignedURLsTotal は署名付き URL 発行の試行数です。
	SignedURLsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "veo",
			Subsystem: "dream_web",
			Name:      "signed_urls_total",
			Help:      "Total signed URL issuance attempts",
		},
		[]string{"status"},
	)

	// TasksEnqueuedTotal は非同期生成タスクの投入数です。
	TasksEnqueuedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "veo",
			Subsystem: "dream_web",
			Name:      "tasks_enqueued_total",
			Help:      "Total async generation tasks enqueued",
		},
		[]string{"status"},
	)
)

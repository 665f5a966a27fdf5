package worker

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"veo-dream-web/internal/domain"
)

// TaskExecutor は実際の生成ロジックを持つインターフェースです。
type TaskExecutor interface {
	Execute(ctx context.Context, payload domain.GenerateTaskPayload) error
}

type Handler struct {
	executor TaskExecutor
}

func NewHandler(executor TaskExecutor) *Handler {
	return &Handler{executor: executor}
}

// GenerateTask は /tasks/generate-video へのリクエストを処理します。
// 処理結果は通知で報告するため、ジョブが失敗しても 200 を返し再配信させません。
func (h *Handler) GenerateTask(w http.ResponseWriter, r *http.Request) {
	var payload domain.GenerateTaskPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		slog.ErrorContext(r.Context(), "Failed to decode task payload", "error", err)
		http.Error(w, "Invalid payload", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(payload.Prompt) == "" {
		slog.ErrorContext(r.Context(), "Task payload has no prompt", "task_id", payload.TaskID)
		http.Error(w, "Invalid payload", http.StatusBadRequest)
		return
	}

	slog.InfoContext(r.Context(), "Starting video generation task",
		"task_id", payload.TaskID,
		"requested_at", payload.RequestedAt,
	)

	// Cloud Run のリクエストタイムアウトまで同期実行します。
	if err := h.executor.Execute(context.WithoutCancel(r.Context()), payload); err != nil {
		slog.ErrorContext(r.Context(), "Video generation task failed", "task_id", payload.TaskID, "error", err)
		w.WriteHeader(http.StatusOK)
		return
	}

	slog.InfoContext(r.Context(), "Video generation task completed", "task_id", payload.TaskID)
	w.WriteHeader(http.StatusOK)
}

package handlers

import (
	"log/slog"
	"net/http"

	"veo-dream-web/internal/config"
	"veo-dream-web/internal/domain"
	"veo-dream-web/internal/metrics"
)

// HandleSubmit は POST /generate-video/async を処理します。
// 生成タスクを Cloud Tasks に投入し、完了を待たずに 202 を返します。
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	if h.taskEnqueuer == nil {
		writeError(w, http.StatusNotFound, "async generation is not enabled")
		return
	}

	prompt, ok := decodePrompt(r)
	if !ok {
		writeError(w, http.StatusBadRequest, msgPromptRequired)
		return
	}

	if err := config.ValidateOutputURI(h.cfg.OutputGCSURI); err != nil {
		writeError(w, http.StatusInternalServerError, msgInvalidOutputURI)
		return
	}

	payload := domain.GenerateTaskPayload{
		TaskID:      h.newTaskID(),
		Prompt:      prompt,
		RequestedAt: h.now().UTC(),
	}

	if err := h.taskEnqueuer.EnqueueGenerateTask(r.Context(), payload); err != nil {
		metrics.TasksEnqueuedTotal.WithLabelValues("error").Inc()
		slog.ErrorContext(r.Context(), "Failed to enqueue task", "task_id", payload.TaskID, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to schedule task")
		return
	}
	metrics.TasksEnqueuedTotal.WithLabelValues("ok").Inc()

	writeJSON(w, http.StatusAccepted, acceptedResponse{TaskID: payload.TaskID})
}

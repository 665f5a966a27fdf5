package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"veo-dream-web/internal/config"
)

// GenerateVideo は POST /generate-video を処理します。
// ジョブ完了までリクエストをブロックし、署名付き URL を返します。
func (h *Handler) GenerateVideo(w http.ResponseWriter, r *http.Request) {
	prompt, ok := decodePrompt(r)
	if !ok {
		writeError(w, http.StatusBadRequest, msgPromptRequired)
		return
	}

	if err := config.ValidateOutputURI(h.cfg.OutputGCSURI); err != nil {
		slog.ErrorContext(r.Context(), "Output location is not configured", "output_gcs_uri", h.cfg.OutputGCSURI)
		writeError(w, http.StatusInternalServerError, msgInvalidOutputURI)
		return
	}

	// クライアントが切断してもポーリングは継続します。
	ctx := context.WithoutCancel(r.Context())
	result, err := h.generator.Generate(ctx, prompt)
	if err != nil {
		status, msg := statusForError(err)
		slog.ErrorContext(ctx, "Video generation failed", "status", status, "error", err)
		writeError(w, status, msg)
		return
	}

	slog.InfoContext(ctx, "Video generation completed",
		"job", result.Job.Name,
		"uri", result.Location.String(),
		"expires_at", result.Link.ExpiresAt,
	)
	writeJSON(w, http.StatusOK, generateResponse{
		Message:   msgCompleted,
		SignedURL: result.Link.URL,
	})
}

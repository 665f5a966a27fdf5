package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"veo-dream-web/internal/domain"
)

const (
	msgPromptRequired   = "prompt is required"
	msgInvalidOutputURI = "invalid OUTPUT_GCS_URI"
	msgCompleted        = "video generation completed"
)

// decodePrompt はリクエストボディからプロンプトをそのまま取り出します。
// デコードできない場合や空白のみの場合は ok == false です。
func decodePrompt(r *http.Request) (prompt string, ok bool) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.WarnContext(r.Context(), "Failed to decode request body", "error", err)
		return "", false
	}
	return req.Prompt, strings.TrimSpace(req.Prompt) != ""
}

// statusForError はエラーを HTTP ステータスとクライアント向けメッセージに変換します。
func statusForError(err error) (int, string) {
	var jobErr *domain.JobError
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		return http.StatusBadRequest, msgPromptRequired
	case errors.Is(err, domain.ErrConfiguration):
		return http.StatusInternalServerError, msgInvalidOutputURI
	case errors.As(err, &jobErr):
		return http.StatusInternalServerError, jobErr.Message
	default:
		return http.StatusInternalServerError, err.Error()
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to write response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

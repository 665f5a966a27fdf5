package handlers

import (
	"context"
	"time"

	"veo-dream-web/internal/adapters"
	"veo-dream-web/internal/config"
	"veo-dream-web/internal/domain"

	"github.com/google/uuid"
)

// Generator はプロンプトから署名付き URL までを同期的に処理します。
type Generator interface {
	Generate(ctx context.Context, prompt string) (*domain.VideoResult, error)
}

type Handler struct {
	cfg          *config.Config
	generator    Generator
	taskEnqueuer adapters.TaskAdapter
	newTaskID    func() string
	now          func() time.Time
}

// NewHandler は API ハンドラーを初期化します。
// taskEnqueuer が nil の場合、非同期生成は受け付けません。
func NewHandler(cfg *config.Config, generator Generator, taskEnqueuer adapters.TaskAdapter) *Handler {
	return &Handler{
		cfg:          cfg,
		generator:    generator,
		taskEnqueuer: taskEnqueuer,
		newTaskID:    uuid.NewString,
		now:          time.Now,
	}
}

type generateRequest struct {
	Prompt string `json:"prompt"`
}

type generateResponse struct {
	Message   string `json:"message"`
	SignedURL string `json:"signed_url"`
}

type acceptedResponse struct {
	TaskID string `json:"task_id"`
}

type errorResponse struct {
	Error string `json:"error"`
}

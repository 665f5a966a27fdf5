package adapters

import (
	"context"
	"errors"
	"fmt"

	"veo-dream-web/internal/config"
	"veo-dream-web/internal/domain"

	"google.golang.org/genai"
)

// VeoAdapter は Gen AI SDK の動画生成オペレーションを runner.JobAPI として公開します。
type VeoAdapter struct {
	client *genai.Client
}

// NewVeoAdapter は Gen AI クライアントを初期化します。
// プロジェクトが指定されていれば Vertex AI バックエンドを使い、
// それ以外は GOOGLE_GENAI_USE_VERTEXAI 等の環境変数に従います。
func NewVeoAdapter(ctx context.Context, cfg *config.Config) (*VeoAdapter, error) {
	clientCfg := &genai.ClientConfig{}
	if cfg.ProjectID != "" {
		clientCfg.Backend = genai.BackendVertexAI
		clientCfg.Project = cfg.ProjectID
		clientCfg.Location = cfg.LocationID
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return &VeoAdapter{client: client}, nil
}

// Submit は動画生成オペレーションを開始します。
func (a *VeoAdapter) Submit(ctx context.Context, req domain.GenerationRequest) (domain.Job, error) {
	videoCfg := &genai.GenerateVideosConfig{
		AspectRatio:  req.AspectRatio,
		OutputGCSURI: req.OutputURI,
	}
	if req.DurationSeconds > 0 {
		videoCfg.DurationSeconds = genai.Ptr(req.DurationSeconds)
	}

	op, err := a.client.Models.GenerateVideos(ctx, req.Model, req.Prompt, nil, videoCfg)
	if err != nil {
		return domain.Job{}, fmt.Errorf("generate videos: %w", err)
	}
	return jobFromOperation(op)
}

// Refresh はオペレーション名から最新の状態を取得します。
func (a *VeoAdapter) Refresh(ctx context.Context, job domain.Job) (domain.Job, error) {
	op, err := a.client.Operations.GetVideosOperation(ctx, &genai.GenerateVideosOperation{Name: job.Name}, nil)
	if err != nil {
		return job, fmt.Errorf("get videos operation: %w", err)
	}
	return jobFromOperation(op)
}

// jobFromOperation は SDK のオペレーションをドメインのジョブに変換します。
func jobFromOperation(op *genai.GenerateVideosOperation) (domain.Job, error) {
	if op == nil {
		return domain.Job{}, errors.New("generate videos: empty operation")
	}

	job := domain.Job{
		Name:   op.Name,
		Status: domain.JobStatusPending,
		State:  metadataState(op.Metadata),
	}
	if !op.Done {
		return job, nil
	}

	job.Status = domain.JobStatusDone
	if len(op.Error) > 0 {
		job.Error = operationErrorMessage(op.Error)
		return job, nil
	}

	if op.Response == nil || len(op.Response.GeneratedVideos) == 0 {
		return job, fmt.Errorf("%w: operation %s returned no generated video", domain.ErrMalformedLocation, op.Name)
	}
	video := op.Response.GeneratedVideos[0].Video
	if video == nil || video.URI == "" {
		return job, fmt.Errorf("%w: operation %s returned a video without URI", domain.ErrMalformedLocation, op.Name)
	}

	job.ResultURI = video.URI
	return job, nil
}

// operationErrorMessage はエラーペイロードから人が読めるメッセージを取り出します。
// ペイロードはマップでも構造体でも受け付けます。
func operationErrorMessage(payload any) string {
	switch v := payload.(type) {
	case nil:
		return ""
	case string:
		return v
	case map[string]any:
		if msg, ok := v["message"].(string); ok && msg != "" {
			return msg
		}
		return fmt.Sprint(v)
	case interface{ GetMessage() string }:
		if msg := v.GetMessage(); msg != "" {
			return msg
		}
	case error:
		return v.Error()
	}
	return fmt.Sprint(payload)
}

func metadataState(metadata map[string]any) string {
	if metadata == nil {
		return ""
	}
	switch v := metadata["state"].(type) {
	case string:
		return v
	case map[string]any:
		if name, ok := v["name"].(string); ok {
			return name
		}
	}
	return ""
}

package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"

	"veo-dream-web/internal/config"
	"veo-dream-web/internal/domain"

	cloudtasks "cloud.google.com/go/cloudtasks/apiv2"
	"cloud.google.com/go/cloudtasks/apiv2/cloudtaskspb"
)

// WorkerPath は Cloud Tasks から呼び出されるワーカーのパスです。
const WorkerPath = "/tasks/generate-video"

// TaskAdapter はタスク投入のためのインターフェースを定義します。
type TaskAdapter interface {
	EnqueueGenerateTask(ctx context.Context, payload domain.GenerateTaskPayload) error
	Close() error
}

// CloudTasksAdapter は Google Cloud Tasks を使用した TaskAdapter の実装です。
type CloudTasksAdapter struct {
	client         *cloudtasks.Client
	parent         string // キューの親リソース名 (プロジェクト、ロケーション、キューIDを含む)
	workerURL      string // タスクが送信されるワーカーのエンドポイントURL
	audience       string // OIDCトークンの検証に使用する Audience
	serviceAccount string // 空の場合は環境のデフォルトサービスアカウント
}

// NewCloudTasksAdapter は Cloud Tasks クライアントを初期化し、固定の設定値を事前構築します。
func NewCloudTasksAdapter(ctx context.Context, cfg *config.Config) (*CloudTasksAdapter, error) {
	workerURL, err := url.JoinPath(cfg.ServiceURL, WorkerPath)
	if err != nil {
		return nil, fmt.Errorf("failed to build worker URL: %w", err)
	}

	client, err := cloudtasks.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create cloud tasks client: %w", err)
	}

	parent := fmt.Sprintf("projects/%s/locations/%s/queues/%s",
		cfg.ProjectID, cfg.LocationID, cfg.QueueID)

	return &CloudTasksAdapter{
		client:         client,
		parent:         parent,
		workerURL:      workerURL,
		audience:       cfg.TaskAudienceURL,
		serviceAccount: cfg.ServiceAccountEmail,
	}, nil
}

// EnqueueGenerateTask は動画生成タスクを Cloud Tasks キューにエンキューします。
func (a *CloudTasksAdapter) EnqueueGenerateTask(ctx context.Context, payload domain.GenerateTaskPayload) error {
	req, err := a.buildCreateTaskRequest(payload)
	if err != nil {
		return err
	}

	createdTask, err := a.client.CreateTask(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}

	slog.InfoContext(ctx, "Task enqueued successfully",
		"task_name", createdTask.GetName(),
		"task_id", payload.TaskID,
		"audience", a.audience,
	)
	return nil
}

func (a *CloudTasksAdapter) buildCreateTaskRequest(payload domain.GenerateTaskPayload) (*cloudtaskspb.CreateTaskRequest, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	return &cloudtaskspb.CreateTaskRequest{
		Parent: a.parent,
		Task: &cloudtaskspb.Task{
			MessageType: &cloudtaskspb.Task_HttpRequest{
				HttpRequest: &cloudtaskspb.HttpRequest{
					HttpMethod: cloudtaskspb.HttpMethod_POST,
					Url:        a.workerURL,
					Body:       body,
					Headers: map[string]string{
						"Content-Type": "application/json",
					},
					// Cloud Tasks が ID トークンを取得し、Authorization ヘッダーを付与します。
					AuthorizationHeader: &cloudtaskspb.HttpRequest_OidcToken{
						OidcToken: &cloudtaskspb.OidcToken{
							ServiceAccountEmail: a.serviceAccount,
							Audience:            a.audience,
						},
					},
				},
			},
		},
	}, nil
}

// Close は Cloud Tasks クライアントの接続を閉じます。
func (a *CloudTasksAdapter) Close() error {
	return a.client.Close()
}

package adapters

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"veo-dream-web/internal/domain"

	"github.com/shouni/go-http-kit/pkg/httpkit"
	"github.com/shouni/go-notifier/pkg/factory"
)

// --- インターフェース定義 ---

type Notifier interface {
	Notify(ctx context.Context, req domain.NotificationRequest) error
	NotifyError(ctx context.Context, errDetail error, req domain.NotificationRequest) error
}

// textSender は見出し付きテキストを Slack に送信します。
type textSender interface {
	SendTextWithHeader(ctx context.Context, title, content string) error
}

// --- 具象アダプター ---

// SlackAdapter は Incoming Webhook で Slack に通知します。
type SlackAdapter struct {
	sender textSender
}

// NewSlackAdapter は SlackAdapter を生成します。webhookURL が空の場合、通知はスキップされます。
func NewSlackAdapter(httpClient httpkit.ClientInterface, webhookURL string) (*SlackAdapter, error) {
	if webhookURL == "" {
		return &SlackAdapter{}, nil
	}
	client, err := factory.GetSlackClient(httpClient)
	if err != nil {
		return nil, fmt.Errorf("Slackクライアントの初期化に失敗しました: %w", err)
	}
	return &SlackAdapter{sender: client}, nil
}

// Notify は生成完了を署名付き URL とストレージ情報付きで通知します。
func (a *SlackAdapter) Notify(ctx context.Context, req domain.NotificationRequest) error {
	if a.sender == nil {
		slog.InfoContext(ctx, "Slack webhook is not configured; skipping notification", "storage_uri", req.StorageURI)
		return nil
	}

	title := "🎬 動画の生成が完了しました"
	if err := a.sender.SendTextWithHeader(ctx, title, buildSlackContent(req)); err != nil {
		return fmt.Errorf("Slackへの投稿に失敗しました: %w", err)
	}

	slog.InfoContext(ctx, "Slack notification sent", "task_id", req.TaskID)
	return nil
}

// NotifyError はエラー詳細と実行メタデータを含むエラー通知を送信します。
func (a *SlackAdapter) NotifyError(ctx context.Context, errDetail error, req domain.NotificationRequest) error {
	if a.sender == nil {
		slog.InfoContext(ctx, "Slack webhook is not configured; skipping error notification", "error", errDetail)
		return nil
	}

	var sb strings.Builder
	if req.TaskID != "" {
		sb.WriteString(fmt.Sprintf("*タスク:* `%s`\n", req.TaskID))
	}
	sb.WriteString(fmt.Sprintf("*プロンプト:* %s\n\n", truncatePrompt(req.Prompt)))
	sb.WriteString("*エラー内容:*\n")
	sb.WriteString(fmt.Sprintf("```\n%v\n```", errDetail))

	if err := a.sender.SendTextWithHeader(ctx, "❌ 動画の生成に失敗しました", sb.String()); err != nil {
		return fmt.Errorf("Slackへのエラー通知に失敗しました: %w", err)
	}

	slog.InfoContext(ctx, "Slack error notification sent", "task_id", req.TaskID)
	return nil
}

// buildSlackContent は通知リクエストから Slack の mrkdwn 本文を組み立てます。
func buildSlackContent(req domain.NotificationRequest) string {
	consoleURL := "https://console.cloud.google.com/storage/browser/_details/" + strings.TrimPrefix(req.StorageURI, domain.StorageScheme)

	var sb strings.Builder
	if req.TaskID != "" {
		sb.WriteString(fmt.Sprintf("*タスク:* `%s`\n", req.TaskID))
	}
	sb.WriteString(fmt.Sprintf("*プロンプト:* %s\n\n", truncatePrompt(req.Prompt)))

	if req.SignedURL != "" {
		sb.WriteString(fmt.Sprintf("🌐 *再生:* <%s|署名付きURLを開く>", req.SignedURL))
		if !req.ExpiresAt.IsZero() {
			sb.WriteString(fmt.Sprintf(" (有効期限 %s)", req.ExpiresAt.UTC().Format(time.RFC3339)))
		}
		sb.WriteString("\n")
	}
	sb.WriteString(fmt.Sprintf("📂 *管理者(Console):* <%s|GCSで直接見る>\n", consoleURL))
	sb.WriteString(fmt.Sprintf("📍 *保存場所(URI):* `%s`", req.StorageURI))

	return sb.String()
}

const maxPromptRunes = 200

func truncatePrompt(prompt string) string {
	r := []rune(strings.TrimSpace(prompt))
	if len(r) <= maxPromptRunes {
		return string(r)
	}
	return string(r[:maxPromptRunes]) + "…"
}

package domain

import "time"

// NotificationRequest は Slack 等の通知コンポーネントで共有されるデータ構造です。
type NotificationRequest struct {
	// TaskID は非同期受付の識別子です。同期実行の場合は空です。
	TaskID string `json:"task_id"`

	// Prompt は生成に使用したプロンプトです。
	Prompt string `json:"prompt"`

	// StorageURI は生成された動画の gs:// URI です。
	StorageURI string `json:"storage_uri"`

	// SignedURL はブラウザで再生できる署名付き URL です。
	SignedURL string `json:"signed_url"`

	// ExpiresAt は SignedURL の有効期限です。
	ExpiresAt time.Time `json:"expires_at"`
}

package domain

import "time"

// GenerateTaskPayload は、Cloud Tasks 経由で渡される動画生成指示を表します。
type GenerateTaskPayload struct {
	// TaskID は受付時に払い出した識別子です。通知で受付とのひも付けに使います。
	TaskID string `json:"task_id"`
	// Prompt は動画生成に使うテキストです。
	Prompt string `json:"prompt"`
	// RequestedAt は受付時刻です。
	RequestedAt time.Time `json:"requested_at"`
}

package config

import (
	"fmt"

	"veo-dream-web/internal/domain"

	"github.com/shouni/netarmor/securenet"
)

// ValidityPolicy は署名付き URL の有効期間ポリシーを返します。
func (c Config) ValidityPolicy() domain.ValidityPolicy {
	return domain.ValidityPolicy{
		Default: c.SignedURLMinutes,
		Min:     c.SignedURLMinMinutes,
		Max:     c.SignedURLMaxMinutes,
		Clamp:   c.SignedURLClamp,
	}
}

// AsyncEnabled は Cloud Tasks による非同期生成が構成されているかを返します。
func (c Config) AsyncEnabled() bool {
	return c.QueueID != ""
}

// Addr は HTTP の待ち受けアドレスを返します。
func (c Config) Addr() string {
	return ":" + c.Port
}

// NewGenerationRequest は設定値の固定パラメータでプロンプトを包みます。
func (c Config) NewGenerationRequest(prompt string) domain.GenerationRequest {
	return domain.GenerationRequest{
		Model:           c.Model,
		Prompt:          prompt,
		AspectRatio:     c.AspectRatio,
		OutputURI:       c.OutputGCSURI,
		DurationSeconds: c.DurationSeconds,
	}
}

// --- バリデーション ---

// ValidateOutputURI は出力先が gs:// で始まるかを検証します。
// プロセス全体の前提条件ですが、リクエスト単位で評価されます。
func ValidateOutputURI(uri string) error {
	if uri == "" || !domain.HasStorageScheme(uri) {
		return fmt.Errorf("%w: invalid OUTPUT_GCS_URI", domain.ErrConfiguration)
	}
	return nil
}

// ValidateEssentialConfig はアプリケーション実行に不可欠な設定を検証します。
func ValidateEssentialConfig(cfg *Config) error {
	if cfg.Port == "" {
		return fmt.Errorf("configuration error: PORT is empty")
	}

	if cfg.Model == "" {
		return fmt.Errorf("configuration error: VEO_MODEL is empty")
	}

	if cfg.PollInterval <= 0 {
		return fmt.Errorf("configuration error: VEO_POLL_INTERVAL must be positive (got %s)", cfg.PollInterval)
	}

	if cfg.DurationSeconds < 0 {
		return fmt.Errorf("configuration error: VEO_DURATION_SECONDS must not be negative (got %d)", cfg.DurationSeconds)
	}

	if cfg.MaxPolls < 0 {
		return fmt.Errorf("configuration error: VEO_MAX_POLLS must not be negative (got %d)", cfg.MaxPolls)
	}

	if cfg.SignedURLClamp && cfg.SignedURLMinMinutes > cfg.SignedURLMaxMinutes {
		return fmt.Errorf("configuration error: SIGNED_URL_MIN_MINUTES (%d) exceeds SIGNED_URL_MAX_MINUTES (%d)",
			cfg.SignedURLMinMinutes, cfg.SignedURLMaxMinutes)
	}

	if cfg.AsyncEnabled() {
		if cfg.ProjectID == "" {
			return fmt.Errorf("configuration error: GOOGLE_CLOUD_PROJECT is required when CLOUD_TASKS_QUEUE_ID is set")
		}
		if !IsSecureURL(cfg.ServiceURL) {
			return fmt.Errorf("security error: SERVICE_URL ('%s') must be HTTPS when Cloud Tasks is enabled", cfg.ServiceURL)
		}
	}

	return nil
}

// IsSecureURL は指定された URL が HTTPS または localhost であるか判定します。
func IsSecureURL(rawURL string) bool {
	return securenet.IsSecureServiceURL(rawURL)
}

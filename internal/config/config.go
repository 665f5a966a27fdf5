package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

const (
	// CLIPollInterval は CLI 版のポーリング間隔です。Web API 版は VEO_POLL_INTERVAL (既定 10 秒) を使います。
	CLIPollInterval        = 15 * time.Second
	DefaultShutdownTimeout = 15 * time.Second
	DefaultHTTPTimeout     = 10 * time.Second
)

// Config は環境変数から読み込まれたアプリケーションの全設定を保持します。
type Config struct {
	ServiceURL string `env:"SERVICE_URL" envDefault:"http://localhost:8080"`
	Port       string `env:"PORT" envDefault:"8080"`

	// OutputGCSURI は生成動画の書き込み先です (例: gs://my-bucket/videos/)。
	// 起動時には必須とせず、リクエスト処理時に検証します。
	OutputGCSURI string `env:"OUTPUT_GCS_URI"`

	// Vertex AI
	ProjectID  string `env:"GOOGLE_CLOUD_PROJECT"`
	LocationID string `env:"GOOGLE_CLOUD_LOCATION" envDefault:"us-central1"`

	// Veo
	Model           string        `env:"VEO_MODEL" envDefault:"veo-3.0-generate-001"`
	AspectRatio     string        `env:"VEO_ASPECT_RATIO" envDefault:"16:9"`
	DurationSeconds int32         `env:"VEO_DURATION_SECONDS" envDefault:"8"`
	PollInterval    time.Duration `env:"VEO_POLL_INTERVAL" envDefault:"10s"`
	MaxPolls        int           `env:"VEO_MAX_POLLS" envDefault:"0"`

	// Signed URL
	SignedURLMinutes    int  `env:"SIGNED_URL_MINUTES" envDefault:"15"`
	SignedURLClamp      bool `env:"SIGNED_URL_CLAMP" envDefault:"true"`
	SignedURLMinMinutes int  `env:"SIGNED_URL_MIN_MINUTES" envDefault:"1"`
	SignedURLMaxMinutes int  `env:"SIGNED_URL_MAX_MINUTES" envDefault:"50"`

	// Cloud Tasks (非同期生成)。QueueID が空の場合は無効です。
	QueueID             string `env:"CLOUD_TASKS_QUEUE_ID"`
	TaskAudienceURL     string `env:"TASK_AUDIENCE_URL"` // OIDC トークンの検証に使用する Audience URL
	ServiceAccountEmail string `env:"SERVICE_ACCOUNT_EMAIL"`

	SlackWebhookURL    string        `env:"SLACK_WEBHOOK_URL"`
	CORSAllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	ShutdownTimeout    time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"15s"`
}

// LoadConfig は .env と環境変数から設定を読み込み、Config 構造体を生成します。
func LoadConfig() (*Config, error) {
	// .env はローカル開発用です。存在しなくてもエラーにはしません。
	if err := godotenv.Load(); err != nil {
		slog.Debug(".env not loaded", "error", err)
	}
	return Parse()
}

// Parse は現在の環境変数のみから設定を構築します。
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env config: %w", err)
	}

	cfg.OutputGCSURI = strings.TrimSpace(cfg.OutputGCSURI)
	cfg.ServiceURL = strings.TrimRight(strings.TrimSpace(cfg.ServiceURL), "/")
	if cfg.TaskAudienceURL == "" {
		cfg.TaskAudienceURL = cfg.ServiceURL
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = DefaultShutdownTimeout
	}
	return cfg, nil
}

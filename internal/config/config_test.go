package config_test

import (
	"testing"
	"time"

	"veo-dream-web/internal/config"
	"veo-dream-web/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	t.Setenv("OUTPUT_GCS_URI", " gs://dream-bucket/videos/ ")

	cfg, err := config.Parse()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "gs://dream-bucket/videos/", cfg.OutputGCSURI)
	assert.Equal(t, "veo-3.0-generate-001", cfg.Model)
	assert.Equal(t, "16:9", cfg.AspectRatio)
	assert.Equal(t, int32(8), cfg.DurationSeconds)
	assert.Equal(t, 10*time.Second, cfg.PollInterval)
	assert.Equal(t, 0, cfg.MaxPolls)
	assert.Equal(t, domain.DefaultValidityPolicy, cfg.ValidityPolicy())
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, cfg.ServiceURL, cfg.TaskAudienceURL)
	assert.False(t, cfg.AsyncEnabled())
	assert.NoError(t, config.ValidateEssentialConfig(cfg))
}

func TestParse_Overrides(t *testing.T) {
	t.Setenv("VEO_POLL_INTERVAL", "15s")
	t.Setenv("VEO_DURATION_SECONDS", "0")
	t.Setenv("SIGNED_URL_CLAMP", "false")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:5173,https://dream.example.com")
	t.Setenv("SERVICE_URL", "https://dream.example.com/")

	cfg, err := config.Parse()
	require.NoError(t, err)

	assert.Equal(t, 15*time.Second, cfg.PollInterval)
	assert.Equal(t, int32(0), cfg.DurationSeconds)
	assert.False(t, cfg.ValidityPolicy().Clamp)
	assert.Equal(t, []string{"http://localhost:5173", "https://dream.example.com"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "https://dream.example.com", cfg.ServiceURL)
	assert.Equal(t, "https://dream.example.com", cfg.TaskAudienceURL)
}

func TestValidateOutputURI(t *testing.T) {
	assert.NoError(t, config.ValidateOutputURI("gs://b/videos/"))

	for _, uri := range []string{"", "b/videos", "https://storage.googleapis.com/b"} {
		assert.ErrorIs(t, config.ValidateOutputURI(uri), domain.ErrConfiguration, uri)
	}
}

func TestValidateEssentialConfig(t *testing.T) {
	base := func() *config.Config {
		cfg, err := config.Parse()
		require.NoError(t, err)
		return cfg
	}

	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{name: "non-positive poll interval", mutate: func(c *config.Config) { c.PollInterval = 0 }},
		{name: "negative duration", mutate: func(c *config.Config) { c.DurationSeconds = -1 }},
		{name: "negative max polls", mutate: func(c *config.Config) { c.MaxPolls = -1 }},
		{name: "inverted clamp range", mutate: func(c *config.Config) { c.SignedURLMinMinutes = 60 }},
		{name: "async without project", mutate: func(c *config.Config) {
			c.QueueID = "veo-queue"
			c.ProjectID = ""
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			assert.Error(t, config.ValidateEssentialConfig(cfg))
		})
	}
}

func TestNewGenerationRequest(t *testing.T) {
	t.Setenv("OUTPUT_GCS_URI", "gs://b/out/")
	cfg, err := config.Parse()
	require.NoError(t, err)

	req := cfg.NewGenerationRequest("a dream")
	assert.Equal(t, domain.GenerationRequest{
		Model:           "veo-3.0-generate-001",
		Prompt:          "a dream",
		AspectRatio:     "16:9",
		OutputURI:       "gs://b/out/",
		DurationSeconds: 8,
	}, req)
}

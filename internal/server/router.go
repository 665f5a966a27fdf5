package server

import (
	"net/http"

	"veo-dream-web/internal/adapters"
	"veo-dream-web/internal/builder"
	"veo-dream-web/internal/config"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter は、ミドルウェアとルーティングを統合した http.Handler を構築します。
func NewRouter(cfg *config.Config, h *builder.AppHandlers) http.Handler {
	r := chi.NewRouter()

	setupCommonMiddleware(r, cfg)
	setupRoutes(r, h)

	return r
}

func setupCommonMiddleware(r *chi.Mux, cfg *config.Config) {
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.CleanPath)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
}

func setupRoutes(r chi.Router, h *builder.AppHandlers) {
	// --- 運用ルート ---
	r.Get("/healthz", h.API.Healthz)
	r.Handle("/metrics", promhttp.Handler())

	// --- 公開 API ---
	r.Post("/generate-video", h.API.GenerateVideo)

	if h.Worker == nil {
		return
	}
	r.Post("/generate-video/async", h.API.HandleSubmit)

	// --- Cloud Tasks 専用ルート (Worker 用) ---
	r.Group(func(r chi.Router) {
		r.Use(h.Auth.TaskOIDCVerificationMiddleware)
		r.Post(adapters.WorkerPath, h.Worker.GenerateTask)
	})
}

package builder

import (
	"veo-dream-web/internal/app"
	"veo-dream-web/internal/controllers/auth"
	"veo-dream-web/internal/controllers/worker"
	"veo-dream-web/internal/server/handlers"
)

// AppHandlers は生成されたすべての HTTP ハンドラーを保持する構造体です。
// server パッケージはこの構造体を受け取ってルーティングを行います。
type AppHandlers struct {
	API *handlers.Handler
	// Auth と Worker は非同期生成が有効な場合のみ設定されます。
	Auth   *auth.Handler
	Worker *worker.Handler
}

// BuildHandlers は各ハンドラーの依存関係をすべて組み立て、AppHandlers 構造体を返します。
func BuildHandlers(container *app.Container) *AppHandlers {
	h := &AppHandlers{
		API: handlers.NewHandler(container.Config, container.Pipeline, container.TaskAdapter),
	}
	if container.TaskAdapter != nil {
		h.Auth = auth.NewHandler(container.Config.TaskAudienceURL)
		h.Worker = worker.NewHandler(container.Pipeline)
	}
	return h
}

package handlers

import "net/http"

// Healthz は死活監視用のエンドポイントです。
func (h *Handler) Healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

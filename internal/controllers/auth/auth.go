package auth

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"google.golang.org/api/idtoken"
)

// ValidateFunc は ID トークンを検証し、主体 (sub) を返します。
type ValidateFunc func(ctx context.Context, token, audience string) (subject string, err error)

// Handler は Cloud Tasks から届くリクエストの OIDC トークンを検証します。
type Handler struct {
	taskAudienceURL string
	validate        ValidateFunc
}

// NewHandler は Google の公開鍵で署名を検証する Handler を作成します。
func NewHandler(taskAudienceURL string) *Handler {
	return NewHandlerWithValidator(taskAudienceURL, validateIDToken)
}

// NewHandlerWithValidator は検証処理を差し替えた Handler を作成します。
func NewHandlerWithValidator(taskAudienceURL string, validate ValidateFunc) *Handler {
	return &Handler{
		taskAudienceURL: taskAudienceURL,
		validate:        validate,
	}
}

func validateIDToken(ctx context.Context, token, audience string) (string, error) {
	payload, err := idtoken.Validate(ctx, token, audience)
	if err != nil {
		return "", err
	}
	return payload.Subject, nil
}

// TaskOIDCVerificationMiddleware は「Cloud Tasks」の OIDC トークンを検証するミドルウェアです
func (h *Handler) TaskOIDCVerificationMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			slog.WarnContext(r.Context(), "Authorization header is missing")
			http.Error(w, "Unauthorized: OIDC token required", http.StatusUnauthorized)
			return
		}

		// Audience が空の場合はすべて拒否する
		if h.taskAudienceURL == "" {
			slog.ErrorContext(r.Context(), "TaskAudienceURL is not configured; rejecting task request")
			http.Error(w, "Internal Server Configuration Error", http.StatusInternalServerError)
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		subject, err := h.validate(r.Context(), token, h.taskAudienceURL)
		if err != nil {
			slog.WarnContext(r.Context(), "ID token validation failed",
				"error", err,
				"audience", h.taskAudienceURL,
			)
			http.Error(w, "Invalid OIDC token", http.StatusForbidden)
			return
		}

		slog.DebugContext(r.Context(), "Cloud Tasks request authenticated", "sub", subject)
		next.ServeHTTP(w, r)
	})
}

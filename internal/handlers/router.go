// internal/handlers/router.go
package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"jp_wordbook/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// Pinger はヘルスチェック対象
type Pinger interface {
	Ping(ctx context.Context) error
}

// RouterDeps はルーターの依存関係
type RouterDeps struct {
	Logger   *slog.Logger
	Words    *WordHandler
	Progress *ProgressHandler
	Assets   http.Handler
	Health   Pinger
	// APIMiddlewares は /api/v1 にだけ適用する（CORS など）
	APIMiddlewares []func(http.Handler) http.Handler
}

// NewRouter は API と静的ファイルのルーティングを組み立てます。
// /api/v1 と /health 以外のパスはすべて静的ファイルサーバーに渡します。
func NewRouter(deps RouterDeps) chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(deps.Logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Route("/api/v1", func(r chi.Router) {
		for _, mw := range deps.APIMiddlewares {
			r.Use(mw)
		}
		r.Route("/words", func(r chi.Router) {
			r.Get("/", deps.Words.GetWords)
			r.Get("/{word_id}", deps.Words.GetWord)
		})
		r.Route("/progress", func(r chi.Router) {
			r.Get("/", deps.Progress.GetProgress)
			r.Put("/", deps.Progress.PutProgress)
			r.Put("/{word_id}/steps/{step}", deps.Progress.PutMemoryStep)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if deps.Health != nil {
			if err := deps.Health.Ping(r.Context()); err != nil {
				middleware.GetLogger(r.Context()).ErrorContext(r.Context(), "Health check failed", slog.Any("error", err))
				http.Error(w, "Health check failed", http.StatusInternalServerError)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Handle("/*", deps.Assets)
	return r
}

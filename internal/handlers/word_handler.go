// internal/handlers/word_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"jp_wordbook/internal/middleware"
	"jp_wordbook/internal/service"
	"jp_wordbook/internal/webutil"

	"github.com/go-chi/chi/v5"
)

type WordHandler struct {
	service service.WordService
}

func NewWordHandler(s service.WordService) *WordHandler {
	return &WordHandler{service: s}
}

// GetWords は単語リストを返すハンドラ
func (h *WordHandler) GetWords(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "GetWords"))

	list := h.service.ListWords(r.Context())
	webutil.RespondWithJSON(w, http.StatusOK, list, logger)
}

// GetWord は単語1件を返すハンドラ
func (h *WordHandler) GetWord(w http.ResponseWriter, r *http.Request) {
	wordID := chi.URLParam(r, "word_id")
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "GetWord"), slog.String("word_id", wordID))

	word, err := h.service.GetWord(r.Context(), wordID)
	if err != nil {
		logger.Warn("Error getting word in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, word, logger)
}

// internal/handlers/progress_handler.go
package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"jp_wordbook/internal/middleware"
	"jp_wordbook/internal/model"
	"jp_wordbook/internal/service"
	"jp_wordbook/internal/webutil"

	"github.com/go-chi/chi/v5"
)

type ProgressHandler struct {
	service service.ProgressService
}

func NewProgressHandler(s service.ProgressService) *ProgressHandler {
	return &ProgressHandler{service: s}
}

// GetProgress は保存済みの進捗マップを返すハンドラ
func (h *ProgressHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "GetProgress"))

	progress, err := h.service.GetProgress(r.Context())
	if err != nil {
		logger.Error("Error getting progress in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	if progress == nil {
		progress = model.Progress{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, progress, logger)
}

// PutProgress は進捗マップ全体を置き換えるハンドラ
func (h *ProgressHandler) PutProgress(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "PutProgress"))

	var req model.Progress
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput))
		return
	}

	progress, err := h.service.ReplaceProgress(r.Context(), req)
	if err != nil {
		logger.Warn("Error replacing progress in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, progress, logger)
}

// PutMemoryStep はチェックボックス1つ分の変更を適用するハンドラ
func (h *ProgressHandler) PutMemoryStep(w http.ResponseWriter, r *http.Request) {
	wordID := chi.URLParam(r, "word_id")
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "PutMemoryStep"), slog.String("word_id", wordID))

	stepStr := chi.URLParam(r, "step")
	step, err := strconv.Atoi(stepStr)
	if err != nil {
		logger.Warn("Invalid step in URL", slog.String("step", stepStr))
		webutil.HandleError(w, logger, model.NewAppError("INVALID_URL_PARAM", "stepの形式が正しくありません。", "step", model.ErrInvalidInput))
		return
	}

	var req model.MemoryStepRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput))
		return
	}
	if err := webutil.Validator.Struct(req); err != nil {
		logger.Warn("Validation failed", slog.Any("error", err))
		webutil.HandleError(w, logger, webutil.NewValidationError(err))
		return
	}

	resp, err := h.service.SetMemoryStep(r.Context(), wordID, step, *req.Checked)
	if err != nil {
		logger.Warn("Error setting memory step in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

package service

import (
	"context"
	"log/slog"

	"jp_wordbook/internal/middleware"
	"jp_wordbook/internal/model"
	"jp_wordbook/internal/words"
)

type WordService interface {
	ListWords(ctx context.Context) []model.Word
	GetWord(ctx context.Context, wordID string) (model.Word, error)
}

type wordService struct {
	catalog *words.Catalog
}

func NewWordService(catalog *words.Catalog) WordService {
	return &wordService{catalog: catalog}
}

func (s *wordService) ListWords(ctx context.Context) []model.Word {
	list := s.catalog.All()
	middleware.GetLogger(ctx).DebugContext(ctx, "Listed words", slog.Int("count", len(list)))
	return list
}

func (s *wordService) GetWord(ctx context.Context, wordID string) (model.Word, error) {
	w, ok := s.catalog.Find(wordID)
	if !ok {
		return model.Word{}, model.NewAppError("WORD_NOT_FOUND", "単語が見つかりません。", "word_id", model.ErrNotFound)
	}
	return w, nil
}

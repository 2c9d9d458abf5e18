package service

//go:generate mockery --name ProgressService --output ./mocks --outpkg mocks --case=underscore

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"jp_wordbook/internal/middleware"
	"jp_wordbook/internal/model"
	"jp_wordbook/internal/store"
	"jp_wordbook/internal/words"
)

type ProgressService interface {
	GetProgress(ctx context.Context) (model.Progress, error)
	ReplaceProgress(ctx context.Context, progress model.Progress) (model.Progress, error)
	SetMemoryStep(ctx context.Context, wordID string, step int, checked bool) (*model.MemoryStepResponse, error)
}

// progressService はブラウザと同じキーで進捗スナップショットをサーバー側に保存します。
// ブラウザ側と違い、ストレージのエラーは呼び出し元に返します。
type progressService struct {
	kv      store.KeyValue
	catalog *words.Catalog

	// 読み込み→変更→保存 を直列にする
	mu sync.Mutex
}

func NewProgressService(kv store.KeyValue, catalog *words.Catalog) ProgressService {
	return &progressService{kv: kv, catalog: catalog}
}

func (s *progressService) GetProgress(ctx context.Context) (model.Progress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

func (s *progressService) ReplaceProgress(ctx context.Context, progress model.Progress) (model.Progress, error) {
	for wordID, count := range progress {
		if _, ok := s.catalog.Find(wordID); !ok {
			return nil, model.NewAppError("WORD_NOT_FOUND", fmt.Sprintf("単語 %q は存在しません。", wordID), "word_id", model.ErrInvalidInput)
		}
		if count < 0 || count > model.MemorySteps {
			return nil, model.NewAppError("VALIDATION_ERROR", fmt.Sprintf("暗記ステップ数は0以上%d以下で指定してください。", model.MemorySteps), "count", model.ErrInvalidInput)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if progress == nil {
		progress = model.Progress{}
	}
	if err := s.save(ctx, progress); err != nil {
		return nil, err
	}
	middleware.GetLogger(ctx).InfoContext(ctx, "Progress replaced", slog.Int("words", len(progress)))
	return progress.Clone(), nil
}

// SetMemoryStep はチェックボックス1つ分の変更を適用します（ブラウザの描画と同じ規則）
func (s *progressService) SetMemoryStep(ctx context.Context, wordID string, step int, checked bool) (*model.MemoryStepResponse, error) {
	logger := middleware.GetLogger(ctx).With(slog.String("word_id", wordID))

	if _, ok := s.catalog.Find(wordID); !ok {
		return nil, model.NewAppError("WORD_NOT_FOUND", "単語が見つかりません。", "word_id", model.ErrNotFound)
	}
	if step < 1 || step > model.MemorySteps {
		return nil, model.NewAppError("VALIDATION_ERROR", fmt.Sprintf("ステップは1以上%d以下で指定してください。", model.MemorySteps), "step", model.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	progress, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	count := model.NextMemoryCount(step, checked)
	progress.Set(wordID, count)
	if err := s.save(ctx, progress); err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "Memory step updated", slog.Int("step", step), slog.Bool("checked", checked), slog.Int("count", count))
	return &model.MemoryStepResponse{
		WordID: wordID,
		Count:  count,
		Steps:  model.MemoryStepStates(count),
	}, nil
}

// load は壊れた値を空のマップとして扱います（ブラウザ側の ProgressStore と同じ）
func (s *progressService) load(ctx context.Context) (model.Progress, error) {
	raw, ok, err := s.kv.GetItem(ctx, model.ProgressStorageKey)
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "学習進捗の取得に失敗しました。", "", fmt.Errorf("get progress: %w: %w", err, model.ErrInternalServer))
	}
	if !ok || raw == "" {
		return model.Progress{}, nil
	}
	progress, err := store.Decode(raw)
	if err != nil {
		middleware.GetLogger(ctx).WarnContext(ctx, "Stored progress is corrupt, treating as empty", slog.Any("error", err))
		return model.Progress{}, nil
	}
	return progress, nil
}

func (s *progressService) save(ctx context.Context, progress model.Progress) error {
	raw, err := store.Encode(progress)
	if err != nil {
		return fmt.Errorf("encode progress: %w", err)
	}
	if err := s.kv.SetItem(ctx, model.ProgressStorageKey, raw); err != nil {
		return model.NewAppError("INTERNAL_SERVER_ERROR", "学習進捗の保存に失敗しました。", "", fmt.Errorf("set progress: %w: %w", err, model.ErrInternalServer))
	}
	return nil
}

// Package store は暗記進捗のスナップショットをキー・バリューストレージに保存します。
package store

//go:generate mockery --name KeyValue --output ./mocks --outpkg mocks --case=underscore

import (
	"context"
	"encoding/json"
	"log/slog"

	"jp_wordbook/internal/model"
)

// KeyValue は文字列のキー・バリューストレージ（ブラウザの localStorage 相当）です
type KeyValue interface {
	GetItem(ctx context.Context, key string) (value string, ok bool, err error)
	SetItem(ctx context.Context, key, value string) error
}

// ProgressStore は進捗マップ全体を1つのキーに JSON で保存します。
// 読み書きの失敗はログに出すだけで呼び出し元には返しません。
type ProgressStore struct {
	kv     KeyValue
	key    string
	logger *slog.Logger
}

func NewProgressStore(kv KeyValue, logger *slog.Logger) *ProgressStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProgressStore{
		kv:     kv,
		key:    model.ProgressStorageKey,
		logger: logger.With(slog.String("storage_key", model.ProgressStorageKey)),
	}
}

// Load は保存済みの進捗を返します。未保存・読み込み失敗・壊れた値の場合は空のマップ
func (s *ProgressStore) Load(ctx context.Context) model.Progress {
	raw, ok, err := s.kv.GetItem(ctx, s.key)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to read progress", slog.Any("error", err))
		return model.Progress{}
	}
	if !ok || raw == "" {
		return model.Progress{}
	}

	progress, err := Decode(raw)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to parse stored progress, starting empty", slog.Any("error", err))
		return model.Progress{}
	}
	return progress
}

// Save は進捗マップ全体を上書き保存します。失敗はログのみ
func (s *ProgressStore) Save(ctx context.Context, progress model.Progress) {
	raw, err := Encode(progress)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to encode progress", slog.Any("error", err))
		return
	}
	if err := s.kv.SetItem(ctx, s.key, raw); err != nil {
		s.logger.ErrorContext(ctx, "Failed to save progress", slog.Any("error", err))
		return
	}
	s.logger.DebugContext(ctx, "Progress saved", slog.Int("words", len(progress)))
}

// Encode は進捗マップを JSON にします。キーはソートされるので同じマップは同じバイト列になる
func Encode(progress model.Progress) (string, error) {
	if progress == nil {
		progress = model.Progress{}
	}
	b, err := json.Marshal(progress)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Decode は JSON を進捗マップにします。範囲外の値は [0, MemorySteps] に丸める
func Decode(raw string) (model.Progress, error) {
	var progress model.Progress
	if err := json.Unmarshal([]byte(raw), &progress); err != nil {
		return nil, err
	}
	if progress == nil {
		// "null"
		return model.Progress{}, nil
	}
	for id, n := range progress {
		progress[id] = model.ClampMemoryCount(n)
	}
	return progress, nil
}

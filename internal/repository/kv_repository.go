package repository

import (
	"context"
	"errors"
	"log/slog"

	"jp_wordbook/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormKVRepository は kv_entries テーブルを store.KeyValue として使うためのリポジトリです
type GormKVRepository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewGormKVRepository(db *gorm.DB, logger *slog.Logger) *GormKVRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &GormKVRepository{db: db, logger: logger}
}

func (r *GormKVRepository) GetItem(ctx context.Context, key string) (string, bool, error) {
	var entry model.KVEntry
	result := r.db.WithContext(ctx).Where("key = ?", key).First(&entry)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		r.logger.ErrorContext(ctx, "Failed to get kv entry", slog.String("key", key), slog.Any("error", result.Error))
		return "", false, result.Error
	}
	return entry.Value, true, nil
}

// SetItem はキー単位で上書き（無ければ作成）します
func (r *GormKVRepository) SetItem(ctx context.Context, key, value string) error {
	entry := model.KVEntry{
		EntryID: uuid.New(),
		Key:     key,
		Value:   value,
	}
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry)
	if result.Error != nil {
		r.logger.ErrorContext(ctx, "Failed to upsert kv entry", slog.String("key", key), slog.Any("error", result.Error))
		return result.Error
	}
	return nil
}

// Ping はヘルスチェック用
func (r *GormKVRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// internal/model/progress.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// MemorySteps は1単語あたりの暗記チェックボックスの数
const MemorySteps = 5

// ProgressStorageKey は進捗スナップショットを保存するキー（ブラウザの localStorage と共通）
const ProgressStorageKey = "jp-wordbook-progress"

// Progress は単語ID -> チェック済みステップ数 (0..MemorySteps) のマップです
type Progress map[string]int

// Count は単語の暗記ステップ数を返します。未登録なら 0
func (p Progress) Count(wordID string) int {
	return ClampMemoryCount(p[wordID])
}

// Set は単語の暗記ステップ数を設定します。範囲外の値は丸められます
func (p Progress) Set(wordID string, count int) {
	p[wordID] = ClampMemoryCount(count)
}

// Clone は独立したコピーを返します
func (p Progress) Clone() Progress {
	out := make(Progress, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// ClampMemoryCount は値を [0, MemorySteps] に丸めます
func ClampMemoryCount(count int) int {
	switch {
	case count < 0:
		return 0
	case count > MemorySteps:
		return MemorySteps
	default:
		return count
	}
}

// NextMemoryCount は step 番目 (1始まり) のチェックボックスが変化した後のステップ数を返します。
// チェックされたら step、外されたら step-1。
func NextMemoryCount(step int, checked bool) int {
	if checked {
		return ClampMemoryCount(step)
	}
	return ClampMemoryCount(step - 1)
}

// MemoryStepStates は count に対応する各チェックボックスの状態を返します (1..count が true)
func MemoryStepStates(count int) []bool {
	states := make([]bool, MemorySteps)
	for i := range states {
		states[i] = i < count
	}
	return states
}

// KVEntry はサーバー側のキー・バリューストレージの1行です
type KVEntry struct {
	EntryID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Key       string    `gorm:"not null;uniqueIndex"`
	Value     string    `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (KVEntry) TableName() string {
	return "kv_entries"
}

// MemoryStepRequest は暗記ステップ変更リクエストDTO
type MemoryStepRequest struct {
	Checked *bool `json:"checked" validate:"required"`
}

// MemoryStepResponse は暗記ステップ変更後の状態
type MemoryStepResponse struct {
	WordID string `json:"word_id"`
	Count  int    `json:"count"`
	Steps  []bool `json:"steps"`
}

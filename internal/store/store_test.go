package store_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"jp_wordbook/internal/model"
	"jp_wordbook/internal/store"
	"jp_wordbook/internal/store/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, nil)), &buf
}

func TestProgressStore_Load(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		stored  *string
		want    model.Progress
		wantLog string
	}{
		{name: "未保存なら空のマップ", stored: nil, want: model.Progress{}},
		{name: "空文字なら空のマップ", stored: ptr(""), want: model.Progress{}},
		{name: "保存済みの値", stored: ptr(`{"nomu":2,"taberu":5}`), want: model.Progress{"nomu": 2, "taberu": 5}},
		{name: "壊れたJSONは空のマップ", stored: ptr(`{"taberu":`), want: model.Progress{}, wantLog: "Failed to parse stored progress"},
		{name: "JSONの型違いも空のマップ", stored: ptr(`["taberu"]`), want: model.Progress{}, wantLog: "Failed to parse stored progress"},
		{name: "nullは空のマップ", stored: ptr(`null`), want: model.Progress{}},
		{name: "範囲外の値は丸める", stored: ptr(`{"a":9,"b":-1}`), want: model.Progress{"a": 5, "b": 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := store.NewMemoryKV()
			if tt.stored != nil {
				require.NoError(t, kv.SetItem(ctx, model.ProgressStorageKey, *tt.stored))
			}
			logger, buf := newTestLogger()
			s := store.NewProgressStore(kv, logger)

			var got model.Progress
			require.NotPanics(t, func() { got = s.Load(ctx) })
			assert.Equal(t, tt.want, got)
			if tt.wantLog != "" {
				assert.Contains(t, buf.String(), tt.wantLog)
			}
		})
	}
}

func TestProgressStore_LoadReadError(t *testing.T) {
	ctx := context.Background()
	kv := mocks.NewKeyValue(t)
	kv.On("GetItem", ctx, model.ProgressStorageKey).Return("", false, errors.New("security error")).Once()

	logger, buf := newTestLogger()
	got := store.NewProgressStore(kv, logger).Load(ctx)

	assert.Equal(t, model.Progress{}, got)
	assert.Contains(t, buf.String(), "Failed to read progress")
}

func TestProgressStore_SaveOverwritesSnapshot(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryKV()
	s := store.NewProgressStore(kv, nil)

	s.Save(ctx, model.Progress{"taberu": 3})
	s.Save(ctx, model.Progress{"nomu": 1})

	raw, ok, err := kv.GetItem(ctx, model.ProgressStorageKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `{"nomu":1}`, raw, "最後の書き込みが全体を上書きする")
}

func TestProgressStore_SaveFailureIsSwallowed(t *testing.T) {
	ctx := context.Background()
	kv := mocks.NewKeyValue(t)
	kv.On("SetItem", ctx, model.ProgressStorageKey, mock.AnythingOfType("string")).
		Return(errors.New("QuotaExceededError")).Once()

	logger, buf := newTestLogger()
	s := store.NewProgressStore(kv, logger)

	require.NotPanics(t, func() { s.Save(ctx, model.Progress{"taberu": 1}) })
	assert.Contains(t, buf.String(), "Failed to save progress")
	assert.Contains(t, buf.String(), "QuotaExceededError")
}

func TestProgressStore_RoundTripKeepsBytes(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryKV()
	s := store.NewProgressStore(kv, nil)

	s.Save(ctx, model.Progress{"tenki": 2, "benkyou": 5, "iku": 0, "miru": 1})
	before, _, _ := kv.GetItem(ctx, model.ProgressStorageKey)

	s.Save(ctx, s.Load(ctx))
	after, _, _ := kv.GetItem(ctx, model.ProgressStorageKey)

	assert.Equal(t, before, after)
}

func TestEncode_Nil(t *testing.T) {
	raw, err := store.Encode(nil)
	require.NoError(t, err)
	assert.Equal(t, "{}", raw)
}

func ptr(s string) *string { return &s }

// internal/handlers/main_test.go
package handlers_test

import (
	"fmt"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"jp_wordbook/internal/assets"
	"jp_wordbook/internal/config"
	"jp_wordbook/internal/handlers"
	"jp_wordbook/internal/repository"
	"jp_wordbook/internal/service"
	"jp_wordbook/internal/words"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const testWordsYAML = `
- {id: taberu, word: 食べる, wordPronunciation: たべる, meaning: 먹다, example: パンを食べます。, examplePronunciation: パンを たべます。}
- {id: nomu, word: 飲む, wordPronunciation: のむ, meaning: 마시다, example: 水を飲みます。, examplePronunciation: みずを のみます。}
`

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// newTestServer は本番と同じルーターを、インメモリSQLiteとテスト用の静的ファイルで起動します。
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	catalog, err := words.Parse([]byte(testWordsYAML))
	require.NoError(t, err)

	db, err := repository.NewDB(config.DriverSQLite, fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()), testLogger)
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	kvRepo := repository.NewGormKVRepository(db, testLogger)

	static := fstest.MapFS{
		"index.html": {Data: []byte(`<!doctype html><section id="word-list"></section>`)},
		"style.css":  {Data: []byte(`body{}`)},
	}

	router := handlers.NewRouter(handlers.RouterDeps{
		Logger:   testLogger,
		Words:    handlers.NewWordHandler(service.NewWordService(catalog)),
		Progress: handlers.NewProgressHandler(service.NewProgressService(kvRepo, catalog)),
		Assets:   assets.NewServer(static, config.DefaultIndexDocument, testLogger),
		Health:   kvRepo,
	})

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

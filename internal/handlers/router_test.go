package handlers_test

import (
	"net/http"
	"testing"

	"jp_wordbook/internal/assets"
	"jp_wordbook/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouter_StaticAssets(t *testing.T) {
	server := newTestServer(t)

	resp := sendRequest(t, server, httpRequestDetails{Method: http.MethodGet, Path: "/"}, http.StatusOK)
	assert.Equal(t, "text/html; charset=utf-8", resp.Header.Get("Content-Type"))
	assert.Contains(t, string(readBody(t, resp)), `id="word-list"`)

	resp = sendRequest(t, server, httpRequestDetails{Method: http.MethodGet, Path: "/style.css"}, http.StatusOK)
	assert.Equal(t, "text/css; charset=utf-8", resp.Header.Get("Content-Type"))

	resp = sendRequest(t, server, httpRequestDetails{Method: http.MethodGet, Path: "/nope.js"}, http.StatusNotFound)
	assert.Equal(t, assets.NotFoundMessage, string(readBody(t, resp)))
}

func TestRouter_Health(t *testing.T) {
	server := newTestServer(t)
	resp := sendRequest(t, server, httpRequestDetails{Method: http.MethodGet, Path: "/health"}, http.StatusOK)
	assert.Equal(t, "OK", string(readBody(t, resp)))
}

func TestRouter_Words(t *testing.T) {
	server := newTestServer(t)

	resp := sendRequest(t, server, httpRequestDetails{Method: http.MethodGet, Path: "/api/v1/words"}, http.StatusOK)
	var list []model.Word
	decodeJSON(t, resp, &list)
	require.Len(t, list, 2)
	assert.Equal(t, "taberu", list[0].ID)
	assert.Equal(t, "たべる", list[0].WordPronunciation)

	resp = sendRequest(t, server, httpRequestDetails{Method: http.MethodGet, Path: "/api/v1/words/nomu"}, http.StatusOK)
	var word model.Word
	decodeJSON(t, resp, &word)
	assert.Equal(t, "飲む", word.Word)

	resp = sendRequest(t, server, httpRequestDetails{Method: http.MethodGet, Path: "/api/v1/words/unknown"}, http.StatusNotFound)
	verifyErrorResponse(t, resp, "WORD_NOT_FOUND")
}

func TestRouter_ProgressFlow(t *testing.T) {
	server := newTestServer(t)

	// 初期状態は空
	resp := sendRequest(t, server, httpRequestDetails{Method: http.MethodGet, Path: "/api/v1/progress"}, http.StatusOK)
	var progress model.Progress
	decodeJSON(t, resp, &progress)
	assert.Empty(t, progress)

	// 3番目をチェック
	resp = sendRequest(t, server, httpRequestDetails{
		Method: http.MethodPut,
		Path:   "/api/v1/progress/taberu/steps/3",
		Body:   map[string]bool{"checked": true},
	}, http.StatusOK)
	var step model.MemoryStepResponse
	decodeJSON(t, resp, &step)
	assert.Equal(t, 3, step.Count)
	assert.Equal(t, []bool{true, true, true, false, false}, step.Steps)

	// 2番目を外す
	resp = sendRequest(t, server, httpRequestDetails{
		Method: http.MethodPut,
		Path:   "/api/v1/progress/taberu/steps/2",
		Body:   map[string]bool{"checked": false},
	}, http.StatusOK)
	decodeJSON(t, resp, &step)
	assert.Equal(t, 1, step.Count)

	resp = sendRequest(t, server, httpRequestDetails{Method: http.MethodGet, Path: "/api/v1/progress"}, http.StatusOK)
	progress = nil
	decodeJSON(t, resp, &progress)
	assert.Equal(t, model.Progress{"taberu": 1}, progress)

	// 全体の置き換え
	resp = sendRequest(t, server, httpRequestDetails{
		Method: http.MethodPut,
		Path:   "/api/v1/progress",
		Body:   model.Progress{"nomu": 5},
	}, http.StatusOK)
	progress = nil
	decodeJSON(t, resp, &progress)
	assert.Equal(t, model.Progress{"nomu": 5}, progress)
}

func TestRouter_ProgressErrors(t *testing.T) {
	server := newTestServer(t)

	tests := []struct {
		name     string
		details  httpRequestDetails
		wantCode int
		wantErr  string
	}{
		{
			name:     "存在しない単語",
			details:  httpRequestDetails{Method: http.MethodPut, Path: "/api/v1/progress/unknown/steps/1", Body: map[string]bool{"checked": true}},
			wantCode: http.StatusNotFound,
			wantErr:  "WORD_NOT_FOUND",
		},
		{
			name:     "ステップが範囲外",
			details:  httpRequestDetails{Method: http.MethodPut, Path: "/api/v1/progress/taberu/steps/6", Body: map[string]bool{"checked": true}},
			wantCode: http.StatusBadRequest,
			wantErr:  "VALIDATION_ERROR",
		},
		{
			name:     "ステップが数値でない",
			details:  httpRequestDetails{Method: http.MethodPut, Path: "/api/v1/progress/taberu/steps/abc", Body: map[string]bool{"checked": true}},
			wantCode: http.StatusBadRequest,
			wantErr:  "INVALID_URL_PARAM",
		},
		{
			name:     "checkedが無い",
			details:  httpRequestDetails{Method: http.MethodPut, Path: "/api/v1/progress/taberu/steps/1", Body: map[string]string{}},
			wantCode: http.StatusBadRequest,
			wantErr:  "VALIDATION_ERROR",
		},
		{
			name:     "壊れたJSON",
			details:  httpRequestDetails{Method: http.MethodPut, Path: "/api/v1/progress", Body: `{"taberu":`},
			wantCode: http.StatusBadRequest,
			wantErr:  "INVALID_REQUEST_BODY",
		},
		{
			name:     "置き換えで範囲外の値",
			details:  httpRequestDetails{Method: http.MethodPut, Path: "/api/v1/progress", Body: model.Progress{"taberu": 9}},
			wantCode: http.StatusBadRequest,
			wantErr:  "VALIDATION_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := sendRequest(t, server, tt.details, tt.wantCode)
			verifyErrorResponse(t, resp, tt.wantErr)
		})
	}
}

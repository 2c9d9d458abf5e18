// helpers_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"jp_wordbook/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// httpRequestDetails はHTTPリクエストの送信に必要な情報をまとめます。
type httpRequestDetails struct {
	Method  string
	Path    string
	Body    interface{}
	Headers map[string]string
}

// sendRequest はHTTPリクエストを送信し、ステータスコードを検証してレスポンスを返します。
func sendRequest(t *testing.T, server *httptest.Server, details httpRequestDetails, expectedCode int) *http.Response {
	t.Helper()

	var reqBodyReader io.Reader
	if details.Body != nil {
		if strPayload, ok := details.Body.(string); ok {
			reqBodyReader = strings.NewReader(strPayload)
		} else {
			reqBodyBytes, err := json.Marshal(details.Body)
			require.NoError(t, err, "Failed to marshal request body")
			reqBodyReader = bytes.NewBuffer(reqBodyBytes)
		}
	}

	req, err := http.NewRequest(details.Method, server.URL+details.Path, reqBodyReader)
	require.NoError(t, err, "Failed to create request")
	if reqBodyReader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range details.Headers {
		req.Header.Set(key, value)
	}

	resp, err := server.Client().Do(req)
	require.NoError(t, err, "Failed to execute request")
	t.Cleanup(func() { resp.Body.Close() })

	assert.Equal(t, expectedCode, resp.StatusCode, "Status code mismatch for %s %s", details.Method, details.Path)
	return resp
}

// readBody はレスポンスボディを読み込みます
func readBody(t *testing.T, resp *http.Response) []byte {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "Failed to read response body")
	return b
}

// decodeJSON はレスポンスボディを dst にデコードします
func decodeJSON(t *testing.T, resp *http.Response, dst interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(readBody(t, resp), dst))
}

// verifyErrorResponse はエラーレスポンスのコードを検証します。
func verifyErrorResponse(t *testing.T, resp *http.Response, expectedCode string) {
	t.Helper()
	var errResp model.APIErrorResponse
	decodeJSON(t, resp, &errResp)
	assert.Equal(t, expectedCode, errResp.Error.Code)
}

// Package assets はコンテンツルート以下のファイルをそのまま返す静的ファイルサーバーです。
package assets

import (
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"path"
	"strings"

	"jp_wordbook/internal/middleware"
	"jp_wordbook/internal/webutil"
)

const (
	NotFoundMessage      = "파일을 찾을 수 없습니다."
	InternalErrorMessage = "서버 내부 오류가 발생했습니다."

	DefaultContentType = "application/octet-stream"
)

// 拡張子 -> Content-Type
var mimeTypes = map[string]string{
	".html": "text/html; charset=utf-8",
	".css":  "text/css; charset=utf-8",
	".js":   "text/javascript; charset=utf-8",
	".json": "application/json; charset=utf-8",
	".ico":  "image/x-icon",
	".wasm": "application/wasm",
}

// ContentType は拡張子から Content-Type を決めます
func ContentType(name string) string {
	if ct, ok := mimeTypes[strings.ToLower(path.Ext(name))]; ok {
		return ct
	}
	return DefaultContentType
}

// Server は fs.FS をコンテンツルートとしてファイルを返します。
// "/" はインデックスドキュメントに置き換えます。
type Server struct {
	fsys   fs.FS
	index  string
	logger *slog.Logger
}

func NewServer(fsys fs.FS, index string, logger *slog.Logger) *Server {
	if index == "" {
		index = "index.html"
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{fsys: fsys, index: index, logger: logger}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		webutil.RespondWithText(w, http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed))
		return
	}

	name := s.resolve(r.URL.Path)
	data, err := fs.ReadFile(s.fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			webutil.RespondWithText(w, http.StatusNotFound, NotFoundMessage)
			return
		}
		middleware.LoggerOr(r.Context(), s.logger).ErrorContext(r.Context(), "Failed to read static file", slog.String("path", r.URL.Path), slog.Any("error", err))
		webutil.RespondWithText(w, http.StatusInternalServerError, InternalErrorMessage)
		return
	}

	w.Header().Set("Content-Type", ContentType(name))
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	w.Write(data)
}

// resolve は URL パスを fs.FS 上の名前にします。".." はルートの外に出られない
func (s *Server) resolve(urlPath string) string {
	if urlPath == "" || urlPath == "/" {
		return s.index
	}
	name := strings.TrimPrefix(path.Clean("/"+urlPath), "/")
	if name == "" {
		return s.index
	}
	return name
}

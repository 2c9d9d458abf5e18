// Package web は既定のコンテンツルート（index.html, style.css, ローダー）を埋め込みます。
// wordbook.wasm と wasm_exec.js は make wasm で static/ に生成されます。
package web

import (
	"embed"
	"io/fs"
)

//go:embed static
var static embed.FS

// Static は static/ をルートにした FS を返します
func Static() fs.FS {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		// "static" は埋め込み時に存在が保証されている
		panic(err)
	}
	return sub
}

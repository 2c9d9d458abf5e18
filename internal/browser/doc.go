// Package browser はブラウザの API (DOM, localStorage, speechSynthesis, alert) を
// syscall/js で各インターフェースに結び付けます。GOOS=js GOARCH=wasm でのみビルドされます。
package browser

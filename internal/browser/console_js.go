//go:build js && wasm

package browser

import (
	"strings"
	"syscall/js"
)

// ConsoleWriter は slog の出力先として console.log / console.error を使います
type ConsoleWriter struct{}

func (ConsoleWriter) Write(p []byte) (int, error) {
	line := strings.TrimRight(string(p), "\n")
	method := "log"
	if strings.Contains(line, "level=ERROR") {
		method = "error"
	} else if strings.Contains(line, "level=WARN") {
		method = "warn"
	}
	js.Global().Get("console").Call(method, line)
	return len(p), nil
}

//go:build js && wasm

package browser

import (
	"context"
	"fmt"
	"syscall/js"
)

// LocalStorage は window.localStorage を store.KeyValue として使います
type LocalStorage struct{}

func (LocalStorage) GetItem(_ context.Context, key string) (value string, ok bool, err error) {
	defer recoverJSError(&err)
	v := js.Global().Get("localStorage").Call("getItem", key)
	if v.IsNull() {
		return "", false, nil
	}
	return v.String(), true, nil
}

// SetItem は容量超過 (QuotaExceededError) などの例外をエラーとして返します
func (LocalStorage) SetItem(_ context.Context, key, value string) (err error) {
	defer recoverJSError(&err)
	js.Global().Get("localStorage").Call("setItem", key, value)
	return nil
}

// syscall/js は JS の例外を panic(js.Error) で伝える
func recoverJSError(err *error) {
	if r := recover(); r != nil {
		if jsErr, ok := r.(js.Error); ok {
			*err = fmt.Errorf("localStorage: %w", jsErr)
			return
		}
		panic(r)
	}
}

// Package dom は描画処理が使う DOM の最小限の抽象です。
// ブラウザでは syscall/js による実装、テストではメモリ上の実装を使います。
package dom

// RoleAttribute はテンプレート内の要素を探すための属性
const RoleAttribute = "data-role"

// Handler はイベントリスナー
type Handler func(e *Event)

// Event はリスナーに渡されるイベント
type Event struct {
	Type string
	Key  string // keydown のときのキー ("Enter", " " など)

	defaultPrevented bool
}

func (e *Event) PreventDefault() {
	e.defaultPrevented = true
}

func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented
}

// Element は DOM 要素
type Element interface {
	// QueryRole は data-role が一致する最初の子孫要素を返します。無ければ nil
	QueryRole(role string) Element
	// Checkboxes は子孫の input[type=checkbox] を文書順に返します
	Checkboxes() []Element
	Parent() Element

	SetText(text string)
	Text() string
	SetAttribute(name, value string)
	RemoveAttribute(name string)
	HasAttribute(name string) bool
	GetAttribute(name string) string
	SetChecked(checked bool)
	Checked() bool

	AppendChild(child Element)
	// Clear は子要素をすべて削除します (innerHTML = "")
	Clear()
	// CloneNode は子孫を含めて複製します。イベントリスナーは複製されません
	CloneNode() Element
	AddEventListener(eventType string, h Handler)
}

// Document は要素を生成します
type Document interface {
	CreateElement(tag string) Element
}

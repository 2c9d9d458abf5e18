package dom

import (
	"sort"
	"strings"
)

// MemNode はメモリ上の DOM 要素です。ブラウザ無しで描画処理をテストするために使います
type MemNode struct {
	Tag       string
	attrs     map[string]string
	text      string
	checked   bool
	children  []*MemNode
	parent    *MemNode
	listeners map[string][]Handler
}

// MemDocument は MemNode を生成する Document
type MemDocument struct{}

func (MemDocument) CreateElement(tag string) Element {
	return NewMemNode(tag)
}

func NewMemNode(tag string) *MemNode {
	return &MemNode{
		Tag:       strings.ToLower(tag),
		attrs:     make(map[string]string),
		listeners: make(map[string][]Handler),
	}
}

// El はテンプレート組み立て用のヘルパー。attrs は name, value の組
func El(tag string, attrs ...string) *MemNode {
	n := NewMemNode(tag)
	for i := 0; i+1 < len(attrs); i += 2 {
		n.attrs[attrs[i]] = attrs[i+1]
	}
	return n
}

// With は子要素を追加して自身を返します
func (n *MemNode) With(children ...*MemNode) *MemNode {
	for _, c := range children {
		n.AppendChild(c)
	}
	return n
}

func (n *MemNode) QueryRole(role string) Element {
	if found := n.find(func(c *MemNode) bool { return c.attrs[RoleAttribute] == role }); found != nil {
		return found
	}
	return nil
}

func (n *MemNode) Checkboxes() []Element {
	var out []Element
	n.walk(func(c *MemNode) {
		if c.Tag == "input" && c.attrs["type"] == "checkbox" {
			out = append(out, c)
		}
	})
	return out
}

func (n *MemNode) Parent() Element {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

func (n *MemNode) SetText(text string) {
	for _, c := range n.children {
		c.parent = nil
	}
	n.children = nil
	n.text = text
}

func (n *MemNode) Text() string {
	var b strings.Builder
	b.WriteString(n.text)
	for _, c := range n.children {
		b.WriteString(c.Text())
	}
	return b.String()
}

func (n *MemNode) SetAttribute(name, value string) { n.attrs[name] = value }

func (n *MemNode) RemoveAttribute(name string) { delete(n.attrs, name) }

func (n *MemNode) HasAttribute(name string) bool {
	_, ok := n.attrs[name]
	return ok
}

func (n *MemNode) GetAttribute(name string) string { return n.attrs[name] }

func (n *MemNode) SetChecked(checked bool) { n.checked = checked }

func (n *MemNode) Checked() bool { return n.checked }

func (n *MemNode) AppendChild(child Element) {
	c := child.(*MemNode)
	if c.parent != nil {
		c.parent.removeChild(c)
	}
	c.parent = n
	n.children = append(n.children, c)
}

func (n *MemNode) Clear() {
	for _, c := range n.children {
		c.parent = nil
	}
	n.children = nil
	n.text = ""
}

func (n *MemNode) CloneNode() Element {
	return n.clone()
}

func (n *MemNode) AddEventListener(eventType string, h Handler) {
	n.listeners[eventType] = append(n.listeners[eventType], h)
}

// Children は直下の子要素
func (n *MemNode) Children() []*MemNode {
	out := make([]*MemNode, len(n.children))
	copy(out, n.children)
	return out
}

// Dispatch は登録済みのリスナーを順に呼び出します
func (n *MemNode) Dispatch(e *Event) {
	for _, h := range n.listeners[e.Type] {
		h(e)
	}
}

// Click はユーザーのクリックを再現します。チェックボックスは状態を反転して change も発火します
func (n *MemNode) Click() {
	if n.Tag == "input" && n.attrs["type"] == "checkbox" {
		n.checked = !n.checked
		n.Dispatch(&Event{Type: "click"})
		n.Dispatch(&Event{Type: "change"})
		return
	}
	n.Dispatch(&Event{Type: "click"})
}

// KeyDown は keydown イベントを発火し、イベントを返します
func (n *MemNode) KeyDown(key string) *Event {
	e := &Event{Type: "keydown", Key: key}
	n.Dispatch(e)
	return e
}

// ListenerCount は eventType のリスナー数
func (n *MemNode) ListenerCount(eventType string) int {
	return len(n.listeners[eventType])
}

// String はデバッグ用に簡易的な HTML を返します（属性は名前順）
func (n *MemNode) String() string {
	var b strings.Builder
	n.writeHTML(&b)
	return b.String()
}

func (n *MemNode) writeHTML(b *strings.Builder) {
	b.WriteString("<" + n.Tag)
	names := make([]string, 0, len(n.attrs))
	for k := range n.attrs {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		b.WriteString(" " + k + `="` + n.attrs[k] + `"`)
	}
	if n.checked {
		b.WriteString(" checked")
	}
	b.WriteString(">")
	b.WriteString(n.text)
	for _, c := range n.children {
		c.writeHTML(b)
	}
	b.WriteString("</" + n.Tag + ">")
}

func (n *MemNode) clone() *MemNode {
	c := NewMemNode(n.Tag)
	for k, v := range n.attrs {
		c.attrs[k] = v
	}
	c.text = n.text
	c.checked = n.checked
	for _, child := range n.children {
		cc := child.clone()
		cc.parent = c
		c.children = append(c.children, cc)
	}
	return c
}

func (n *MemNode) removeChild(child *MemNode) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			return
		}
	}
}

// find は子孫を深さ優先で探します（自身は含まない）
func (n *MemNode) find(match func(*MemNode) bool) *MemNode {
	for _, c := range n.children {
		if match(c) {
			return c
		}
		if found := c.find(match); found != nil {
			return found
		}
	}
	return nil
}

func (n *MemNode) walk(fn func(*MemNode)) {
	for _, c := range n.children {
		fn(c)
		c.walk(fn)
	}
}

//go:build js && wasm

package browser

import (
	"syscall/js"

	"jp_wordbook/internal/dom"
)

// Element は js.Value をラップした dom.Element
type Element struct {
	v     js.Value
	funcs *[]js.Func
}

// Document は window.document
type Document struct {
	v     js.Value
	funcs []js.Func
}

func NewDocument() *Document {
	return &Document{v: js.Global().Get("document")}
}

func (d *Document) CreateElement(tag string) dom.Element {
	return d.wrap(d.v.Call("createElement", tag))
}

// GetElementByID は id の要素を返します。無ければ nil
func (d *Document) GetElementByID(id string) dom.Element {
	v := d.v.Call("getElementById", id)
	if v.IsNull() || v.IsUndefined() {
		return nil
	}
	return d.wrap(v)
}

// TemplateCard は <template> の最初の要素を返します
func (d *Document) TemplateCard(id string) dom.Element {
	v := d.v.Call("getElementById", id)
	if v.IsNull() || v.IsUndefined() {
		return nil
	}
	first := v.Get("content").Get("firstElementChild")
	if first.IsNull() {
		return nil
	}
	return d.wrap(first)
}

// ReadyState は document.readyState
func (d *Document) ReadyState() string {
	return d.v.Get("readyState").String()
}

// AddEventListener は document にリスナーを登録します
func (d *Document) AddEventListener(eventType string, once bool, fn func()) {
	f := d.funcOf(func(js.Value, []js.Value) any {
		fn()
		return nil
	})
	d.v.Call("addEventListener", eventType, f, map[string]any{"once": once})
}

// Release は登録した js.Func をすべて解放します
func (d *Document) Release() {
	for _, f := range d.funcs {
		f.Release()
	}
	d.funcs = nil
}

func (d *Document) wrap(v js.Value) *Element {
	return &Element{v: v, funcs: &d.funcs}
}

func (d *Document) funcOf(fn func(this js.Value, args []js.Value) any) js.Func {
	f := js.FuncOf(fn)
	d.funcs = append(d.funcs, f)
	return f
}

func (e *Element) QueryRole(role string) dom.Element {
	v := e.v.Call("querySelector", "["+dom.RoleAttribute+"='"+role+"']")
	if v.IsNull() {
		return nil
	}
	return e.wrap(v)
}

func (e *Element) Checkboxes() []dom.Element {
	list := e.v.Call("querySelectorAll", "input[type='checkbox']")
	n := list.Get("length").Int()
	out := make([]dom.Element, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, e.wrap(list.Index(i)))
	}
	return out
}

func (e *Element) Parent() dom.Element {
	p := e.v.Get("parentElement")
	if p.IsNull() {
		return nil
	}
	return e.wrap(p)
}

func (e *Element) SetText(text string) { e.v.Set("textContent", text) }

func (e *Element) Text() string { return e.v.Get("textContent").String() }

func (e *Element) SetAttribute(name, value string) { e.v.Call("setAttribute", name, value) }

func (e *Element) RemoveAttribute(name string) { e.v.Call("removeAttribute", name) }

func (e *Element) HasAttribute(name string) bool { return e.v.Call("hasAttribute", name).Bool() }

func (e *Element) GetAttribute(name string) string {
	v := e.v.Call("getAttribute", name)
	if v.IsNull() {
		return ""
	}
	return v.String()
}

func (e *Element) SetChecked(checked bool) { e.v.Set("checked", checked) }

func (e *Element) Checked() bool { return e.v.Get("checked").Bool() }

func (e *Element) AppendChild(child dom.Element) {
	e.v.Call("appendChild", child.(*Element).v)
}

func (e *Element) Clear() { e.v.Set("innerHTML", "") }

func (e *Element) CloneNode() dom.Element {
	return e.wrap(e.v.Call("cloneNode", true))
}

func (e *Element) AddEventListener(eventType string, h dom.Handler) {
	f := js.FuncOf(func(_ js.Value, args []js.Value) any {
		ev := &dom.Event{Type: eventType}
		var raw js.Value
		if len(args) > 0 {
			raw = args[0]
			if k := raw.Get("key"); !k.IsUndefined() {
				ev.Key = k.String()
			}
		}
		h(ev)
		if ev.DefaultPrevented() && raw.Truthy() {
			raw.Call("preventDefault")
		}
		return nil
	})
	*e.funcs = append(*e.funcs, f)
	e.v.Call("addEventListener", eventType, f)
}

func (e *Element) wrap(v js.Value) *Element {
	return &Element{v: v, funcs: e.funcs}
}

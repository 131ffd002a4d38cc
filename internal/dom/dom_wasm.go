//go:build js && wasm

package dom

import (
	"errors"

	"github.com/hack-pad/safejs"
)

var ErrNoDocument = errors.New("dom: no document")

type element struct {
	v safejs.Value
}

func (e element) call(method string, args ...any) safejs.Value {
	r, err := e.v.Call(method, args...)
	if err != nil {
		return safejs.Undefined()
	}
	return r
}

func (e element) get(prop string) safejs.Value {
	r, err := e.v.Get(prop)
	if err != nil {
		return safejs.Undefined()
	}
	return r
}

func str(v safejs.Value) string {
	if v.Type() != safejs.TypeString {
		return ""
	}
	s, _ := v.String()
	return s
}

func num(v safejs.Value) float64 {
	if v.Type() != safejs.TypeNumber {
		return 0
	}
	f, _ := v.Float()
	return f
}

func wrap(v safejs.Value) (Element, bool) {
	if v.IsNull() || v.IsUndefined() {
		return nil, false
	}
	return element{v: v}, true
}

func (e element) SetStyle(prop, value string) {
	element{v: e.get("style")}.call("setProperty", prop, value)
}

func (e element) Style(prop string) string {
	return str(element{v: e.get("style")}.call("getPropertyValue", prop))
}

func (e element) AddClass(name string) {
	element{v: e.get("classList")}.call("add", name)
}

func (e element) RemoveClass(name string) {
	element{v: e.get("classList")}.call("remove", name)
}

func (e element) HasClass(name string) bool {
	ok, _ := element{v: e.get("classList")}.call("contains", name).Bool()
	return ok
}

func (e element) SetText(s string) { _ = e.v.Set("textContent", s) }

func (e element) Text() string { return str(e.get("textContent")) }

func (e element) AppendChild(child Element) {
	if c, ok := child.(element); ok {
		e.call("appendChild", c.v)
	}
}

func (e element) Remove() { e.call("remove") }

func (e element) Closest(selector string) (Element, bool) {
	if e.get("closest").Type() != safejs.TypeFunction {
		return nil, false
	}
	return wrap(e.call("closest", selector))
}

func (e element) Same(other Element) bool {
	o, ok := other.(element)
	return ok && e.v.Equal(o.v)
}

func (e element) On(event string, l Listener) func() {
	return listen(e.v, event, l)
}

func listen(target safejs.Value, event string, l Listener) func() {
	fn, err := safejs.FuncOf(func(_ safejs.Value, args []safejs.Value) any {
		if len(args) > 0 {
			l(newEvent(args[0]))
		}
		return nil
	})
	if err != nil {
		return func() {}
	}
	if _, err := target.Call("addEventListener", event, fn); err != nil {
		fn.Release()
		return func() {}
	}
	return func() {
		_, _ = target.Call("removeEventListener", event, fn)
		fn.Release()
	}
}

func newEvent(v safejs.Value) *Event {
	ev := element{v: v}
	e := &Event{
		Type:    str(ev.get("type")),
		Key:     str(ev.get("key")),
		Code:    str(ev.get("code")),
		ClientX: num(ev.get("clientX")),
		ClientY: num(ev.get("clientY")),
		prevent: func() { ev.call("preventDefault") },
	}
	if t, ok := wrap(ev.get("target")); ok {
		e.Target = t
	}
	return e
}

type document struct {
	element
}

// Global binds the page's document.
func Global() (Document, error) {
	v, err := safejs.Global().Get("document")
	if err != nil {
		return nil, err
	}
	if v.IsUndefined() || v.IsNull() {
		return nil, ErrNoDocument
	}
	return document{element{v: v}}, nil
}

func (d document) Query(selector string) (Element, bool) {
	return wrap(d.call("querySelector", selector))
}

func (d document) Create(tag string) Element {
	return element{v: d.call("createElement", tag)}
}

func (d document) Head() Element { return element{v: d.get("head")} }

func (d document) Body() Element { return element{v: d.get("body")} }

func (d document) On(event string, l Listener) func() {
	return listen(d.v, event, l)
}

// Ready returns a channel closed once the document has been parsed.
func Ready() <-chan struct{} {
	ch := make(chan struct{})
	doc, err := safejs.Global().Get("document")
	if err != nil || str(element{v: doc}.get("readyState")) != "loading" {
		close(ch)
		return ch
	}
	var release func()
	release = listen(doc, "DOMContentLoaded", func(*Event) {
		release()
		close(ch)
	})
	return ch
}

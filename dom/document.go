//go:build js && wasm

// Package dom binds the page controller to the browser through syscall/js.
package dom

import (
	"syscall/js"

	"github.com/wisdomfriend/homepage/page"
	"github.com/wisdomfriend/homepage/vdom"
)

// Compile-time assertions that the browser types satisfy the controller's interfaces.
var (
	_ page.Document = (*Document)(nil)
	_ page.Element  = element{}
	_ page.Anchor   = anchor{}
	_ page.Event    = event{}
)

// Document is the live browser document.
type Document struct {
	doc js.Value
	win js.Value
}

func NewDocument() *Document {
	return &Document{
		doc: js.Global().Get("document"),
		win: js.Global(),
	}
}

func (d *Document) ElementByID(id string) (page.Element, bool) {
	if !d.doc.Truthy() {
		return nil, false
	}
	el := d.doc.Call("getElementById", id)
	if !el.Truthy() {
		return nil, false
	}
	return element{el}, true
}

// Anchors returns every a[href^="#"] in the document right now.
func (d *Document) Anchors() []page.Anchor {
	if !d.doc.Truthy() {
		return nil
	}
	list := d.doc.Call("querySelectorAll", `a[href^="#"]`)
	n := list.Get("length").Int()
	anchors := make([]page.Anchor, 0, n)
	for i := 0; i < n; i++ {
		anchors = append(anchors, anchor{list.Call("item", i)})
	}
	return anchors
}

// OnClick listens for clicks anywhere in the window.
func (d *Document) OnClick(handler func(page.Event)) {
	d.win.Call("addEventListener", "click", EventFunc("window.click", func(ev js.Value) {
		handler(event{ev})
	}))
}

type element struct {
	v js.Value
}

func (e element) SetText(text string) {
	e.v.Set("textContent", text)
}

func (e element) Render(nodes ...*vdom.VNode) {
	vdom.RenderTo(e.v, nodes...)
}

func (e element) SetStyle(property, value string) {
	e.v.Get("style").Call("setProperty", property, value)
}

func (e element) ScrollIntoView() {
	e.v.Call("scrollIntoView", map[string]any{
		"behavior": "smooth",
		"block":    "start",
	})
}

type anchor struct {
	v js.Value
}

func (a anchor) Href() string {
	href := a.v.Call("getAttribute", "href")
	if href.IsNull() || href.IsUndefined() {
		return ""
	}
	return href.String()
}

func (a anchor) OnClick(handler func(page.Event)) {
	a.v.Call("addEventListener", "click", EventFunc("anchor.click", func(ev js.Value) {
		handler(event{ev})
	}))
}

type event struct {
	v js.Value
}

func (e event) PreventDefault() {
	e.v.Call("preventDefault")
}

func (e event) TargetID() string {
	target := e.v.Get("target")
	if !target.Truthy() {
		return ""
	}
	id := target.Get("id")
	if id.Type() != js.TypeString {
		return ""
	}
	return id.String()
}

// Package pagetest provides an in-memory page.Document for testing the
// controller without a browser or WASM.
package pagetest

import (
	"sync"

	"github.com/wisdomfriend/homepage/page"
	"github.com/wisdomfriend/homepage/vdom"
)

// Compile-time assertions that the fakes satisfy the controller's interfaces.
var (
	_ page.Document = (*Document)(nil)
	_ page.Element  = (*Element)(nil)
	_ page.Anchor   = (*Anchor)(nil)
	_ page.Event    = (*Event)(nil)
)

// Document holds elements by id, the in-page anchors and the page-wide click
// listeners. It is safe for use from the controller's background goroutines.
type Document struct {
	mu       sync.Mutex
	elements map[string]*Element
	anchors  []*Anchor
	onClick  []func(page.Event)
}

// NewDocument creates a document containing an element for each id.
func NewDocument(ids ...string) *Document {
	d := &Document{elements: make(map[string]*Element)}
	for _, id := range ids {
		d.AddElement(id)
	}
	return d
}

// AddElement adds (or returns the existing) element with the given id.
func (d *Document) AddElement(id string) *Element {
	d.mu.Lock()
	defer d.mu.Unlock()
	if el, ok := d.elements[id]; ok {
		return el
	}
	el := &Element{id: id, styles: make(map[string]string)}
	d.elements[id] = el
	return el
}

// Element returns the element with the given id, or nil.
func (d *Document) Element(id string) *Element {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.elements[id]
}

// AddAnchor appends an <a> with the given href.
func (d *Document) AddAnchor(href string) *Anchor {
	d.mu.Lock()
	defer d.mu.Unlock()
	a := &Anchor{href: href}
	d.anchors = append(d.anchors, a)
	return a
}

func (d *Document) ElementByID(id string) (page.Element, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	el, ok := d.elements[id]
	if !ok {
		return nil, false
	}
	return el, true
}

func (d *Document) Anchors() []page.Anchor {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]page.Anchor, len(d.anchors))
	for i, a := range d.anchors {
		out[i] = a
	}
	return out
}

func (d *Document) OnClick(handler func(page.Event)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.onClick = append(d.onClick, handler)
}

// Click dispatches a page-wide click whose target has the given id.
func (d *Document) Click(targetID string) *Event {
	d.mu.Lock()
	handlers := append([]func(page.Event){}, d.onClick...)
	d.mu.Unlock()

	ev := &Event{target: targetID}
	for _, h := range handlers {
		h(ev)
	}
	return ev
}

// Element records everything the controller writes to it.
type Element struct {
	mu       sync.Mutex
	id       string
	text     string
	html     string
	styles   map[string]string
	scrolled int
}

func (e *Element) SetText(text string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.text = text
}

// Render stores the nodes as serialised HTML.
func (e *Element) Render(nodes ...*vdom.VNode) {
	markup, err := vdom.RenderHTML(nodes...)
	if err != nil {
		markup = "render error: " + err.Error()
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.html = markup
}

func (e *Element) SetStyle(property, value string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.styles[property] = value
}

func (e *Element) ScrollIntoView() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.scrolled++
}

// ID returns the element id.
func (e *Element) ID() string { return e.id }

// Text returns the last text written.
func (e *Element) Text() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.text
}

// HTML returns the last rendered content.
func (e *Element) HTML() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.html
}

// Style returns the value of an inline style property.
func (e *Element) Style(property string) string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.styles[property]
}

// Scrolled returns how many times the element was scrolled into view.
func (e *Element) Scrolled() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.scrolled
}

// Anchor is an in-page link with its registered click handlers.
type Anchor struct {
	mu       sync.Mutex
	href     string
	handlers []func(page.Event)
}

func (a *Anchor) Href() string { return a.href }

func (a *Anchor) OnClick(handler func(page.Event)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.handlers = append(a.handlers, handler)
}

// Click dispatches a click on the anchor and returns the event, so tests can
// check whether the default navigation was prevented.
func (a *Anchor) Click() *Event {
	a.mu.Lock()
	handlers := append([]func(page.Event){}, a.handlers...)
	a.mu.Unlock()

	ev := &Event{}
	for _, h := range handlers {
		h(ev)
	}
	return ev
}

// Event is a recorded click.
type Event struct {
	target    string
	prevented bool
}

func (e *Event) PreventDefault() { e.prevented = true }

func (e *Event) TargetID() string { return e.target }

// DefaultPrevented reports whether a handler called PreventDefault.
func (e *Event) DefaultPrevented() bool { return e.prevented }

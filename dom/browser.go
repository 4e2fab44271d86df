//go:build js && wasm

package dom

import (
	"syscall/js"

	"github.com/wisdomfriend/homepage/page"
)

// Client reads the browser attributes shown in the info modal.
func Client() page.ClientInfo {
	nav := js.Global().Get("navigator")
	screen := js.Global().Get("screen")
	return page.ClientInfo{
		UserAgent:    stringProp(nav, "userAgent"),
		Language:     stringProp(nav, "language"),
		Platform:     stringProp(nav, "platform"),
		ScreenWidth:  intProp(screen, "width"),
		ScreenHeight: intProp(screen, "height"),
	}
}

// Origin returns location.origin, e.g. "https://example.com".
func Origin() string {
	return stringProp(js.Global().Get("location"), "origin")
}

// ConfigOverlay returns the text of the element with the given id, typically a
// <script type="application/yaml">, or nil if there is none.
func ConfigOverlay(id string) []byte {
	el := js.Global().Get("document").Call("getElementById", id)
	if !el.Truthy() {
		return nil
	}
	return []byte(el.Get("textContent").String())
}

// OnLoad runs fn once the window has loaded. If the load event already fired
// before the module started, fn runs right away. fn always runs on its own
// goroutine so it may block on network calls.
func OnLoad(fn func()) {
	if stringProp(js.Global().Get("document"), "readyState") == "complete" {
		go Guard("load", fn)
		return
	}
	var cb js.Func
	cb = js.FuncOf(func(this js.Value, args []js.Value) any {
		go Guard("load", fn)
		js.Global().Call("removeEventListener", "load", cb)
		cb.Release()
		return nil
	})
	js.Global().Call("addEventListener", "load", cb)
}

func stringProp(v js.Value, name string) string {
	if !v.Truthy() {
		return ""
	}
	p := v.Get(name)
	if p.Type() != js.TypeString {
		return ""
	}
	return p.String()
}

func intProp(v js.Value, name string) int {
	if !v.Truthy() {
		return 0
	}
	p := v.Get(name)
	if p.Type() != js.TypeNumber {
		return 0
	}
	return p.Int()
}

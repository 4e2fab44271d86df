//go:build js && wasm

package vdom

import (
	"syscall/js"

	"github.com/wisdomfriend/homepage/console"
)

// RenderTo replaces the children of mount with the rendered nodes.
func RenderTo(mount js.Value, nodes ...*VNode) {
	if !mount.Truthy() {
		return
	}
	markup, err := RenderHTML(nodes...)
	if err != nil {
		console.Error("Render failed:", err.Error())
		return
	}
	mount.Set("innerHTML", markup)
}

//go:build js && wasm

package dom

import "syscall/js"

var keptFuncs []js.Func // listeners live as long as the page

func keep(fn js.Func) js.Func {
	keptFuncs = append(keptFuncs, fn)
	return fn
}

// EventFunc adapts a Go handler receiving the DOM event to a JS listener.
// The handler runs under Guard.
func EventFunc(name string, handler func(ev js.Value)) js.Func {
	return keep(js.FuncOf(func(this js.Value, args []js.Value) any {
		ev := js.Undefined()
		if len(args) > 0 {
			ev = args[0]
		}
		Guard(name, func() { handler(ev) })
		return nil
	}))
}

// Export publishes a no-argument handler as window[name], so inline
// onclick="name()" attributes reach Go.
func Export(name string, handler func()) {
	js.Global().Set(name, keep(js.FuncOf(func(this js.Value, args []js.Value) any {
		Guard(name, handler)
		return nil
	})))
}

//go:build js && wasm && dev

package dom

// Guard runs a browser callback in development mode.
// In dev mode, panics propagate to aid debugging and fast failure.
func Guard(name string, fn func()) {
	fn()
}

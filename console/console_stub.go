//go:build !(js && wasm)

package console

// Stub file for non-WASM builds so portable packages compile and test natively.
// The actual implementation is in console.go with js/wasm build tags.

// Debug is a no-op in non-WASM builds.
func Debug(args ...any) {}

// Log is a no-op in non-WASM builds.
func Log(args ...any) {}

// Warn is a no-op in non-WASM builds.
func Warn(args ...any) {}

// Error is a no-op in non-WASM builds.
func Error(args ...any) {}

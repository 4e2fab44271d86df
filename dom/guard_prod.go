//go:build js && wasm && !dev

package dom

import (
	"fmt"

	"github.com/wisdomfriend/homepage/console"
)

// Guard runs a browser callback in production mode.
// Panics are recovered and logged so one faulty handler never takes down the page.
func Guard(name string, fn func()) {
	defer func() {
		if rec := recover(); rec != nil {
			console.Error(fmt.Sprintf("ERROR: panic in handler %s: %v", name, rec))
		}
	}()
	fn()
}

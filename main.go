//go:build js && wasm

package main

import (
	"context"
	"net/http"

	"github.com/jonboulle/clockwork"

	"github.com/wisdomfriend/homepage/config"
	"github.com/wisdomfriend/homepage/console"
	"github.com/wisdomfriend/homepage/dom"
	"github.com/wisdomfriend/homepage/page"
)

func main() {
	// 1. Load settings: embedded defaults plus the page's optional YAML overlay
	cfg, err := config.Load(dom.ConfigOverlay("page-config"))
	if err != nil {
		console.Error("Invalid page config, using defaults:", err.Error())
		cfg = config.Default()
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = dom.Origin()
	}

	logger := console.NewLogger(cfg.Level())

	// 2. Create the controller over the live document
	ctrl := page.New(cfg, page.Env{
		Document: dom.NewDocument(),
		Client:   dom.Client,
		Clock:    clockwork.NewRealClock(),
		HTTP:     &http.Client{},
		Logger:   &logger,
	})

	// The page lifetime is the program lifetime, so nothing ever cancels this.
	ctx := context.Background()

	// 3. Clock tick, anchor binding and click-outside-to-close
	ctrl.Start(ctx)

	// 4. Handlers referenced by inline onclick attributes
	dom.Export("increment", ctrl.Increment)
	dom.Export("decrement", ctrl.Decrement)
	dom.Export("reset", ctrl.Reset)
	dom.Export("showInfo", func() { ctrl.ShowInfo(ctx) })
	dom.Export("closeModal", ctrl.CloseModal)

	// 5. Server time once the page has loaded
	dom.OnLoad(func() { ctrl.FetchServerTime(ctx) })

	logger.Debug().Str("base_url", cfg.BaseURL).Msg("home page ready")

	// Keep the Go program running
	select {}
}

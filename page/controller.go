// Package page implements the home page controller: the click counter, the
// local and server clocks, the info modal and smooth in-page scrolling.
//
// All browser access goes through Env, so the controller runs unchanged in
// the browser (see package dom) and in native tests (see package pagetest).
package page

import (
	"context"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/wisdomfriend/homepage/config"
	"github.com/wisdomfriend/homepage/signals"
)

// Controller owns the page state and writes it to the document.
type Controller struct {
	cfg config.Config
	env Env
	log zerolog.Logger

	counter *signals.Signal[int]
	modal   *signals.Signal[bool]

	renderMu sync.Mutex // serialises counter display writes

	infoMu  sync.Mutex
	infoGen uint64 // bumped by every ShowInfo; only the newest fetch may render

	inflight sync.WaitGroup
}

// New creates a controller with a zero counter and a hidden modal. Nothing
// touches the page until Start or one of the handlers is called.
func New(cfg config.Config, env Env) *Controller {
	env = env.withDefaults()
	c := &Controller{
		cfg:     cfg,
		env:     env,
		log:     env.Logger.With().Str("component", "page").Logger(),
		counter: signals.NewSignal(0),
		modal:   signals.NewSignal(false),
	}
	c.counter.Subscribe(func(int) { c.updateCounter() })
	c.modal.Subscribe(c.renderModal)
	return c
}

// Start renders the clock, starts the clock tick, binds the in-page anchors
// present right now and installs the click-outside-to-close listener. The tick
// runs until ctx is cancelled; in the browser that is the page lifetime.
func (c *Controller) Start(ctx context.Context) {
	c.UpdateCurrentTime()

	ticker := c.env.Clock.NewTicker(c.cfg.TickInterval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.Chan():
				c.UpdateCurrentTime()
			case <-ctx.Done():
				return
			}
		}
	}()

	c.BindAnchors()
	c.env.Document.OnClick(func(ev Event) {
		c.HandleDocumentClick(ev.TargetID())
	})

	c.log.Debug().Dur("tick_interval", c.cfg.TickInterval).Msg("page controller started")
}

// Wait blocks until every remote fetch started so far has settled and
// rendered.
func (c *Controller) Wait() {
	c.inflight.Wait()
}

func (c *Controller) element(id string) (Element, bool) {
	el, ok := c.env.Document.ElementByID(id)
	if !ok || el == nil {
		return nil, false
	}
	return el, true
}

func (c *Controller) endpoint(path string) string {
	return strings.TrimRight(c.cfg.BaseURL, "/") + path
}

func (c *Controller) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.cfg.RequestTimeout > 0 {
		return context.WithTimeout(ctx, c.cfg.RequestTimeout)
	}
	return context.WithCancel(ctx)
}

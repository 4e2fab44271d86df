package page

import (
	"fmt"
	"strconv"
)

// Increment adds one to the counter. There are no bounds.
func (c *Controller) Increment() {
	c.counter.Update(func(n int) int { return n + 1 })
}

// Decrement subtracts one from the counter; it may go negative.
func (c *Controller) Decrement() {
	c.counter.Update(func(n int) int { return n - 1 })
}

// Reset sets the counter back to zero.
func (c *Controller) Reset() {
	c.counter.Set(0)
}

// Count returns the committed counter value.
func (c *Controller) Count() int {
	return c.counter.Get()
}

// updateCounter writes the committed value to the display and pulses it.
// The value is read under renderMu so the display never lags behind a
// concurrent commit.
func (c *Controller) updateCounter() {
	el, ok := c.element(c.cfg.Elements.Counter)
	if !ok {
		return
	}

	c.renderMu.Lock()
	el.SetText(strconv.Itoa(c.counter.Get()))
	el.SetStyle("transform", fmt.Sprintf("scale(%g)", c.cfg.PulseScale))
	c.renderMu.Unlock()

	c.env.Clock.AfterFunc(c.cfg.PulseDelay, func() {
		el.SetStyle("transform", "scale(1)")
	})
}

package page

import "strings"

// BindAnchors intercepts clicks on every in-page anchor present now. Anchors
// added later are not bound.
func (c *Controller) BindAnchors() {
	for _, a := range c.env.Document.Anchors() {
		href := a.Href()
		if !strings.HasPrefix(href, "#") {
			continue
		}
		a.OnClick(func(ev Event) {
			ev.PreventDefault()
			c.ScrollTo(href)
		})
	}
}

// ScrollTo smoothly scrolls the element named by the fragment into view. An
// empty fragment or a missing target does nothing.
func (c *Controller) ScrollTo(fragment string) {
	id := strings.TrimPrefix(fragment, "#")
	if id == "" {
		return
	}
	if el, ok := c.element(id); ok {
		el.ScrollIntoView()
	}
}

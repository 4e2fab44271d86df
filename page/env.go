package page

import (
	"net/http"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/wisdomfriend/homepage/vdom"
)

// Element is the part of a DOM element the controller writes to.
type Element interface {
	SetText(text string)
	// Render replaces the element's children with the given nodes.
	Render(nodes ...*vdom.VNode)
	SetStyle(property, value string)
	// ScrollIntoView smoothly scrolls the element to the top of the viewport.
	ScrollIntoView()
}

// Event is a DOM click event.
type Event interface {
	PreventDefault()
	// TargetID is the id of the element the event was dispatched to, or "".
	TargetID() string
}

// Anchor is an in-page link (<a href="#...">).
type Anchor interface {
	Href() string
	OnClick(handler func(Event))
}

// Document gives the controller access to the page it runs in.
type Document interface {
	ElementByID(id string) (Element, bool)
	// Anchors returns the in-page anchors present at call time.
	Anchors() []Anchor
	// OnClick registers a listener for every click on the page.
	OnClick(handler func(Event))
}

// ClientInfo holds the locally observable browser attributes.
type ClientInfo struct {
	UserAgent    string
	Language     string
	Platform     string
	ScreenWidth  int
	ScreenHeight int
}

// HTTPDoer is satisfied by *http.Client.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Env is everything the controller needs from its surroundings. Zero fields
// fall back to the real browser-independent defaults: an empty document, the
// real clock, http.DefaultClient, time.Local and a no-op logger.
type Env struct {
	Document Document
	Client   func() ClientInfo
	Clock    clockwork.Clock
	HTTP     HTTPDoer
	Location *time.Location
	Logger   *zerolog.Logger
}

func (e Env) withDefaults() Env {
	if e.Document == nil {
		e.Document = emptyDocument{}
	}
	if e.Client == nil {
		e.Client = func() ClientInfo { return ClientInfo{} }
	}
	if e.Clock == nil {
		e.Clock = clockwork.NewRealClock()
	}
	if e.HTTP == nil {
		e.HTTP = http.DefaultClient
	}
	if e.Location == nil {
		e.Location = time.Local
	}
	if e.Logger == nil {
		nop := zerolog.Nop()
		e.Logger = &nop
	}
	return e
}

type emptyDocument struct{}

func (emptyDocument) ElementByID(string) (Element, bool) { return nil, false }
func (emptyDocument) Anchors() []Anchor                  { return nil }
func (emptyDocument) OnClick(func(Event))                {}

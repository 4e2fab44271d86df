//go:build !wasm

package page_test

import (
	"bytes"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/wisdomfriend/homepage/config"
	"github.com/wisdomfriend/homepage/page"
	"github.com/wisdomfriend/homepage/page/pagetest"
)

var fixedNow = time.Date(2026, 10, 17, 9, 5, 3, 0, time.UTC)

var testClient = page.ClientInfo{
	UserAgent:    "Mozilla/5.0 (X11; Linux x86_64) <b>bold</b>",
	Language:     "en-US",
	Platform:     "Linux x86_64",
	ScreenWidth:  1920,
	ScreenHeight: 1080,
}

// doerFunc adapts a function to page.HTTPDoer.
type doerFunc func(*http.Request) (*http.Response, error)

func (f doerFunc) Do(req *http.Request) (*http.Response, error) { return f(req) }

// syncBuffer is a bytes.Buffer safe for the controller's background logging.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

type harness struct {
	ctrl  *page.Controller
	doc   *pagetest.Document
	clock *clockwork.FakeClock
	logs  *syncBuffer
	cfg   config.Config
}

// newHarness builds a controller over a document holding every configured
// element. baseURL may be an httptest server URL; doer may be nil to use
// http.DefaultClient.
func newHarness(t *testing.T, baseURL string, doer page.HTTPDoer, tweak ...func(*config.Config)) *harness {
	t.Helper()

	cfg := config.Default()
	cfg.BaseURL = baseURL
	for _, fn := range tweak {
		fn(&cfg)
	}

	doc := pagetest.NewDocument(
		cfg.Elements.Counter,
		cfg.Elements.CurrentTime,
		cfg.Elements.ServerTime,
		cfg.Elements.Modal,
		cfg.Elements.ModalContent,
	)
	clock := clockwork.NewFakeClockAt(fixedNow)
	logs := &syncBuffer{}
	logger := zerolog.New(logs)

	ctrl := page.New(cfg, page.Env{
		Document: doc,
		Client:   func() page.ClientInfo { return testClient },
		Clock:    clock,
		HTTP:     doer,
		Location: time.UTC,
		Logger:   &logger,
	})
	t.Cleanup(ctrl.Wait)

	return &harness{ctrl: ctrl, doc: doc, clock: clock, logs: logs, cfg: cfg}
}

// eventually polls cond until it holds or the deadline passes.
func eventually(t *testing.T, cond func() bool, format string, args ...any) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf(format, args...)
}

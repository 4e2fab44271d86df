//go:build !wasm

package page_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/wisdomfriend/homepage/config"
	"github.com/wisdomfriend/homepage/page"
)

func TestFormatClock_PadsFields(t *testing.T) {
	tests := []struct {
		in   time.Time
		want string
	}{
		{time.Date(2026, 1, 2, 1, 2, 3, 0, time.UTC), "01:02:03"},
		{time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC), "00:00:00"},
		{time.Date(2026, 1, 2, 23, 59, 59, 999, time.UTC), "23:59:59"},
	}
	for _, tt := range tests {
		if got := page.FormatClock(tt.in); got != tt.want {
			t.Errorf("FormatClock(%v): expected '%s', got '%s'", tt.in, tt.want, got)
		}
	}
}

// TestStart_TicksEverySecond verifies the clock renders immediately and then
// on each tick until the context is cancelled.
func TestStart_TicksEverySecond(t *testing.T) {
	h := newHarness(t, "", nil)
	display := h.doc.Element(h.cfg.Elements.CurrentTime)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	h.ctrl.Start(ctx)

	if got := display.Text(); got != "09:05:03" {
		t.Fatalf("Expected initial time '09:05:03', got '%s'", got)
	}

	h.clock.Advance(time.Second)
	eventually(t, func() bool { return display.Text() == "09:05:04" },
		"Expected '09:05:04' after one tick, got '%s'", display.Text())

	h.clock.Advance(time.Second)
	eventually(t, func() bool { return display.Text() == "09:05:05" },
		"Expected '09:05:05' after two ticks, got '%s'", display.Text())
}

func TestFetchServerTime_UsesDateHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodHead || r.URL.Path != "/api/time" {
			t.Errorf("Unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Date", "Tue, 15 Nov 1994 08:12:31 GMT")
	}))
	defer srv.Close()

	h := newHarness(t, srv.URL, nil)
	h.ctrl.FetchServerTime(context.Background())

	if got := h.doc.Element(h.cfg.Elements.ServerTime).Text(); got != "08:12:31" {
		t.Errorf("Expected server time '08:12:31', got '%s'", got)
	}
	if strings.Contains(h.logs.String(), "server time unavailable") {
		t.Errorf("Did not expect a fallback log line, got %s", h.logs.String())
	}
}

// TestResolveServerTime_ConvertsToLocalZone verifies the header is rendered in
// the page's local time zone.
func TestResolveServerTime_ConvertsToLocalZone(t *testing.T) {
	doer := doerFunc(func(*http.Request) (*http.Response, error) {
		resp := &http.Response{StatusCode: http.StatusOK, Header: http.Header{}, Body: http.NoBody}
		resp.Header.Set("Date", "Tue, 15 Nov 1994 08:12:31 GMT")
		return resp, nil
	})

	cfg := config.Default()
	cfg.BaseURL = "http://page.test"
	ctrl := page.New(cfg, page.Env{HTTP: doer, Location: time.FixedZone("UTC+2", 2*60*60)})

	reading := ctrl.ResolveServerTime(context.Background())
	if reading.Degraded {
		t.Fatalf("Expected a server reading, got degraded: %v", reading.Reason)
	}
	if reading.Clock() != "10:12:31" {
		t.Errorf("Expected '10:12:31', got '%s'", reading.Clock())
	}
}

// TestFetchServerTime_FallsBackToClientTime covers every failure kind; each
// must render the local clock with the client-time suffix and log the reason.
func TestFetchServerTime_FallsBackToClientTime(t *testing.T) {
	withDate := func(date string, status int) page.HTTPDoer {
		return doerFunc(func(*http.Request) (*http.Response, error) {
			resp := &http.Response{StatusCode: status, Header: http.Header{}, Body: http.NoBody}
			if date != "" {
				resp.Header.Set("Date", date)
			}
			return resp, nil
		})
	}

	tests := []struct {
		name      string
		doer      page.HTTPDoer
		noDateErr bool
	}{
		{"network error", doerFunc(func(*http.Request) (*http.Response, error) {
			return nil, errors.New("connection refused")
		}), false},
		{"missing header", withDate("", http.StatusOK), true},
		{"missing header on 404", withDate("", http.StatusNotFound), true},
		{"unparsable header", withDate("yesterday-ish", http.StatusOK), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, "http://page.test", tt.doer)

			reading := h.ctrl.ResolveServerTime(context.Background())
			if !reading.Degraded {
				t.Fatalf("Expected degraded reading")
			}
			if errors.Is(reading.Reason, page.ErrNoDateHeader) != tt.noDateErr {
				t.Errorf("Unexpected reason: %v", reading.Reason)
			}

			h.ctrl.FetchServerTime(context.Background())

			expected := "09:05:03 (client time)"
			if got := h.doc.Element(h.cfg.Elements.ServerTime).Text(); got != expected {
				t.Errorf("Expected '%s', got '%s'", expected, got)
			}
			if !strings.Contains(h.logs.String(), "server time unavailable, using client time") {
				t.Errorf("Expected fallback to be logged, got %q", h.logs.String())
			}
		})
	}
}

// TestFetchServerTime_StripsAutomaticDate uses a real server that suppresses
// its automatic Date header.
func TestFetchServerTime_StripsAutomaticDate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header()["Date"] = nil
	}))
	defer srv.Close()

	h := newHarness(t, srv.URL, nil)
	h.ctrl.FetchServerTime(context.Background())

	if got := h.doc.Element(h.cfg.Elements.ServerTime).Text(); got != "09:05:03 (client time)" {
		t.Errorf("Expected client time fallback, got '%s'", got)
	}
}

// TestFetchServerTime_ShowsPlaceholderWhileFetching verifies the placeholder
// is visible until the request settles.
func TestFetchServerTime_ShowsPlaceholderWhileFetching(t *testing.T) {
	release := make(chan struct{})
	doer := doerFunc(func(*http.Request) (*http.Response, error) {
		<-release
		resp := &http.Response{StatusCode: http.StatusOK, Header: http.Header{}, Body: http.NoBody}
		resp.Header.Set("Date", "Tue, 15 Nov 1994 08:12:31 GMT")
		return resp, nil
	})
	h := newHarness(t, "http://page.test", doer)
	display := h.doc.Element(h.cfg.Elements.ServerTime)

	done := make(chan struct{})
	go func() {
		h.ctrl.FetchServerTime(context.Background())
		close(done)
	}()

	eventually(t, func() bool { return display.Text() == "Fetching..." },
		"Expected placeholder while fetching, got '%s'", display.Text())

	close(release)
	<-done

	if got := display.Text(); got != "08:12:31" {
		t.Errorf("Expected '08:12:31' after fetch, got '%s'", got)
	}
}

func TestFetchServerTime_RequestTimeout(t *testing.T) {
	doer := doerFunc(func(req *http.Request) (*http.Response, error) {
		<-req.Context().Done()
		return nil, req.Context().Err()
	})
	h := newHarness(t, "http://page.test", doer, func(cfg *config.Config) {
		cfg.RequestTimeout = 20 * time.Millisecond
	})

	reading := h.ctrl.ResolveServerTime(context.Background())

	if !reading.Degraded || !errors.Is(reading.Reason, context.DeadlineExceeded) {
		t.Errorf("Expected degraded reading caused by the deadline, got %+v", reading)
	}
}

// TestFetchServerTime_NoDisplayNoRequest verifies that a page without a
// server-time element never issues the request.
func TestFetchServerTime_NoDisplayNoRequest(t *testing.T) {
	called := false
	doer := doerFunc(func(*http.Request) (*http.Response, error) {
		called = true
		return nil, errors.New("unexpected")
	})

	ctrl := page.New(config.Default(), page.Env{HTTP: doer})
	ctrl.FetchServerTime(context.Background())

	if called {
		t.Errorf("Expected no request without a server-time element")
	}
}

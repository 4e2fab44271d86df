package page

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrNoDateHeader is returned when the time endpoint answers without a Date header.
var ErrNoDateHeader = errors.New("response has no Date header")

// TimeReading is the outcome of a server time lookup. A degraded reading holds
// the local clock and the reason the server time could not be used.
type TimeReading struct {
	Time     time.Time
	Degraded bool
	Reason   error
}

// Clock returns the reading as HH:MM:SS.
func (r TimeReading) Clock() string {
	return FormatClock(r.Time)
}

// FormatClock formats t as zero-padded 24-hour HH:MM:SS.
func FormatClock(t time.Time) string {
	return t.Format("15:04:05")
}

func (c *Controller) now() time.Time {
	return c.env.Clock.Now().In(c.env.Location)
}

// UpdateCurrentTime writes the local wall clock to the current-time display.
func (c *Controller) UpdateCurrentTime() {
	el, ok := c.element(c.cfg.Elements.CurrentTime)
	if !ok {
		return
	}
	el.SetText(FormatClock(c.now()))
}

// FetchServerTime shows the fetching placeholder, resolves the server time and
// renders it. A degraded reading is rendered with the client-time suffix and
// logged. Without a server-time display nothing is fetched.
func (c *Controller) FetchServerTime(ctx context.Context) {
	el, ok := c.element(c.cfg.Elements.ServerTime)
	if !ok {
		return
	}
	el.SetText(c.cfg.Labels.Fetching)

	reading := c.ResolveServerTime(ctx)
	if reading.Degraded {
		c.log.Info().Err(reading.Reason).Msg("server time unavailable, using client time")
		el.SetText(reading.Clock() + " " + c.cfg.Labels.ClientTimeSuffix)
		return
	}
	el.SetText(reading.Clock())
}

// ResolveServerTime asks the time endpoint for its Date header. Every kind of
// failure yields the same degraded reading built from the local clock.
func (c *Controller) ResolveServerTime(ctx context.Context) TimeReading {
	t, err := c.serverTime(ctx)
	if err != nil {
		return TimeReading{Time: c.now(), Degraded: true, Reason: err}
	}
	return TimeReading{Time: t.In(c.env.Location)}
}

func (c *Controller) serverTime(ctx context.Context) (time.Time, error) {
	ctx, cancel := c.requestContext(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.endpoint(c.cfg.Endpoints.Time), nil)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.env.HTTP.Do(req)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to make request: %w", err)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()

	return parseDate(resp.Header.Get("Date"))
}

// parseDate accepts the HTTP date formats plus RFC 3339.
func parseDate(v string) (time.Time, error) {
	if v == "" {
		return time.Time{}, ErrNoDateHeader
	}
	if t, err := http.ParseTime(v); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("unparsable Date header %q: %w", v, err)
	}
	return t, nil
}

package page

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/wisdomfriend/homepage/config"
	"github.com/wisdomfriend/homepage/vdom"
)

var (
	// ErrStatus is returned for a non-2xx info response.
	ErrStatus = errors.New("unexpected status")
	// ErrEmptyInfo is returned when the info body is JSON null.
	ErrEmptyInfo = errors.New("empty info payload")
)

// ServerInfo is the /api/info payload. Both fields are optional; an empty
// field renders as the unknown placeholder.
type ServerInfo struct {
	NginxVersion string
	ServerTime   string
}

// ShowInfo makes the modal visible at once, then fetches the server info in
// the background and fills the modal content when the fetch settles. Only the
// newest ShowInfo call may write the content, so a slow earlier success never
// overwrites a later failure.
func (c *Controller) ShowInfo(ctx context.Context) {
	if _, ok := c.element(c.cfg.Elements.Modal); !ok {
		return
	}
	content, ok := c.element(c.cfg.Elements.ModalContent)
	if !ok {
		return
	}

	c.modal.Set(true)
	client := c.env.Client()

	c.infoMu.Lock()
	c.infoGen++
	gen := c.infoGen
	c.infoMu.Unlock()

	c.inflight.Add(1)
	go func() {
		defer c.inflight.Done()

		info, err := c.FetchServerInfo(ctx)
		if err != nil {
			c.log.Debug().Err(err).Msg("server info unavailable")
		}

		c.infoMu.Lock()
		defer c.infoMu.Unlock()
		if gen != c.infoGen {
			return
		}
		if err != nil {
			content.Render(InfoPanel(c.cfg.Labels, nil, client)...)
			return
		}
		content.Render(InfoPanel(c.cfg.Labels, &info, client)...)
	}()
}

// CloseModal hides the modal if the page has one.
func (c *Controller) CloseModal() {
	if _, ok := c.element(c.cfg.Elements.Modal); !ok {
		return
	}
	c.modal.Set(false)
}

// ModalVisible reports whether the modal is shown.
func (c *Controller) ModalVisible() bool {
	return c.modal.Get()
}

// HandleDocumentClick closes the modal when the click landed on the modal
// backdrop itself rather than on its content.
func (c *Controller) HandleDocumentClick(targetID string) {
	if targetID == "" || targetID != c.cfg.Elements.Modal {
		return
	}
	c.CloseModal()
}

func (c *Controller) renderModal(visible bool) {
	el, ok := c.element(c.cfg.Elements.Modal)
	if !ok {
		return
	}
	if visible {
		el.SetStyle("display", "block")
	} else {
		el.SetStyle("display", "none")
	}
}

// FetchServerInfo loads /api/info. Transport errors, non-2xx statuses, bodies
// that are not JSON and a JSON null return an error. Any other JSON value is a
// success: fields are read from an object only, and a missing, empty or
// non-scalar field is left empty.
func (c *Controller) FetchServerInfo(ctx context.Context) (ServerInfo, error) {
	ctx, cancel := c.requestContext(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(c.cfg.Endpoints.Info), nil)
	if err != nil {
		return ServerInfo{}, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.env.HTTP.Do(req)
	if err != nil {
		return ServerInfo{}, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return ServerInfo{}, fmt.Errorf("%w: %d", ErrStatus, resp.StatusCode)
	}

	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	var payload any
	if err := dec.Decode(&payload); err != nil {
		return ServerInfo{}, fmt.Errorf("failed to decode info: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return ServerInfo{}, fmt.Errorf("failed to decode info: trailing data after JSON value")
	}
	if payload == nil {
		return ServerInfo{}, ErrEmptyInfo
	}

	fields, _ := payload.(map[string]any)
	return ServerInfo{
		NginxVersion: scalarText(fields["nginx_version"]),
		ServerTime:   scalarText(fields["server_time"]),
	}, nil
}

// scalarText renders a JSON scalar as text. Zero numbers, false, empty strings,
// null, objects and arrays all give "".
func scalarText(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return x.String()
		}
		if f == 0 {
			return ""
		}
		return strconv.FormatFloat(f, 'f', -1, 64)
	case bool:
		if x {
			return "true"
		}
		return ""
	default:
		return ""
	}
}

// InfoPanel builds the modal content. With info it renders the server section
// followed by the client section; without it, the client section and the
// unavailable note.
func InfoPanel(labels config.Labels, info *ServerInfo, client ClientInfo) []*vdom.VNode {
	clientSection := []*vdom.VNode{
		vdom.Heading(labels.ClientHeading),
		vdom.Field(labels.UserAgent, client.UserAgent),
		vdom.Field(labels.Language, client.Language),
		vdom.Field(labels.Platform, client.Platform),
		vdom.Field(labels.Resolution, fmt.Sprintf("%d x %d", client.ScreenWidth, client.ScreenHeight)),
	}

	if info == nil {
		note := vdom.Paragraph(labels.UnavailableNote, map[string]any{"style": "color: #999; margin-top: 1rem;"})
		return append(clientSection, note)
	}

	nodes := []*vdom.VNode{
		vdom.Heading(labels.ServerHeading),
		vdom.Field(labels.ServerVersion, orDefault(info.NginxVersion, labels.Unknown)),
		vdom.Field(labels.ServerTime, orDefault(info.ServerTime, labels.Unknown)),
		vdom.Rule(),
	}
	return append(nodes, clientSection...)
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

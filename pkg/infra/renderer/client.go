package renderer

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/herald-bot/herald/pkg/domain/interfaces"
	"github.com/herald-bot/herald/pkg/domain/model"
)

// client talks to the external headless-browser rendering service over
// HTTP. The service accepts an HTML document plus capture directives and
// returns PNG bytes.
type client struct {
	baseURL    string
	httpClient *http.Client
}

// Option is a functional option for the renderer client
type Option func(*client)

// WithHTTPClient overrides the HTTP client, mainly for tests
func WithHTTPClient(hc *http.Client) Option {
	return func(c *client) {
		c.httpClient = hc
	}
}

// New creates a renderer client for the service at baseURL
func New(baseURL string, opts ...Option) interfaces.Renderer {
	c := &client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			// Render budget: the service's own DOM wait (up to 10s) plus
			// navigation and transfer time
			Timeout: 30 * time.Second,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

type screenshotRequest struct {
	HTML     string    `json:"html"`
	Viewport *viewport `json:"viewport,omitempty"`
	WaitFor  *waitFor  `json:"waitFor,omitempty"`
	FullPage bool      `json:"fullPage"`
}

type viewport struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

type waitFor struct {
	Selector  string `json:"selector"`
	TimeoutMS int64  `json:"timeout"`
}

// RenderPage submits the document for rasterization and returns PNG bytes
func (c *client) RenderPage(ctx context.Context, html string, opts model.RenderOptions) ([]byte, error) {
	reqBody := screenshotRequest{
		HTML:     html,
		FullPage: opts.FullPage,
	}
	if opts.ViewportWidth > 0 {
		reqBody.Viewport = &viewport{Width: opts.ViewportWidth, Height: opts.ViewportHeight}
	}
	if opts.WaitSelector != "" {
		reqBody.WaitFor = &waitFor{
			Selector:  opts.WaitSelector,
			TimeoutMS: opts.WaitTimeout.Milliseconds(),
		}
	}

	encoded, err := json.Marshal(reqBody)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to encode screenshot request")
	}

	url := c.baseURL + "/screenshot"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(encoded))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create screenshot request", goerr.V("url", url))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to call rendering service", goerr.V("url", url))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Error bodies are short diagnostics from the service; cap the read
		// in case the service misbehaves
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, goerr.New("rendering service returned an error",
			goerr.V("status", resp.StatusCode),
			goerr.V("detail", string(detail)),
		)
	}

	image, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read rendered image")
	}
	if len(image) == 0 {
		return nil, goerr.New("rendering service returned an empty image")
	}

	return image, nil
}

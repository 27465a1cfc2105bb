// Package fetch downloads workbook bytes from a OneDrive/SharePoint
// shared link. Two URL strategies are tried in order; there is no retry
// beyond the single fallback.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/go-resty/resty/v2"
)

// TransportError indicates the workbook bytes could not be obtained
// after both download strategies. It wraps the last underlying cause.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("cannot download workbook from %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// minBodySize rejects tiny responses: SharePoint answers failed shares
// with small HTML error pages, never a workbook.
const minBodySize = 1000

// Client downloads shared workbooks.
type Client struct {
	http    *resty.Client
	log     *charmlog.Logger
	timeout time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-attempt timeout. Default is 60s.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithLogger sets the client logger. Default discards.
func WithLogger(l *charmlog.Logger) Option {
	return func(c *Client) { c.log = l }
}

// WithHTTPClient sets the underlying HTTP client, mainly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = resty.NewWithClient(hc) }
}

// New creates a download client.
func New(opts ...Option) *Client {
	c := &Client{
		log:     charmlog.New(io.Discard),
		timeout: 60 * time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http == nil {
		c.http = resty.New()
	}
	c.http.SetTimeout(c.timeout)
	return c
}

// Download fetches the workbook behind a shared link. It first tries the
// tenant download endpoint, then falls back to the direct-download query
// parameter; a response under minBodySize is treated as a failure.
func (c *Client) Download(ctx context.Context, sharedURL string) ([]byte, error) {
	u, err := url.Parse(sharedURL)
	if err != nil {
		return nil, &TransportError{URL: sharedURL, Err: err}
	}

	attempts := []string{
		fmt.Sprintf("%s://%s/_layouts/15/download.aspx?SourceUrl=%s",
			u.Scheme, u.Host, url.QueryEscape(sharedURL)),
		withDownloadParam(sharedURL),
	}

	var lastErr error
	for _, attempt := range attempts {
		body, err := c.get(ctx, attempt)
		if err != nil {
			c.log.Debug("download attempt failed", "url", attempt, "error", err)
			lastErr = err
			continue
		}
		c.log.Debug("downloaded workbook", "url", attempt, "bytes", len(body))
		return body, nil
	}
	return nil, &TransportError{URL: sharedURL, Err: lastErr}
}

func (c *Client) get(ctx context.Context, u string) ([]byte, error) {
	resp, err := c.http.R().SetContext(ctx).Get(u)
	if err != nil {
		return nil, err
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("unexpected status %s", resp.Status())
	}
	body := resp.Body()
	if len(body) <= minBodySize {
		return nil, fmt.Errorf("response too small (%d bytes), not a workbook", len(body))
	}
	return body, nil
}

func withDownloadParam(sharedURL string) string {
	sep := "?"
	if strings.Contains(sharedURL, "?") {
		sep = "&"
	}
	return sharedURL + sep + "download=1"
}

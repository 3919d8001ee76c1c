// Package fetch performs the outbound HTTP requests: page probes, icon and
// provider downloads and remote downloads all go through one Client so they
// share timeouts, body limits and header handling.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/caasmo/iconfetch/config"
)

var (
	ErrBodyTooLarge    = errors.New("response body exceeds limit")
	ErrTooManyRedirect = errors.New("too many redirects")
)

// Getter is the outbound dependency of the favicon pipeline and the
// downloader.
type Getter interface {
	Get(ctx context.Context, rawURL string, header http.Header) (*Response, error)
}

// Response is a fully read upstream response. Non 2xx statuses are not
// errors at this level.
type Response struct {
	StatusCode int
	// StatusText is the reason phrase without the code, e.g. "Not Found".
	StatusText string
	Header     http.Header
	// URL is the final URL after redirects.
	URL  *url.URL
	Body []byte
}

func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

func (r *Response) ContentType() string {
	return r.Header.Get("Content-Type")
}

// Options configures the Client.
type Options struct {
	Timeout      time.Duration
	UserAgent    string
	MaxBodyBytes int64
	MaxRedirects int
	// Transport defaults to http.DefaultTransport.
	Transport http.RoundTripper
}

// Client is safe for concurrent use; it holds no per request state.
type Client struct {
	opts       Options
	httpClient *http.Client
	logger     *slog.Logger
}

// OptionsFromConfig maps the fetch config section.
func OptionsFromConfig(cfg config.Fetch) Options {
	return Options{
		Timeout:      cfg.Timeout.Duration,
		UserAgent:    cfg.UserAgent,
		MaxBodyBytes: cfg.MaxBodyBytes,
		MaxRedirects: cfg.MaxRedirects,
	}
}

func New(opts Options, logger *slog.Logger) (*Client, error) {
	if logger == nil {
		return nil, fmt.Errorf("fetch: logger is required")
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 5 * time.Second
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = 5 * 1024 * 1024
	}
	if opts.MaxRedirects < 0 {
		opts.MaxRedirects = 0
	}
	transport := opts.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}

	c := &Client{opts: opts, logger: logger}
	c.httpClient = &http.Client{
		Transport: transport,
		// Timeout on httpClient is for the entire attempt including
		// connection, redirects and reading the body.
		Timeout: opts.Timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) > opts.MaxRedirects {
				return ErrTooManyRedirect
			}
			return nil
		},
	}
	return c, nil
}

// Get fetches rawURL following redirects. The body is read completely so
// the connection is released before returning. The parent context cancels
// the call when the inbound request goes away.
func (c *Client) Get(ctx context.Context, rawURL string, header http.Header) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, c.opts.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch: failed to create request: %w", err)
	}
	for k, vv := range header {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", c.opts.UserAgent)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer resp.Body.Close()

	// one extra byte tells an exact fit from an overflow
	body, err := io.ReadAll(io.LimitReader(resp.Body, c.opts.MaxBodyBytes+1))
	if err != nil {
		return nil, fmt.Errorf("fetch: failed to read body: %w", err)
	}
	if int64(len(body)) > c.opts.MaxBodyBytes {
		return nil, fmt.Errorf("fetch: %s: %w (%d bytes)", rawURL, ErrBodyTooLarge, c.opts.MaxBodyBytes)
	}

	c.logger.Debug("fetch: upstream responded",
		"url", rawURL,
		"final_url", resp.Request.URL.String(),
		"status", resp.StatusCode,
		"bytes", len(body),
		"duration", time.Since(start).String(),
	)

	return &Response{
		StatusCode: resp.StatusCode,
		StatusText: statusText(resp),
		Header:     resp.Header,
		URL:        resp.Request.URL,
		Body:       body,
	}, nil
}

// statusText strips the numeric code from resp.Status ("404 Not Found").
func statusText(resp *http.Response) string {
	if _, text, ok := strings.Cut(resp.Status, " "); ok && text != "" {
		return text
	}
	return http.StatusText(resp.StatusCode)
}

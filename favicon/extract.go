package favicon

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/caasmo/iconfetch/fetch"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
)

// Extractor fetches a page and lists the icon links it declares.
type Extractor struct {
	client fetch.Getter
	logger *slog.Logger
}

func NewExtractor(client fetch.Getter, logger *slog.Logger) *Extractor {
	return &Extractor{client: client, logger: logger}
}

// Extract never fails: network errors and non 2xx answers come back as an
// OutcomeFailed result with no icons. Callers strip Content-Length from
// header beforehand.
func (e *Extractor) Extract(ctx context.Context, rawURL string, header http.Header) ResolutionResult {
	resp, err := e.client.Get(ctx, rawURL, header)
	if err != nil {
		e.logger.Debug("favicon: probe failed", "url", rawURL, "error", err)
		return failedResult(rawURL, err)
	}

	result := ResolutionResult{
		SourceURL:  resp.URL.String(),
		Host:       resp.URL.Host,
		StatusCode: resp.StatusCode,
		StatusText: resp.StatusText,
		Icons:      []IconCandidate{},
	}

	if !resp.OK() {
		result.Outcome = OutcomeFailed
		result.Err = fmt.Errorf("%w: %d %s", ErrUpstreamStatus, resp.StatusCode, resp.StatusText)
		e.logger.Debug("favicon: probe answered with error status", "url", rawURL, "status", resp.StatusCode)
		return result
	}

	result.Icons = parseIcons(decodeBody(resp.Body, resp.ContentType()), resp.URL)
	if len(result.Icons) == 0 {
		result.Outcome = OutcomeEmpty
	} else {
		result.Outcome = OutcomeFound
	}

	e.logger.Debug("favicon: probe done",
		"url", rawURL,
		"final_url", result.SourceURL,
		"status", result.StatusCode,
		"outcome", result.Outcome.String(),
		"icons", len(result.Icons),
	)
	return result
}

func failedResult(rawURL string, err error) ResolutionResult {
	r := ResolutionResult{
		SourceURL:  rawURL,
		StatusCode: http.StatusInternalServerError,
		StatusText: "Failed to fetch icons",
		Icons:      []IconCandidate{},
		Outcome:    OutcomeFailed,
		Err:        err,
	}
	if u, perr := url.Parse(rawURL); perr == nil {
		r.Host = u.Host
	}
	return r
}

// decodeBody converts the page to UTF-8 using the declared or sniffed
// charset. Undecodable bodies are scanned as is.
func decodeBody(body []byte, contentType string) io.Reader {
	r, err := charset.NewReader(bytes.NewReader(body), contentType)
	if err != nil {
		return bytes.NewReader(body)
	}
	return r
}

// parseIcons scans the markup tag by tag for <link> elements whose rel
// contains "icon". The tokenizer tolerates malformed documents and never
// builds a tree.
func parseIcons(r io.Reader, base *url.URL) []IconCandidate {
	icons := []IconCandidate{}
	z := html.NewTokenizer(r)
	for {
		switch z.Next() {
		case html.ErrorToken:
			return icons
		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := z.TagName()
			if !hasAttr || string(name) != "link" {
				continue
			}
			if c, ok := linkCandidate(z, base); ok {
				icons = append(icons, c)
			}
		}
	}
}

func linkCandidate(z *html.Tokenizer, base *url.URL) (IconCandidate, bool) {
	var rel, href, sizes string
	for {
		key, val, more := z.TagAttr()
		switch string(key) {
		case "rel":
			rel = string(val)
		case "href":
			href = strings.TrimSpace(string(val))
		case "sizes":
			sizes = strings.TrimSpace(string(val))
		}
		if !more {
			break
		}
	}

	if !strings.Contains(strings.ToLower(rel), "icon") || href == "" {
		return IconCandidate{}, false
	}
	abs, ok := absolutize(href, base)
	if !ok {
		return IconCandidate{}, false
	}
	if sizes == "" {
		sizes = SizesUnknown
	}
	return IconCandidate{Sizes: sizes, Href: abs}, true
}

// absolutize resolves href against the scheme and host of the final page
// URL. Relative paths are taken from the site root. Hrefs that cannot be
// fetched over http(s), such as data: URIs, are rejected.
func absolutize(href string, base *url.URL) (string, bool) {
	u, err := url.Parse(href)
	if err != nil {
		return "", false
	}
	if u.IsAbs() {
		if u.Scheme != "http" && u.Scheme != "https" {
			return "", false
		}
		return href, true
	}
	if base == nil {
		return "", false
	}
	origin := &url.URL{Scheme: base.Scheme, Host: base.Host, Path: "/"}
	return origin.ResolveReference(u).String(), true
}
